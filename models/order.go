package models

import "time"

// OrderStatus represents all possible states of a café order
type OrderStatus string

const (
	// StatusPending — cash order awaiting in-person settlement, not yet fulfilled
	StatusPending OrderStatus = "pending"
	// StatusPaid — online payment captured, not yet fulfilled
	StatusPaid OrderStatus = "paid"
	// StatusCompleted — fulfilled, terminal regardless of payment method
	StatusCompleted OrderStatus = "completed"
)

// PaymentMethod selects how an order is settled
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentUPI  PaymentMethod = "upi"
)

type Order struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	UserID        uint                 `json:"user_id" gorm:"not null;index"`
	UserName      string               `json:"user_name"`  // snapshot at submission
	UserEmail     string               `json:"user_email"` // snapshot at submission
	Items         []OrderLine          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Total         int                  `json:"total" gorm:"not null"` // whole rupees, fixed at creation
	PaymentMethod PaymentMethod        `json:"payment_method" gorm:"not null"`
	PaymentID     *string              `json:"payment_id"` // present iff payment method != cash
	Status        OrderStatus          `json:"status" gorm:"not null;default:'pending'"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"` // sole sort key for listings
	UpdatedAt     time.Time            `json:"updated_at"`
}

// OrderLine is a cart line frozen into an order. Name and price are
// copied from the catalog at submission time and never re-priced.
type OrderLine struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrderID  uint   `json:"order_id" gorm:"not null;index"`
	ItemID   int    `json:"item_id" gorm:"not null"`
	Name     string `json:"name"`
	Price    int    `json:"price" gorm:"not null"`
	Quantity int    `json:"quantity" gorm:"not null"`
}

// OrderStatusHistory tracks every status change — audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
