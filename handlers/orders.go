package handlers

import (
	"net/http"

	"cafe-orders-api/cart"
	"cafe-orders-api/config"
	"cafe-orders-api/middleware"
	"cafe-orders-api/models"
	"cafe-orders-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash upi"`
}

type ConfirmPaymentRequest struct {
	GatewayOrderID string `json:"gateway_order_id" binding:"required"`
	PaymentID      string `json:"payment_id" binding:"required"`
	Signature      string `json:"signature" binding:"required"`
}

type CancelPaymentRequest struct {
	Reason string `json:"reason"`
}

// buildOrder freezes the cart into an order record. Lines carry the
// catalog name and price as they stand right now; the total is computed
// once from the snapshot and never re-derived from the catalog.
func buildOrder(userID uint, name, email string, lines []cart.Line, method models.PaymentMethod, paymentID *string) models.Order {
	items := make([]models.OrderLine, 0, len(lines))
	total := 0
	for _, l := range lines {
		total += l.Item.Price * l.Quantity
		items = append(items, models.OrderLine{
			ItemID:   l.Item.ID,
			Name:     l.Item.Name,
			Price:    l.Item.Price,
			Quantity: l.Quantity,
		})
	}
	return models.Order{
		UserID:        userID,
		UserName:      name,
		UserEmail:     email,
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		PaymentID:     paymentID,
		Status:        statemachine.InitialStatus(method),
	}
}

// persistOrder writes the order, records the creation transition, and
// clears the cart only after the write succeeded. The live feed is
// pulsed so every active subscription re-reads the order set.
func persistOrder(c *gin.Context, order models.Order, userCart *cart.Cart) {
	if err := config.DB.Create(&order).Error; err != nil {
		// Cart stays intact: the customer retries explicitly.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  order.Status,
		ChangedBy: order.UserID,
		Note:      "Order placed by customer",
	}
	if err := config.DB.Create(&history).Error; err != nil {
		// The order itself is placed; a missing audit row must not fail it.
		logrus.WithError(err).Warnf("failed to record status history for order %d", order.ID)
	}

	userCart.Clear()
	Feed.Notify()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// Checkout converts the caller's cart into an order. Cash orders
// persist immediately as pending. UPI orders open a gateway checkout
// and persist nothing until the payment is confirmed; the cart is kept
// so a failed or abandoned payment can be retried.
func Checkout(c *gin.Context) {
	userID, name, email := middleware.GetIdentity(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCart := Carts.Get(userID)
	if userCart.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	if req.PaymentMethod == models.PaymentCash {
		order := buildOrder(userID, name, email, userCart.Lines(), models.PaymentCash, nil)
		persistOrder(c, order, userCart)
		return
	}

	session, err := Gateway.CreateCheckout(userCart.Total(), name, email)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to open payment checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Complete the payment to place your order",
		"checkout": session,
	})
}

// ConfirmPayment is the gateway's success callback: it carries the
// captured payment id and a signature proving the capture. Only a
// verified confirmation creates the order.
func ConfirmPayment(c *gin.Context) {
	userID, name, email := middleware.GetIdentity(c)

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCart := Carts.Get(userID)
	if userCart.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	if err := Gateway.VerifySignature(req.GatewayOrderID, req.PaymentID, req.Signature); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Payment verification failed"})
		return
	}

	paymentID := req.PaymentID
	order := buildOrder(userID, name, email, userCart.Lines(), models.PaymentUPI, &paymentID)
	persistOrder(c, order, userCart)
}

// CancelPayment acknowledges a failed or dismissed payment widget.
// No order exists and the cart is untouched; checkout may be retried.
func CancelPayment(c *gin.Context) {
	var req CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = "Payment was cancelled"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment failed: " + reason,
		"retry":   true,
	})
}

func fetchOwnOrders(userID uint) []models.Order {
	var orders []models.Order
	config.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders)
	return orders
}

// GetMyOrders returns the caller's order history, newest first
func GetMyOrders(c *gin.Context) {
	orders := fetchOwnOrders(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// StreamMyOrders is the live history view: an SSE stream delivering a
// complete replacement snapshot of the caller's orders on every order
// mutation. The subscription tears down with the connection.
func StreamMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()
	updates := Feed.Subscribe(ctx)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	send := func() {
		orders := fetchOwnOrders(userID)
		c.SSEvent("orders", gin.H{"count": len(orders), "orders": orders})
		c.Writer.Flush()
	}

	send()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			send()
		}
	}
}
