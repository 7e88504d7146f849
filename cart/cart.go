package cart

import (
	"sync"

	"cafe-orders-api/models"
)

// Line is one menu item in the cart with its quantity. At most one
// line exists per item id; a line's quantity is always ≥ 1.
type Line struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-progress, not-yet-submitted selection for one user.
// It is transient: never persisted, discarded on successful order
// submission or explicit clear. A user's cart follows a single logical
// thread of UI interaction, but requests can still land concurrently,
// so every method takes the cart's own lock.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// Add increments the quantity for the item, inserting a new line with
// quantity 1 if none exists. Always succeeds.
func (c *Cart) Add(item models.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// SetQuantity sets the line's quantity exactly. A quantity below 1
// removes the line. Setting a quantity for an absent item is a no-op:
// only Add creates lines.
func (c *Cart) SetQuantity(itemID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity < 1 {
		c.remove(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line if present; no-op otherwise.
func (c *Cart) Remove(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(itemID)
}

func (c *Cart) remove(itemID int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Total is the sum of price×quantity over all lines, in whole rupees.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := 0
	for _, l := range c.lines {
		sum += l.Item.Price * l.Quantity
	}
	return sum
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// QuantityOf returns the line's quantity, or 0 if the item is absent.
func (c *Cart) QuantityOf(itemID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if l.Item.ID == itemID {
			return l.Quantity
		}
	}
	return 0
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Store holds one cart per authenticated user. The mutex guards the
// map itself; each cart carries its own lock.
type Store struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[uint]*Cart)}
}

// Get returns the user's cart, creating an empty one on first use.
func (s *Store) Get(userID uint) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	return c
}
