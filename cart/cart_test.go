package cart

import (
	"sync"
	"testing"

	"cafe-orders-api/models"
)

var (
	cappuccino = models.MenuItem{ID: 1, Name: "Cappuccino", Price: 150, Category: models.CategoryHot}
	croissant  = models.MenuItem{ID: 7, Name: "Croissant", Price: 80, Category: models.CategoryFood}
)

func TestAddCreatesAndIncrements(t *testing.T) {
	c := &Cart{}
	c.Add(cappuccino)
	c.Add(cappuccino)
	c.Add(croissant)

	if got := len(c.Lines()); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if got := c.QuantityOf(cappuccino.ID); got != 2 {
		t.Errorf("expected quantity 2 for cappuccino, got %d", got)
	}
	if got := c.QuantityOf(croissant.ID); got != 1 {
		t.Errorf("expected quantity 1 for croissant, got %d", got)
	}
}

func TestTotalAndItemCount(t *testing.T) {
	c := &Cart{}
	c.Add(cappuccino)
	c.Add(cappuccino)
	c.Add(croissant)

	if got := c.Total(); got != 150*2+80 {
		t.Errorf("expected total 380, got %d", got)
	}
	if got := c.ItemCount(); got != 3 {
		t.Errorf("expected item count 3, got %d", got)
	}
}

func TestSetQuantityExact(t *testing.T) {
	c := &Cart{}
	c.Add(cappuccino)
	c.SetQuantity(cappuccino.ID, 5)

	if got := c.QuantityOf(cappuccino.ID); got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestSetQuantityBelowOneRemoves(t *testing.T) {
	viaSet := &Cart{}
	viaSet.Add(cappuccino)
	viaSet.SetQuantity(cappuccino.ID, 0)

	viaRemove := &Cart{}
	viaRemove.Add(cappuccino)
	viaRemove.Remove(cappuccino.ID)

	if len(viaSet.Lines()) != 0 || len(viaRemove.Lines()) != 0 {
		t.Fatal("expected both carts to be empty")
	}
	if viaSet.Total() != viaRemove.Total() || viaSet.ItemCount() != viaRemove.ItemCount() {
		t.Error("SetQuantity(id, 0) and Remove(id) must produce identical cart state")
	}
}

func TestSetQuantityOnAbsentItemCreatesNothing(t *testing.T) {
	c := &Cart{}
	c.SetQuantity(cappuccino.ID, 3)

	if !c.Empty() {
		t.Error("setting a quantity for an absent item must not create a line")
	}
}

func TestRemoveAbsentItemIsNoop(t *testing.T) {
	c := &Cart{}
	c.Add(croissant)
	c.Remove(99)

	if got := c.QuantityOf(croissant.ID); got != 1 {
		t.Errorf("unrelated line changed, quantity %d", got)
	}
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.Add(cappuccino)
	c.Add(croissant)
	c.Clear()

	if !c.Empty() || c.Total() != 0 || c.ItemCount() != 0 {
		t.Error("clear must empty the cart unconditionally")
	}
}

// Any sequence of operations keeps at most one line per item id, every
// quantity ≥ 1, and the total equal to the sum of price×quantity.
func TestCartInvariants(t *testing.T) {
	c := &Cart{}
	ops := []func(){
		func() { c.Add(cappuccino) },
		func() { c.Add(croissant) },
		func() { c.Add(cappuccino) },
		func() { c.SetQuantity(cappuccino.ID, 4) },
		func() { c.SetQuantity(croissant.ID, 0) },
		func() { c.Add(croissant) },
		func() { c.Remove(cappuccino.ID) },
		func() { c.Add(cappuccino) },
		func() { c.SetQuantity(99, 2) },
	}
	for i, op := range ops {
		op()
		seen := map[int]bool{}
		wantTotal := 0
		for _, l := range c.Lines() {
			if seen[l.Item.ID] {
				t.Fatalf("after op %d: duplicate line for item %d", i, l.Item.ID)
			}
			seen[l.Item.ID] = true
			if l.Quantity < 1 {
				t.Fatalf("after op %d: quantity %d below 1", i, l.Quantity)
			}
			wantTotal += l.Item.Price * l.Quantity
		}
		if c.Total() != wantTotal {
			t.Fatalf("after op %d: total %d, want %d", i, c.Total(), wantTotal)
		}
	}
}

// Two requests from the same session can land concurrently; the cart
// must still end up with one line holding the full count.
func TestConcurrentAddsKeepOneLinePerItem(t *testing.T) {
	c := &Cart{}
	const adds = 100

	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(cappuccino)
		}()
	}
	wg.Wait()

	if got := len(c.Lines()); got != 1 {
		t.Fatalf("expected a single line, got %d", got)
	}
	if got := c.QuantityOf(cappuccino.ID); got != adds {
		t.Errorf("expected quantity %d, got %d", adds, got)
	}
	if got := c.Total(); got != adds*cappuccino.Price {
		t.Errorf("expected total %d, got %d", adds*cappuccino.Price, got)
	}
}

func TestConcurrentMixedOperations(t *testing.T) {
	c := &Cart{}
	c.Add(croissant)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(cappuccino)
			c.SetQuantity(cappuccino.ID, 2)
			_ = c.Total()
			_ = c.ItemCount()
			c.Remove(cappuccino.ID)
		}()
	}
	wg.Wait()

	if got := c.QuantityOf(croissant.ID); got != 1 {
		t.Errorf("unrelated line changed under concurrency, quantity %d", got)
	}
}

func TestStoreIsolatesUsers(t *testing.T) {
	s := NewStore()
	s.Get(1).Add(cappuccino)

	if got := s.Get(2).ItemCount(); got != 0 {
		t.Errorf("user 2's cart should be empty, has %d items", got)
	}
	if got := s.Get(1).ItemCount(); got != 1 {
		t.Errorf("user 1's cart lost its item, count %d", got)
	}
}
