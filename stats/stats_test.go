package stats

import (
	"testing"

	"cafe-orders-api/models"
)

func TestComputeSummary(t *testing.T) {
	orders := []models.Order{
		{Total: 100, Status: models.StatusPending},
		{Total: 200, Status: models.StatusPaid},
	}

	s := Compute(orders)
	if s.TotalOrders != 2 {
		t.Errorf("total orders = %d, want 2", s.TotalOrders)
	}
	if s.Pending != 1 {
		t.Errorf("pending = %d, want 1", s.Pending)
	}
	if s.Completed != 1 {
		t.Errorf("completed = %d, want 1 (paid counts as completed)", s.Completed)
	}
	if s.TotalRevenue != 300 {
		t.Errorf("total revenue = %d, want 300", s.TotalRevenue)
	}
	if s.AvgOrderValue != 150 {
		t.Errorf("avg order value = %v, want 150", s.AvgOrderValue)
	}
}

func TestComputeEmptySet(t *testing.T) {
	s := Compute(nil)
	if s.TotalOrders != 0 || s.TotalRevenue != 0 {
		t.Errorf("empty set should produce zero counts, got %+v", s)
	}
	if s.AvgOrderValue != 0 {
		t.Errorf("avg order value over empty set must be 0, got %v", s.AvgOrderValue)
	}
}

func TestComputeGroupsCompletedWithPaid(t *testing.T) {
	orders := []models.Order{
		{Total: 100, Status: models.StatusPaid},
		{Total: 150, Status: models.StatusCompleted},
		{Total: 50, Status: models.StatusPending},
	}

	s := Compute(orders)
	if s.Completed != 2 {
		t.Errorf("completed = %d, want 2", s.Completed)
	}
	if s.Pending != 1 {
		t.Errorf("pending = %d, want 1", s.Pending)
	}
	if s.TotalRevenue != 300 {
		t.Errorf("total revenue = %d, want 300 (all statuses count)", s.TotalRevenue)
	}
}
