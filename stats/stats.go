package stats

import "cafe-orders-api/models"

// Summary is the admin dashboard's aggregate view of the order set.
// The completed count groups paid with completed: both represent
// revenue already captured or owed, matching the dashboard tabs.
type Summary struct {
	TotalOrders   int     `json:"total_orders"`
	Pending       int     `json:"pending"`
	Completed     int     `json:"completed"`
	TotalRevenue  int     `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// Compute recalculates the summary from scratch over the full order
// set. No incremental state is kept, so no drift is possible.
func Compute(orders []models.Order) Summary {
	s := Summary{TotalOrders: len(orders)}
	for _, o := range orders {
		s.TotalRevenue += o.Total
		switch o.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusPaid, models.StatusCompleted:
			s.Completed++
		}
	}
	if s.TotalOrders > 0 {
		s.AvgOrderValue = float64(s.TotalRevenue) / float64(s.TotalOrders)
	}
	return s
}
