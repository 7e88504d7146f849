package handlers

import (
	"net/http"

	"cafe-orders-api/config"
	"cafe-orders-api/middleware"
	"cafe-orders-api/models"
	"cafe-orders-api/statemachine"
	"cafe-orders-api/stats"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func fetchAllOrders() []models.Order {
	var orders []models.Order
	config.DB.Preload("Items").Preload("StatusHistory").
		Order("created_at desc, id desc").
		Find(&orders)
	return orders
}

// filterTab narrows orders to a dashboard tab: pending, completed
// (which groups paid with completed), or all.
func filterTab(orders []models.Order, tab string) []models.Order {
	switch tab {
	case "pending":
		out := []models.Order{}
		for _, o := range orders {
			if o.Status == models.StatusPending {
				out = append(out, o)
			}
		}
		return out
	case "completed":
		out := []models.Order{}
		for _, o := range orders {
			if o.Status == models.StatusPaid || o.Status == models.StatusCompleted {
				out = append(out, o)
			}
		}
		return out
	default:
		return orders
	}
}

// AdminGetAllOrders returns every order plus dashboard statistics —
// admin only. Stats are always computed over the full set; the tab
// filter narrows only the listed orders.
func AdminGetAllOrders(c *gin.Context) {
	orders := fetchAllOrders()
	listed := filterTab(orders, c.Query("tab"))

	c.JSON(http.StatusOK, gin.H{
		"stats":  stats.Compute(orders),
		"count":  len(listed),
		"orders": listed,
	})
}

// AdminUpdateOrderStatus advances an order's status — admin only.
// Transitions run strictly forward through the state machine;
// re-completing a completed order is a harmless no-op so that two
// admin sessions clicking the same button never conflict.
func AdminUpdateOrderStatus(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.Status == models.StatusCompleted && req.Status == models.StatusCompleted {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Order is already completed",
			"order_id": order.ID,
			"status":   order.Status,
		})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorAdmin); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot update order status",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  adminID,
		Note:       "Status updated by admin",
	}
	if err := config.DB.Create(&history).Error; err != nil {
		// The transition is already applied; a missing audit row must not undo it.
		logrus.WithError(err).Warnf("failed to record status history for order %d", order.ID)
	}

	Feed.Notify()

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}

// AdminStreamOrders is the live dashboard view: an SSE stream pushing
// the full order set and freshly recomputed statistics on every order
// mutation — admin only.
func AdminStreamOrders(c *gin.Context) {
	ctx := c.Request.Context()
	updates := Feed.Subscribe(ctx)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	send := func() {
		orders := fetchAllOrders()
		c.SSEvent("orders", gin.H{
			"stats":  stats.Compute(orders),
			"count":  len(orders),
			"orders": orders,
		})
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

// GetStateMachineInfo returns the order lifecycle for documentation
func GetStateMachineInfo(c *gin.Context) {
	transitions := []gin.H{}
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"initial_states":  gin.H{"cash": models.StatusPending, "upi": models.StatusPaid},
		"state_machine":   transitions,
		"terminal_states": []models.OrderStatus{models.StatusCompleted},
		"description":     "Café Order Lifecycle State Machine",
	})
}
