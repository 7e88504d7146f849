package routes

import (
	"cafe-orders-api/handlers"
	"cafe-orders-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/categories", handlers.GetCategories)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/auth/signout", handlers.SignOut)

		// Cart
		auth.GET("/cart", handlers.GetCart)
		auth.POST("/cart/items", handlers.AddToCart)
		auth.PUT("/cart/items/:itemId", handlers.SetCartQuantity)
		auth.DELETE("/cart/items/:itemId", handlers.RemoveFromCart)
		auth.DELETE("/cart", handlers.ClearCart)

		// Checkout & order history
		auth.POST("/orders/checkout", handlers.Checkout)
		auth.POST("/orders/checkout/confirm", handlers.ConfirmPayment)
		auth.POST("/orders/checkout/cancel", handlers.CancelPayment)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/stream", handlers.StreamMyOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	// AdminRequired runs before any handler: an unauthorized identity
	// never reaches the all-orders query.
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/orders/stream", handlers.AdminStreamOrders)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
	}
}
