package main

import (
	"net/http"
	"os"

	"cafe-orders-api/cart"
	"cafe-orders-api/catalog"
	"cafe-orders-api/config"
	"cafe-orders-api/handlers"
	"cafe-orders-api/livefeed"
	"cafe-orders-api/payment"
	"cafe-orders-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Load configuration and initialize the order store
	config.Load()
	config.InitDB()

	// Load the static menu catalog
	menu, err := catalog.Load(config.MenuFile)
	if err != nil {
		logrus.Fatal("Failed to load menu catalog: ", err)
	}

	// Wire shared collaborators
	handlers.Menu = menu
	handlers.Carts = cart.NewStore()
	handlers.Feed = livefeed.NewHub()
	handlers.Gateway = payment.NewRazorpayGateway(config.RazorpayKeyID, config.RazorpayKeySecret)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Café Orders API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "☕ Welcome to the Café Orders API",
			"docs":    "/api/state-machine",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
