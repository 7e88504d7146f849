package handlers

import (
	"net/http"

	"cafe-orders-api/catalog"
	"cafe-orders-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the catalog, optionally narrowed by category and a
// case-insensitive search over name and description (public)
func GetMenu(c *gin.Context) {
	category := models.Category(c.DefaultQuery("category", string(models.CategoryAll)))
	search := c.Query("search")

	items := Menu.Filter(category, search)
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetCategories returns the fixed category navigation set (public)
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories})
}
