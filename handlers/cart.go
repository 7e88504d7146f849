package handlers

import (
	"net/http"
	"strconv"

	"cafe-orders-api/cart"
	"cafe-orders-api/middleware"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	ItemID int `json:"item_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartJSON(c *cart.Cart) gin.H {
	return gin.H{
		"lines":      c.Lines(),
		"total":      c.Total(),
		"item_count": c.ItemCount(),
	}
}

// GetCart returns the caller's current cart snapshot
func GetCart(c *gin.Context) {
	userCart := Carts.Get(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"cart": cartJSON(userCart)})
}

// AddToCart adds one unit of a menu item to the caller's cart,
// creating the line on first add
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := Menu.Find(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	userCart := Carts.Get(middleware.GetUserID(c))
	userCart.Add(item)
	c.JSON(http.StatusOK, gin.H{"cart": cartJSON(userCart)})
}

// SetCartQuantity sets a line's quantity exactly; below 1 removes the
// line. Setting a quantity for an item not in the cart creates nothing.
func SetCartQuantity(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCart := Carts.Get(middleware.GetUserID(c))
	userCart.SetQuantity(itemID, *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": cartJSON(userCart)})
}

// RemoveFromCart deletes a line if present; no-op otherwise
func RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	userCart := Carts.Get(middleware.GetUserID(c))
	userCart.Remove(itemID)
	c.JSON(http.StatusOK, gin.H{"cart": cartJSON(userCart)})
}

// ClearCart empties the caller's cart unconditionally
func ClearCart(c *gin.Context) {
	userCart := Carts.Get(middleware.GetUserID(c))
	userCart.Clear()
	c.JSON(http.StatusOK, gin.H{"cart": cartJSON(userCart)})
}
