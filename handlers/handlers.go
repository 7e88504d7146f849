package handlers

import (
	"cafe-orders-api/cart"
	"cafe-orders-api/catalog"
	"cafe-orders-api/livefeed"
	"cafe-orders-api/payment"
)

// Shared collaborators, wired in main. The order store itself lives in
// config.DB, matching how the database is shared.
var (
	Menu    *catalog.Catalog
	Carts   *cart.Store
	Gateway payment.Gateway
	Feed    *livefeed.Hub
)
