package models

import "time"

// User activity actions recorded in the user_activity_log collection.
const (
	ActionProductView = "PRODUCT_VIEW"
	ActionAddToCart   = "ADD_TO_CART"
	ActionPurchase    = "PURCHASE"
	ActionWishlist    = "WISHLIST"
)

// UserActivityLog is an append-only event record of user behavior.
type UserActivityLog struct {
	ID          string                 `json:"id" bson:"_id,omitempty"`
	UserID      string                 `json:"user_id" bson:"user_id" validate:"required"`
	Action      string                 `json:"action" bson:"action"`
	ProductID   uint                   `json:"product_id" bson:"product_id"`
	ProductName string                 `json:"product_name" bson:"product_name"`
	Timestamp   time.Time              `json:"timestamp" bson:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata" bson:"metadata"`
}

// ProductViewCount is one row of the top-viewed aggregation over
// PRODUCT_VIEW events.
type ProductViewCount struct {
	ProductID   uint   `json:"product_id" bson:"_id"`
	ProductName string `json:"product_name" bson:"product_name"`
	ViewCount   int    `json:"view_count" bson:"view_count"`
}
