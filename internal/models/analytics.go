package models

import "time"

// PricePoint is one entry in a product's append-only price history.
type PricePoint struct {
	Price     float64   `json:"price" bson:"price"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// InventoryAnalytics is the denormalized per-product aggregate document
// stored in the inventory_analytics collection. One document per product id.
// Derived from the relational store with eventual, not transactional,
// consistency.
type InventoryAnalytics struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	ProductID      uint         `json:"product_id" bson:"product_id"`
	SKU            string       `json:"sku" bson:"sku"`
	ProductName    string       `json:"product_name" bson:"product_name"`
	Category       string       `json:"category" bson:"category"`
	TotalViewCount int          `json:"total_view_count" bson:"total_view_count"`
	TotalPurchases int          `json:"total_purchases" bson:"total_purchases"`
	AverageRating  float64      `json:"average_rating" bson:"average_rating"`
	CurrentStock   int          `json:"current_stock" bson:"current_stock"`
	PriceHistory   []PricePoint `json:"price_history" bson:"price_history"`
	LastUpdated    time.Time    `json:"last_updated" bson:"last_updated"`
}

// LatestPrice returns the most recent price-history entry, or false when
// the history is empty.
func (a *InventoryAnalytics) LatestPrice() (float64, bool) {
	if len(a.PriceHistory) == 0 {
		return 0, false
	}
	return a.PriceHistory[len(a.PriceHistory)-1].Price, true
}
