package repositories

import (
	"context"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
)

// AnalyticsRepository defines access to the inventory_analytics collection.
// Save upserts by product id, so one document per product holds.
type AnalyticsRepository interface {
	FindByProductID(ctx context.Context, productID uint) (*models.InventoryAnalytics, error)
	FindAll(ctx context.Context) ([]models.InventoryAnalytics, error)
	FindByCategory(ctx context.Context, category string) ([]models.InventoryAnalytics, error)
	TopRated(ctx context.Context, minRating float64) ([]models.InventoryAnalytics, error)
	Trending(ctx context.Context, limit int) ([]models.InventoryAnalytics, error)
	LowStock(ctx context.Context, threshold int) ([]models.InventoryAnalytics, error)
	Save(ctx context.Context, analytics *models.InventoryAnalytics) error
	DeleteByProductID(ctx context.Context, productID uint) error
}
