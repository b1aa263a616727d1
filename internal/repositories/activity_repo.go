package repositories

import (
	"context"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
)

// ActivityRepository defines access to the append-only user_activity_log
// collection.
type ActivityRepository interface {
	Create(ctx context.Context, entry *models.UserActivityLog) error
	GetByUserID(ctx context.Context, userID string) ([]models.UserActivityLog, error)
	GetByProductID(ctx context.Context, productID uint) ([]models.UserActivityLog, error)
	// RecentByUser returns up to limit entries sorted by timestamp
	// descending, zero timestamps last.
	RecentByUser(ctx context.Context, userID string, limit int) ([]models.UserActivityLog, error)
	// TopViewed aggregates PRODUCT_VIEW events per product, view count
	// descending, up to limit rows.
	TopViewed(ctx context.Context, limit int) ([]models.ProductViewCount, error)
}
