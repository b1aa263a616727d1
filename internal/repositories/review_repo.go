package repositories

import (
	"context"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
)

// ReviewRepository defines access to the product_review collection.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.ProductReview) error
	GetByID(ctx context.Context, id string) (*models.ProductReview, error)
	GetByProductID(ctx context.Context, productID uint) ([]models.ProductReview, error)
	GetByUserID(ctx context.Context, userID string) ([]models.ProductReview, error)
	GetByTag(ctx context.Context, tag string) ([]models.ProductReview, error)
	Update(ctx context.Context, review *models.ProductReview) error
	Delete(ctx context.Context, id string) error
}
