package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type analyticsFixture struct {
	service  *services.AnalyticsService
	products *repositories.MockProductRepository
	reviews  *repositories.MockReviewRepository
	activity *repositories.MockActivityRepository
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()

	products := repositories.NewMockProductRepository()
	analytics := repositories.NewMockAnalyticsRepository()
	reviews := repositories.NewMockReviewRepository()
	activity := repositories.NewMockActivityRepository()

	return &analyticsFixture{
		service:  services.NewAnalyticsService(products, analytics, reviews, activity, zap.NewNop()),
		products: products,
		reviews:  reviews,
		activity: activity,
	}
}

func (f *analyticsFixture) seedProduct(t *testing.T, name, sku string, price float64, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Quantity: quantity,
		SKU:      sku,
		Category: "electronics",
	}
	require.NoError(t, f.products.Create(product))
	return product
}

func TestAnalyticsService_LogProductView(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Mechanical Keyboard", "KB-001", 79.99, 25)

	require.NoError(t, f.service.LogProductView(ctx, "user-1", product.ID, map[string]interface{}{"source": "search"}))

	// First view lazily creates the analytics document from the product.
	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.TotalViewCount)
	assert.Equal(t, "KB-001", doc.SKU)
	assert.Equal(t, "Mechanical Keyboard", doc.ProductName)
	assert.Equal(t, 25, doc.CurrentStock)
	require.Len(t, doc.PriceHistory, 1)
	assert.InDelta(t, 79.99, doc.PriceHistory[0].Price, 0.001)

	require.NoError(t, f.service.LogProductView(ctx, "user-2", product.ID, nil))
	doc, err = f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.TotalViewCount)

	// The raw log carries both entries with the resolved product name.
	entries, err := f.service.ProductActivity(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActionProductView, entries[0].Action)
	assert.Equal(t, "Mechanical Keyboard", entries[0].ProductName)
}

func TestAnalyticsService_LogProductView_MissingProduct(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	// The activity entry is kept even though the product does not exist;
	// only the analytics counter update is skipped.
	require.NoError(t, f.service.LogProductView(ctx, "user-1", 999, nil))

	entries, err := f.service.ProductActivity(ctx, 999)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = f.service.ProductAnalytics(ctx, 999)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAnalyticsService_LogActivity_NonViewActions(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Headphones", "HP-001", 129.00, 20)

	// A cart event is recorded but does not touch the view counter.
	require.NoError(t, f.service.LogActivity(ctx, &models.UserActivityLog{
		UserID:    "user-1",
		Action:    models.ActionAddToCart,
		ProductID: product.ID,
	}))

	entries, err := f.service.ProductActivity(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionAddToCart, entries[0].Action)

	_, err = f.service.ProductAnalytics(ctx, product.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// A missing action defaults to PRODUCT_VIEW.
	require.NoError(t, f.service.LogActivity(ctx, &models.UserActivityLog{
		UserID:    "user-1",
		ProductID: product.ID,
	}))
	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.TotalViewCount)

	// Unknown actions are rejected.
	err = f.service.LogActivity(ctx, &models.UserActivityLog{
		UserID:    "user-1",
		Action:    "TELEPORT",
		ProductID: product.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)
}

func TestAnalyticsService_LogProductView_RequiresUser(t *testing.T) {
	f := newAnalyticsFixture(t)

	err := f.service.LogProductView(context.Background(), "", 1, nil)
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)
}

func TestAnalyticsService_AddReview_RecomputesAverage(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Monitor", "MON-001", 249.00, 10)

	for i, rating := range []float64{3, 4, 5} {
		require.NoError(t, f.service.AddReview(ctx, &models.ProductReview{
			ProductID:  product.ID,
			UserID:     fmt.Sprintf("user-%d", i),
			Rating:     rating,
			ReviewText: "fine",
		}))
	}

	avg, count, err := f.service.AverageRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, count)

	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, doc.AverageRating)
}

func TestAnalyticsService_AverageRating_RoundsToOneDecimal(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Speaker", "SPK-001", 59.00, 10)

	for i, rating := range []float64{4, 4, 5} {
		require.NoError(t, f.service.AddReview(ctx, &models.ProductReview{
			ProductID: product.ID,
			UserID:    fmt.Sprintf("user-%d", i),
			Rating:    rating,
		}))
	}

	// 13/3 = 4.333... rounds to 4.3
	avg, _, err := f.service.AverageRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, avg)
}

func TestAnalyticsService_AddReview_Rejections(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Tablet", "TAB-001", 329.00, 5)

	// Unknown product.
	err := f.service.AddReview(ctx, &models.ProductReview{ProductID: 999, UserID: "user-1", Rating: 4})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// Rating out of bounds.
	err = f.service.AddReview(ctx, &models.ProductReview{ProductID: product.ID, UserID: "user-1", Rating: 6})
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)

	// Missing user.
	err = f.service.AddReview(ctx, &models.ProductReview{ProductID: product.ID, Rating: 4})
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)
}

func TestAnalyticsService_DeleteLastReview_KeepsStoredAverage(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Camera", "CAM-001", 499.00, 4)

	review := &models.ProductReview{ProductID: product.ID, UserID: "user-1", Rating: 5}
	require.NoError(t, f.service.AddReview(ctx, review))
	require.NoError(t, f.service.DeleteReview(ctx, review.ID))

	// An empty review set leaves the previously stored average in place.
	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, doc.AverageRating)

	avg, count, err := f.service.AverageRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestAnalyticsService_UpdateReview(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Printer", "PRN-001", 149.00, 6)

	review := &models.ProductReview{ProductID: product.ID, UserID: "user-1", Rating: 2, ReviewText: "jams a lot"}
	require.NoError(t, f.service.AddReview(ctx, review))

	updated, err := f.service.UpdateReview(ctx, review.ID, &models.ProductReview{
		Rating: 4, ReviewText: "better after firmware update",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.Rating)

	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, doc.AverageRating)

	// Out-of-bounds rating is rejected before any write.
	_, err = f.service.UpdateReview(ctx, review.ID, &models.ProductReview{Rating: 0})
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)
}

func TestAnalyticsService_TopReviews(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Router", "RTR-001", 89.00, 12)

	for i := 0; i < 6; i++ {
		require.NoError(t, f.service.AddReview(ctx, &models.ProductReview{
			ProductID: product.ID,
			UserID:    fmt.Sprintf("user-%d", i),
			Rating:    4,
			Helpful:   i * 10,
		}))
	}

	top, err := f.service.TopReviews(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, 50, top[0].Helpful)
	assert.Equal(t, 10, top[4].Helpful)
}

func TestAnalyticsService_UpdateStock(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Dock", "DCK-001", 199.00, 8)

	// Down to zero flips the row out of stock and mirrors the quantity.
	updated, err := f.service.UpdateStock(ctx, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, models.StatusOutOfStock, updated.Status)

	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.CurrentStock)

	// Back up flips it in stock again.
	updated, err = f.service.UpdateStock(ctx, product.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)
	assert.Equal(t, models.StatusInStock, updated.Status)

	// Negative quantities clamp to zero.
	updated, err = f.service.UpdateStock(ctx, product.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, models.StatusOutOfStock, updated.Status)

	_, err = f.service.UpdateStock(ctx, 999, 5)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAnalyticsService_RecordPurchase(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Charger", "CHG-001", 29.00, 40)

	require.NoError(t, f.service.RecordPurchase(ctx, product.ID, 3))
	require.NoError(t, f.service.RecordPurchase(ctx, product.ID, 2))

	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, doc.TotalPurchases)
	assert.Equal(t, 40, doc.CurrentStock)
}

func TestAnalyticsService_Reconcile_Idempotent(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	first := f.seedProduct(t, "Cable", "CBL-001", 9.99, 100)
	second := f.seedProduct(t, "Adapter", "ADP-001", 14.99, 60)

	synced, err := f.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	doc, err := f.service.ProductAnalytics(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, doc.PriceHistory, 1)

	// A second run with unchanged prices appends nothing.
	synced, err = f.service.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	doc, err = f.service.ProductAnalytics(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, doc.PriceHistory, 1)

	// A price change is recorded as a new history entry.
	second.Price = decimal.NewFromFloat(12.49)
	require.NoError(t, f.products.Update(second))

	_, err = f.service.Reconcile(ctx)
	require.NoError(t, err)

	doc, err = f.service.ProductAnalytics(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, doc.PriceHistory, 2)
	assert.InDelta(t, 12.49, doc.PriceHistory[1].Price, 0.001)
}

func TestAnalyticsService_Reconcile_RefreshesDenormalizedFields(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Old Name", "RNM-001", 20.00, 30)

	_, err := f.service.Reconcile(ctx)
	require.NoError(t, err)

	product.Name = "New Name"
	product.Quantity = 7
	require.NoError(t, f.products.Update(product))

	_, err = f.service.Reconcile(ctx)
	require.NoError(t, err)

	doc, err := f.service.ProductAnalytics(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", doc.ProductName)
	assert.Equal(t, 7, doc.CurrentStock)
}

func TestAnalyticsService_TopViewedProducts(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	popular := f.seedProduct(t, "Popular Item", "POP-001", 10.00, 5)
	niche := f.seedProduct(t, "Niche Item", "NCH-001", 10.00, 5)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.service.LogProductView(ctx, fmt.Sprintf("user-%d", i), popular.ID, nil))
	}
	require.NoError(t, f.service.LogProductView(ctx, "user-0", niche.ID, nil))

	counts, err := f.service.TopViewedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, popular.ID, counts[0].ProductID)
	assert.Equal(t, 3, counts[0].ViewCount)
}

func TestAnalyticsService_RecentUserActivity_Limit(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Widget", "WDG-001", 5.00, 50)

	for i := 0; i < 12; i++ {
		require.NoError(t, f.service.LogProductView(ctx, "heavy-user", product.ID, nil))
	}

	recent, err := f.service.RecentUserActivity(ctx, "heavy-user")
	require.NoError(t, err)
	assert.Len(t, recent, 10)
}
