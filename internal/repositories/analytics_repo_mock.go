package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAnalyticsRepository is an in-memory implementation of
// AnalyticsRepository.
type MockAnalyticsRepository struct {
	mu   sync.RWMutex
	docs map[uint]models.InventoryAnalytics // keyed by product id
}

// NewMockAnalyticsRepository creates a new instance of
// MockAnalyticsRepository.
func NewMockAnalyticsRepository() *MockAnalyticsRepository {
	return &MockAnalyticsRepository{docs: make(map[uint]models.InventoryAnalytics)}
}

// FindByProductID returns the analytics document for one product.
func (r *MockAnalyticsRepository) FindByProductID(ctx context.Context, productID uint) (*models.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[productID]
	if !ok {
		return nil, apperrors.NewNotFound("analytics", productID)
	}
	return &doc, nil
}

// FindAll returns every analytics document ordered by product id.
func (r *MockAnalyticsRepository) FindAll(ctx context.Context) ([]models.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

// FindByCategory returns analytics documents for one category.
func (r *MockAnalyticsRepository) FindByCategory(ctx context.Context, category string) ([]models.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.InventoryAnalytics
	for _, d := range r.sorted() {
		if d.Category == category {
			result = append(result, d)
		}
	}
	return result, nil
}

// TopRated returns documents whose average rating exceeds minRating.
func (r *MockAnalyticsRepository) TopRated(ctx context.Context, minRating float64) ([]models.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.InventoryAnalytics
	for _, d := range r.sorted() {
		if d.AverageRating > minRating {
			result = append(result, d)
		}
	}
	return result, nil
}

// Trending returns the top documents by view count descending.
func (r *MockAnalyticsRepository) Trending(ctx context.Context, limit int) ([]models.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.sorted()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalViewCount > result[j].TotalViewCount
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// LowStock returns documents whose current stock is below threshold.
func (r *MockAnalyticsRepository) LowStock(ctx context.Context, threshold int) ([]models.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.InventoryAnalytics
	for _, d := range r.sorted() {
		if d.CurrentStock < threshold {
			result = append(result, d)
		}
	}
	return result, nil
}

// Save upserts the document keyed by product id.
func (r *MockAnalyticsRepository) Save(ctx context.Context, analytics *models.InventoryAnalytics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.docs[analytics.ProductID]; ok {
		analytics.ID = existing.ID
	} else if analytics.ID == "" {
		analytics.ID = primitive.NewObjectID().Hex()
	}
	r.docs[analytics.ProductID] = *analytics
	return nil
}

// DeleteByProductID removes the analytics document for one product.
func (r *MockAnalyticsRepository) DeleteByProductID(ctx context.Context, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, productID)
	return nil
}

func (r *MockAnalyticsRepository) sorted() []models.InventoryAnalytics {
	result := make([]models.InventoryAnalytics, 0, len(r.docs))
	for _, d := range r.docs {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result
}
