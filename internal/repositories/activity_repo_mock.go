package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockActivityRepository is an in-memory implementation of
// ActivityRepository.
type MockActivityRepository struct {
	mu      sync.RWMutex
	entries []models.UserActivityLog
}

// NewMockActivityRepository creates a new instance of
// MockActivityRepository.
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// Create appends an activity entry, assigning a new id.
func (r *MockActivityRepository) Create(ctx context.Context, entry *models.UserActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// GetByUserID returns all activity entries for a user.
func (r *MockActivityRepository) GetByUserID(ctx context.Context, userID string) ([]models.UserActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.UserActivityLog
	for _, e := range r.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// GetByProductID returns all activity entries touching a product.
func (r *MockActivityRepository) GetByProductID(ctx context.Context, productID uint) ([]models.UserActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.UserActivityLog
	for _, e := range r.entries {
		if e.ProductID == productID {
			result = append(result, e)
		}
	}
	return result, nil
}

// RecentByUser returns up to limit entries sorted by timestamp descending,
// zero timestamps last.
func (r *MockActivityRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]models.UserActivityLog, error) {
	entries, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Timestamp.IsZero() {
			return false
		}
		if entries[j].Timestamp.IsZero() {
			return true
		}
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// TopViewed aggregates PRODUCT_VIEW events per product, most viewed first.
func (r *MockActivityRepository) TopViewed(ctx context.Context, limit int) ([]models.ProductViewCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[uint]*models.ProductViewCount)
	for _, e := range r.entries {
		if e.Action != models.ActionProductView {
			continue
		}
		if c, ok := counts[e.ProductID]; ok {
			c.ViewCount++
		} else {
			counts[e.ProductID] = &models.ProductViewCount{
				ProductID:   e.ProductID,
				ProductName: e.ProductName,
				ViewCount:   1,
			}
		}
	}

	result := make([]models.ProductViewCount, 0, len(counts))
	for _, c := range counts {
		result = append(result, *c)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].ViewCount > result[j].ViewCount })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
