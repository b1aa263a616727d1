package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]models.ProductReview
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{reviews: make(map[string]models.ProductReview)}
}

// Create stores a review, assigning a new id.
func (r *MockReviewRepository) Create(ctx context.Context, review *models.ProductReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = primitive.NewObjectID().Hex()
	}
	r.reviews[review.ID] = *review
	return nil
}

// GetByID returns a review by id.
func (r *MockReviewRepository) GetByID(ctx context.Context, id string) (*models.ProductReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, apperrors.NewNotFound("review", id)
	}
	return &review, nil
}

// GetByProductID returns all reviews for a product.
func (r *MockReviewRepository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.ProductReview
	for _, rev := range r.sorted() {
		if rev.ProductID == productID {
			result = append(result, rev)
		}
	}
	return result, nil
}

// GetByUserID returns all reviews written by a user.
func (r *MockReviewRepository) GetByUserID(ctx context.Context, userID string) ([]models.ProductReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.ProductReview
	for _, rev := range r.sorted() {
		if rev.UserID == userID {
			result = append(result, rev)
		}
	}
	return result, nil
}

// GetByTag returns all reviews carrying a tag.
func (r *MockReviewRepository) GetByTag(ctx context.Context, tag string) ([]models.ProductReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.ProductReview
	for _, rev := range r.sorted() {
		for _, t := range rev.Tags {
			if t == tag {
				result = append(result, rev)
				break
			}
		}
	}
	return result, nil
}

// Update replaces an existing review.
func (r *MockReviewRepository) Update(ctx context.Context, review *models.ProductReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; !ok {
		return apperrors.NewNotFound("review", review.ID)
	}
	r.reviews[review.ID] = *review
	return nil
}

// Delete removes a review by id.
func (r *MockReviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return apperrors.NewNotFound("review", id)
	}
	delete(r.reviews, id)
	return nil
}

func (r *MockReviewRepository) sorted() []models.ProductReview {
	result := make([]models.ProductReview, 0, len(r.reviews))
	for _, rev := range r.reviews {
		result = append(result, rev)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
