package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Fixed query thresholds for the analytics surface.
const (
	topRatedMinRating   = 4.0
	lowStockThreshold   = 10
	trendingLimit       = 10
	topViewedLimit      = 10
	recentActivityLimit = 10
	topReviewsLimit     = 5
)

// AnalyticsService keeps the denormalized document store in step with the
// relational product catalog. The relational store is the system of
// record; every write here is derived data with eventual consistency.
// Activity logging is the only part that must not be dropped; analytics
// document updates are best-effort and never roll back a committed
// relational write.
type AnalyticsService struct {
	products  repositories.ProductRepository
	analytics repositories.AnalyticsRepository
	reviews   repositories.ReviewRepository
	activity  repositories.ActivityRepository
	validate  *validator.Validate
	log       *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	products repositories.ProductRepository,
	analytics repositories.AnalyticsRepository,
	reviews repositories.ReviewRepository,
	activity repositories.ActivityRepository,
	log *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		products:  products,
		analytics: analytics,
		reviews:   reviews,
		activity:  activity,
		validate:  validator.New(),
		log:       log,
	}
}

var validActions = map[string]bool{
	models.ActionProductView: true,
	models.ActionAddToCart:   true,
	models.ActionPurchase:    true,
	models.ActionWishlist:    true,
}

// LogActivity appends an activity entry. A missing action defaults to
// PRODUCT_VIEW. The entry is written even when the product no longer
// exists; only PRODUCT_VIEW entries bump the analytics view counter, and
// that update is best-effort.
func (s *AnalyticsService) LogActivity(ctx context.Context, entry *models.UserActivityLog) error {
	if entry.UserID == "" {
		return apperrors.NewValidationError("user id is required", "field: user_id")
	}
	if entry.Action == "" {
		entry.Action = models.ActionProductView
	}
	if !validActions[entry.Action] {
		return apperrors.NewValidationError("unknown action", "field: action")
	}

	entry.Timestamp = time.Now()
	if product, err := s.products.GetByID(entry.ProductID); err == nil {
		entry.ProductName = product.Name
	}

	if err := s.activity.Create(ctx, entry); err != nil {
		return err
	}
	if entry.Action != models.ActionProductView {
		return nil
	}

	doc, err := s.ensureAnalytics(ctx, entry.ProductID)
	if err != nil {
		s.log.Warn("skipping view-count update", zap.Uint("product_id", entry.ProductID), zap.Error(err))
		return nil
	}
	doc.TotalViewCount++
	doc.LastUpdated = time.Now()
	if err := s.analytics.Save(ctx, doc); err != nil {
		s.log.Warn("failed to save view count", zap.Uint("product_id", entry.ProductID), zap.Error(err))
	}
	return nil
}

// LogProductView records a PRODUCT_VIEW activity entry.
func (s *AnalyticsService) LogProductView(ctx context.Context, userID string, productID uint, metadata map[string]interface{}) error {
	return s.LogActivity(ctx, &models.UserActivityLog{
		UserID:    userID,
		Action:    models.ActionProductView,
		ProductID: productID,
		Metadata:  metadata,
	})
}

// AddReview persists a review after verifying the product exists, then
// recomputes the product's average rating in the analytics document.
func (s *AnalyticsService) AddReview(ctx context.Context, review *models.ProductReview) error {
	if err := s.validate.Struct(review); err != nil {
		return apperrors.NewValidationError("invalid review payload", err.Error())
	}
	if _, err := s.products.GetByID(review.ProductID); err != nil {
		return err
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	if err := s.reviews.Create(ctx, review); err != nil {
		return err
	}

	if err := s.recomputeRating(ctx, review.ProductID); err != nil {
		s.log.Warn("failed to update average rating",
			zap.Uint("product_id", review.ProductID), zap.Error(err))
	}
	return nil
}

// UpdateReview overwrites the mutable fields of an existing review and
// refreshes the product's average rating.
func (s *AnalyticsService) UpdateReview(ctx context.Context, reviewID string, details *models.ProductReview) (*models.ProductReview, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if details.Rating < 1 || details.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", "field: rating")
	}

	review.Rating = details.Rating
	review.ReviewText = details.ReviewText
	review.Tags = details.Tags
	review.UpdatedAt = time.Now()
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := s.recomputeRating(ctx, review.ProductID); err != nil {
		s.log.Warn("failed to update average rating",
			zap.Uint("product_id", review.ProductID), zap.Error(err))
	}
	return review, nil
}

// DeleteReview removes a review.
func (s *AnalyticsService) DeleteReview(ctx context.Context, reviewID string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	if err := s.recomputeRating(ctx, review.ProductID); err != nil {
		s.log.Warn("failed to update average rating",
			zap.Uint("product_id", review.ProductID), zap.Error(err))
	}
	return nil
}

// GetProductReviews returns all reviews for a product.
func (s *AnalyticsService) GetProductReviews(ctx context.Context, productID uint) ([]models.ProductReview, error) {
	return s.reviews.GetByProductID(ctx, productID)
}

// AverageRating returns the mean review rating for a product, rounded to
// one decimal, together with the review count.
func (s *AnalyticsService) AverageRating(ctx context.Context, productID uint) (float64, int, error) {
	reviews, err := s.reviews.GetByProductID(ctx, productID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return roundToOneDecimal(sum / float64(len(reviews))), len(reviews), nil
}

// TopReviews returns up to five reviews for a product, most helpful first.
func (s *AnalyticsService) TopReviews(ctx context.Context, productID uint) ([]models.ProductReview, error) {
	reviews, err := s.reviews.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Helpful > reviews[j].Helpful
	})
	if len(reviews) > topReviewsLimit {
		reviews = reviews[:topReviewsLimit]
	}
	return reviews, nil
}

// UpdateStock sets the absolute quantity on the relational row and mirrors
// it into the analytics document. A quantity at or below zero flips the
// product to out-of-stock.
func (s *AnalyticsService) UpdateStock(ctx context.Context, productID uint, quantity int) (*models.Product, error) {
	if quantity < 0 {
		quantity = 0
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	product.Quantity = quantity
	product.SyncStatus()
	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	doc, err := s.ensureAnalytics(ctx, productID)
	if err != nil {
		s.log.Warn("skipping stock sync", zap.Uint("product_id", productID), zap.Error(err))
		return product, nil
	}
	doc.CurrentStock = quantity
	doc.LastUpdated = time.Now()
	if err := s.analytics.Save(ctx, doc); err != nil {
		s.log.Warn("failed to sync stock", zap.Uint("product_id", productID), zap.Error(err))
	}
	return product, nil
}

// RecordPurchase bumps the purchase counter and refreshes the stock mirror
// after a committed order.
func (s *AnalyticsService) RecordPurchase(ctx context.Context, productID uint, quantity int) error {
	doc, err := s.ensureAnalytics(ctx, productID)
	if err != nil {
		return err
	}
	doc.TotalPurchases += quantity
	if product, err := s.products.GetByID(productID); err == nil {
		doc.CurrentStock = product.Quantity
	}
	doc.LastUpdated = time.Now()
	return s.analytics.Save(ctx, doc)
}

// Reconcile walks every product and brings its analytics document up to
// date: missing documents are created, denormalized fields refreshed, and
// a price-history entry appended only when the price actually changed.
// Running it twice without product changes writes no new history entries.
func (s *AnalyticsService) Reconcile(ctx context.Context) (int, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, product := range products {
		doc, err := s.analytics.FindByProductID(ctx, product.ID)
		if err != nil {
			if !apperrors.IsNotFound(err) {
				s.log.Warn("skipping product during reconcile",
					zap.Uint("product_id", product.ID), zap.Error(err))
				continue
			}
			doc = &models.InventoryAnalytics{
				ProductID:    product.ID,
				PriceHistory: []models.PricePoint{},
			}
		}

		doc.SKU = product.SKU
		doc.ProductName = product.Name
		doc.Category = product.Category
		doc.CurrentStock = product.Quantity
		doc.LastUpdated = time.Now()

		currentPrice := product.Price.InexactFloat64()
		if latest, ok := doc.LatestPrice(); !ok || latest != currentPrice {
			doc.PriceHistory = append(doc.PriceHistory, models.PricePoint{
				Price:     currentPrice,
				Timestamp: time.Now(),
			})
		}

		if err := s.analytics.Save(ctx, doc); err != nil {
			s.log.Warn("failed to save analytics during reconcile",
				zap.Uint("product_id", product.ID), zap.Error(err))
			continue
		}
		synced++
	}

	s.log.Info("analytics reconcile completed", zap.Int("synced", synced))
	return synced, nil
}

// ProductAnalytics returns the analytics document for one product.
func (s *AnalyticsService) ProductAnalytics(ctx context.Context, productID uint) (*models.InventoryAnalytics, error) {
	return s.analytics.FindByProductID(ctx, productID)
}

// TopRatedProducts returns analytics documents with rating above 4.0.
func (s *AnalyticsService) TopRatedProducts(ctx context.Context) ([]models.InventoryAnalytics, error) {
	return s.analytics.TopRated(ctx, topRatedMinRating)
}

// TrendingProducts returns the ten most viewed products.
func (s *AnalyticsService) TrendingProducts(ctx context.Context) ([]models.InventoryAnalytics, error) {
	return s.analytics.Trending(ctx, trendingLimit)
}

// LowStockProducts returns products with fewer than ten units mirrored.
func (s *AnalyticsService) LowStockProducts(ctx context.Context) ([]models.InventoryAnalytics, error) {
	return s.analytics.LowStock(ctx, lowStockThreshold)
}

// CategoryAnalytics returns analytics documents for one category.
func (s *AnalyticsService) CategoryAnalytics(ctx context.Context, category string) ([]models.InventoryAnalytics, error) {
	return s.analytics.FindByCategory(ctx, category)
}

// UserActivity returns all activity entries for a user.
func (s *AnalyticsService) UserActivity(ctx context.Context, userID string) ([]models.UserActivityLog, error) {
	return s.activity.GetByUserID(ctx, userID)
}

// ProductActivity returns all activity entries touching a product.
func (s *AnalyticsService) ProductActivity(ctx context.Context, productID uint) ([]models.UserActivityLog, error) {
	return s.activity.GetByProductID(ctx, productID)
}

// RecentUserActivity returns the ten most recent entries for a user.
func (s *AnalyticsService) RecentUserActivity(ctx context.Context, userID string) ([]models.UserActivityLog, error) {
	return s.activity.RecentByUser(ctx, userID, recentActivityLimit)
}

// TopViewedProducts returns the ten most viewed products from the raw
// activity log.
func (s *AnalyticsService) TopViewedProducts(ctx context.Context) ([]models.ProductViewCount, error) {
	return s.activity.TopViewed(ctx, topViewedLimit)
}

// ensureAnalytics fetches the analytics document for a product, lazily
// creating it from the current product attributes when absent.
func (s *AnalyticsService) ensureAnalytics(ctx context.Context, productID uint) (*models.InventoryAnalytics, error) {
	doc, err := s.analytics.FindByProductID(ctx, productID)
	if err == nil {
		return doc, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	doc = &models.InventoryAnalytics{
		ProductID:    product.ID,
		SKU:          product.SKU,
		ProductName:  product.Name,
		Category:     product.Category,
		CurrentStock: product.Quantity,
		PriceHistory: []models.PricePoint{
			{Price: product.Price.InexactFloat64(), Timestamp: time.Now()},
		},
		LastUpdated: time.Now(),
	}
	if err := s.analytics.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// recomputeRating recalculates the arithmetic mean of all review ratings
// and writes it into the analytics document. An empty review set leaves
// the stored average untouched.
func (s *AnalyticsService) recomputeRating(ctx context.Context, productID uint) error {
	reviews, err := s.reviews.GetByProductID(ctx, productID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := roundToOneDecimal(sum / float64(len(reviews)))

	doc, err := s.ensureAnalytics(ctx, productID)
	if err != nil {
		return err
	}
	doc.AverageRating = avg
	doc.LastUpdated = time.Now()
	return s.analytics.Save(ctx, doc)
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
