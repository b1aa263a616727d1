package repositories

import (
	"context"
	"errors"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const analyticsCollection = "inventory_analytics"

// MongoAnalyticsRepository stores InventoryAnalytics documents in MongoDB.
type MongoAnalyticsRepository struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepository creates a repository over the
// inventory_analytics collection.
func NewMongoAnalyticsRepository(db *mongo.Database) *MongoAnalyticsRepository {
	return &MongoAnalyticsRepository{coll: db.Collection(analyticsCollection)}
}

// FindByProductID retrieves the analytics document for one product.
func (r *MongoAnalyticsRepository) FindByProductID(ctx context.Context, productID uint) (*models.InventoryAnalytics, error) {
	var doc models.InventoryAnalytics
	err := r.coll.FindOne(ctx, bson.M{"product_id": productID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("analytics", productID)
		}
		return nil, apperrors.NewDatabaseError("find analytics by product id", err)
	}
	return &doc, nil
}

// FindAll retrieves every analytics document.
func (r *MongoAnalyticsRepository) FindAll(ctx context.Context) ([]models.InventoryAnalytics, error) {
	return r.find(ctx, bson.M{}, nil)
}

// FindByCategory retrieves analytics documents for one category.
func (r *MongoAnalyticsRepository) FindByCategory(ctx context.Context, category string) ([]models.InventoryAnalytics, error) {
	return r.find(ctx, bson.M{"category": category}, nil)
}

// TopRated retrieves documents whose average rating exceeds minRating.
func (r *MongoAnalyticsRepository) TopRated(ctx context.Context, minRating float64) ([]models.InventoryAnalytics, error) {
	return r.find(ctx, bson.M{"average_rating": bson.M{"$gt": minRating}}, nil)
}

// Trending retrieves the top documents by view count descending.
func (r *MongoAnalyticsRepository) Trending(ctx context.Context, limit int) ([]models.InventoryAnalytics, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "total_view_count", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

// LowStock retrieves documents whose current stock is below threshold.
func (r *MongoAnalyticsRepository) LowStock(ctx context.Context, threshold int) ([]models.InventoryAnalytics, error) {
	return r.find(ctx, bson.M{"current_stock": bson.M{"$lt": threshold}}, nil)
}

// Save upserts the document keyed by product id, preserving any existing
// Mongo _id.
func (r *MongoAnalyticsRepository) Save(ctx context.Context, analytics *models.InventoryAnalytics) error {
	doc := *analytics
	doc.ID = "" // never overwrite _id on replace

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"product_id": analytics.ProductID},
		&doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return apperrors.NewDatabaseError("save analytics", err)
	}
	return nil
}

// DeleteByProductID removes the analytics document for one product.
func (r *MongoAnalyticsRepository) DeleteByProductID(ctx context.Context, productID uint) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"product_id": productID}); err != nil {
		return apperrors.NewDatabaseError("delete analytics", err)
	}
	return nil
}

func (r *MongoAnalyticsRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.InventoryAnalytics, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("find analytics", err)
	}
	defer cursor.Close(ctx)

	var docs []models.InventoryAnalytics
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewDatabaseError("decode analytics", err)
	}
	return docs, nil
}
