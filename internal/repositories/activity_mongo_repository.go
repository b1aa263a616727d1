package repositories

import (
	"context"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activityCollection = "user_activity_log"

// MongoActivityRepository stores UserActivityLog documents in MongoDB.
type MongoActivityRepository struct {
	coll *mongo.Collection
}

// NewMongoActivityRepository creates a repository over the
// user_activity_log collection.
func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

// Create appends an activity entry, assigning a new id.
func (r *MongoActivityRepository) Create(ctx context.Context, entry *models.UserActivityLog) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return apperrors.NewDatabaseError("create activity entry", err)
	}
	return nil
}

// GetByUserID retrieves all activity entries for a user.
func (r *MongoActivityRepository) GetByUserID(ctx context.Context, userID string) ([]models.UserActivityLog, error) {
	return r.find(ctx, bson.M{"user_id": userID}, nil)
}

// GetByProductID retrieves all activity entries touching a product.
func (r *MongoActivityRepository) GetByProductID(ctx context.Context, productID uint) ([]models.UserActivityLog, error) {
	return r.find(ctx, bson.M{"product_id": productID}, nil)
}

// RecentByUser retrieves up to limit entries sorted by timestamp descending.
// Descending sort places missing timestamps last.
func (r *MongoActivityRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]models.UserActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

// TopViewed aggregates PRODUCT_VIEW events per product, most viewed first.
func (r *MongoActivityRepository) TopViewed(ctx context.Context, limit int) ([]models.ProductViewCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"action": models.ActionProductView}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$product_id",
			"product_name": bson.M{"$first": "$product_name"},
			"view_count":   bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"view_count": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.NewDatabaseError("aggregate top viewed", err)
	}
	defer cursor.Close(ctx)

	var results []models.ProductViewCount
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperrors.NewDatabaseError("decode top viewed", err)
	}
	return results, nil
}

func (r *MongoActivityRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.UserActivityLog, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("find activity entries", err)
	}
	defer cursor.Close(ctx)

	var entries []models.UserActivityLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperrors.NewDatabaseError("decode activity entries", err)
	}
	return entries, nil
}
