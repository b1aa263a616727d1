package repositories

import (
	"context"
	"errors"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const reviewCollection = "product_review"

// MongoReviewRepository stores ProductReview documents in MongoDB.
type MongoReviewRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewRepository creates a repository over the product_review
// collection.
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(reviewCollection)}
}

// Create inserts a review, assigning a new id.
func (r *MongoReviewRepository) Create(ctx context.Context, review *models.ProductReview) error {
	if review.ID == "" {
		review.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return apperrors.NewDatabaseError("create review", err)
	}
	return nil
}

// GetByID retrieves a single review.
func (r *MongoReviewRepository) GetByID(ctx context.Context, id string) (*models.ProductReview, error) {
	var review models.ProductReview
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("review", id)
		}
		return nil, apperrors.NewDatabaseError("get review by id", err)
	}
	return &review, nil
}

// GetByProductID retrieves all reviews for a product.
func (r *MongoReviewRepository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductReview, error) {
	return r.find(ctx, bson.M{"product_id": productID})
}

// GetByUserID retrieves all reviews written by a user.
func (r *MongoReviewRepository) GetByUserID(ctx context.Context, userID string) ([]models.ProductReview, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetByTag retrieves all reviews carrying a tag.
func (r *MongoReviewRepository) GetByTag(ctx context.Context, tag string) ([]models.ProductReview, error) {
	return r.find(ctx, bson.M{"tags": tag})
}

// Update replaces an existing review.
func (r *MongoReviewRepository) Update(ctx context.Context, review *models.ProductReview) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return apperrors.NewDatabaseError("update review", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFound("review", review.ID)
	}
	return nil
}

// Delete removes a review by id.
func (r *MongoReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewDatabaseError("delete review", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFound("review", id)
	}
	return nil
}

func (r *MongoReviewRepository) find(ctx context.Context, filter bson.M) ([]models.ProductReview, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewDatabaseError("find reviews", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.ProductReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, apperrors.NewDatabaseError("decode reviews", err)
	}
	return reviews, nil
}
