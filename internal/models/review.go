package models

import "time"

// ProductReview is a document in the product_review collection.
type ProductReview struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ProductID  uint      `json:"product_id" bson:"product_id"`
	UserID     string    `json:"user_id" bson:"user_id" validate:"required"`
	Rating     float64   `json:"rating" bson:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string    `json:"review_text" bson:"review_text" validate:"omitempty,max=2000"`
	Tags       []string  `json:"tags" bson:"tags"`
	Helpful    int       `json:"helpful" bson:"helpful"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
