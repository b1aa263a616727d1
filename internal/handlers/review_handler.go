package handlers

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service *services.AnalyticsService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.AnalyticsService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviews := router.Group("/reviews")
	reviews.Post("/:productId", h.HandleAddReview)
	reviews.Get("/:productId", h.HandleGetProductReviews)
	reviews.Get("/:productId/average-rating", h.HandleGetAverageRating)
	reviews.Get("/:productId/top-reviews", h.HandleGetTopReviews)
	reviews.Put("/id/:reviewId", h.HandleUpdateReview)
	reviews.Delete("/id/:reviewId", h.HandleDeleteReview)
}

// HandleAddReview submits a review for a product.
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	var review models.ProductReview
	if err := c.BodyParser(&review); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	review.ProductID = productID

	if err := h.service.AddReview(c.Context(), &review); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleGetProductReviews returns all reviews for a product.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	reviews, err := h.service.GetProductReviews(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

// HandleGetAverageRating returns the mean rating and review count.
func (h *ReviewHandler) HandleGetAverageRating(c *fiber.Ctx) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	avg, count, err := h.service.AverageRating(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"product_id":     productID,
		"average_rating": avg,
		"total_reviews":  count,
	})
}

// HandleGetTopReviews returns the most helpful reviews for a product.
func (h *ReviewHandler) HandleGetTopReviews(c *fiber.Ctx) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	reviews, err := h.service.TopReviews(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

// HandleUpdateReview overwrites the mutable fields of a review.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var details models.ProductReview
	if err := c.BodyParser(&details); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	review, err := h.service.UpdateReview(c.Context(), c.Params("reviewId"), &details)
	if err != nil {
		return err
	}
	return c.JSON(review)
}

// HandleDeleteReview removes a review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(c.Context(), c.Params("reviewId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
