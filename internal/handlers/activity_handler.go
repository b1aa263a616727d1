package handlers

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles HTTP requests for the user activity log.
type ActivityHandler struct {
	service *services.AnalyticsService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(service *services.AnalyticsService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// RegisterRoutes registers the activity routes.
func (h *ActivityHandler) RegisterRoutes(router fiber.Router) {
	activity := router.Group("/activity")
	activity.Post("/", h.HandleLogActivity)
	activity.Get("/user/:userId", h.HandleGetUserActivity)
	activity.Get("/user/:userId/recent", h.HandleGetRecentUserActivity)
	activity.Get("/product/:productId", h.HandleGetProductActivity)
	activity.Get("/analytics/top-viewed", h.HandleGetTopViewed)
}

// HandleLogActivity records a user activity event. Accepted with 202; the
// analytics side runs best-effort.
func (h *ActivityHandler) HandleLogActivity(c *fiber.Ctx) error {
	var entry models.UserActivityLog
	if err := c.BodyParser(&entry); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	if err := h.service.LogActivity(c.Context(), &entry); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// HandleGetUserActivity returns all activity entries for a user.
func (h *ActivityHandler) HandleGetUserActivity(c *fiber.Ctx) error {
	entries, err := h.service.UserActivity(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// HandleGetRecentUserActivity returns the ten most recent entries for a
// user.
func (h *ActivityHandler) HandleGetRecentUserActivity(c *fiber.Ctx) error {
	entries, err := h.service.RecentUserActivity(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// HandleGetProductActivity returns all activity entries for a product.
func (h *ActivityHandler) HandleGetProductActivity(c *fiber.Ctx) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	entries, err := h.service.ProductActivity(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// HandleGetTopViewed returns the ten most viewed products.
func (h *ActivityHandler) HandleGetTopViewed(c *fiber.Ctx) error {
	counts, err := h.service.TopViewedProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(counts)
}
