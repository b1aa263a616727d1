package handlers

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for the denormalized analytics
// documents.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// RegisterRoutes registers the analytics routes.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	analytics := router.Group("/analytics")
	analytics.Get("/product/:productId", h.HandleGetProductAnalytics)
	analytics.Get("/top-rated", h.HandleGetTopRated)
	analytics.Get("/trending", h.HandleGetTrending)
	analytics.Get("/low-stock", h.HandleGetLowStock)
	analytics.Get("/category/:category", h.HandleGetCategoryAnalytics)
	analytics.Post("/sync", h.HandleSync)
}

// HandleGetProductAnalytics returns the analytics document for a product.
func (h *AnalyticsHandler) HandleGetProductAnalytics(c *fiber.Ctx) error {
	productID, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	doc, err := h.service.ProductAnalytics(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// HandleGetTopRated returns products rated above 4.0.
func (h *AnalyticsHandler) HandleGetTopRated(c *fiber.Ctx) error {
	docs, err := h.service.TopRatedProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// HandleGetTrending returns the ten most viewed products.
func (h *AnalyticsHandler) HandleGetTrending(c *fiber.Ctx) error {
	docs, err := h.service.TrendingProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// HandleGetLowStock returns products with mirrored stock below ten.
func (h *AnalyticsHandler) HandleGetLowStock(c *fiber.Ctx) error {
	docs, err := h.service.LowStockProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// HandleGetCategoryAnalytics returns analytics documents for a category.
func (h *AnalyticsHandler) HandleGetCategoryAnalytics(c *fiber.Ctx) error {
	docs, err := h.service.CategoryAnalytics(c.Context(), c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// HandleSync triggers a full reconciliation of analytics documents
// against the relational store.
func (h *AnalyticsHandler) HandleSync(c *fiber.Ctx) error {
	synced, err := h.service.Reconcile(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "analytics sync completed", "synced": synced})
}
