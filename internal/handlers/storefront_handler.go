package handlers

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// StorefrontHandler handles the customer-facing catalog and order routes.
type StorefrontHandler struct {
	service *services.StorefrontService
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(service *services.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{service: service}
}

// RegisterRoutes registers the storefront and order routes.
func (h *StorefrontHandler) RegisterRoutes(router fiber.Router) {
	storefront := router.Group("/storefront")
	storefront.Get("/products", h.HandleGetProducts)
	storefront.Get("/products/:id", h.HandleGetProduct)
	storefront.Get("/my-orders", h.HandleGetMyOrders)

	orders := router.Group("/orders")
	orders.Post("/", h.HandleCreateOrder)
	orders.Get("/:id", h.HandleGetOrder)
}

// HandleGetProducts returns one page of the catalog.
func (h *StorefrontHandler) HandleGetProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)
	result, err := h.service.GetProducts(page, size)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleGetProduct returns a single catalog product.
func (h *StorefrontHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateOrder places a new order.
func (h *StorefrontHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	order, err := h.service.CreateOrder(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrder retrieves an order with its line items.
func (h *StorefrontHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	order, err := h.service.GetOrder(id)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// HandleGetMyOrders retrieves all orders for a customer email.
func (h *StorefrontHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByEmail(c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
