package handlers

import (
	"strconv"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for catalog administration.
type ProductHandler struct {
	service   *services.ProductService
	analytics *services.AnalyticsService
}

// NewProductHandler creates a new ProductHandler. The analytics service
// handles the dual-store inventory update.
func NewProductHandler(service *services.ProductService, analytics *services.AnalyticsService) *ProductHandler {
	return &ProductHandler{service: service, analytics: analytics}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Post("/", h.HandleCreateProduct)
	products.Get("/", h.HandleGetProducts)
	products.Get("/search", h.HandleSearchProducts)
	products.Get("/sku/:sku", h.HandleGetProductBySKU)
	products.Get("/category/:category", h.HandleGetProductsByCategory)
	products.Get("/:id", h.HandleGetProductByID)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
	products.Patch("/:id/inventory", h.HandleUpdateInventory)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleGetProductBySKU retrieves a single product by its SKU.
func (h *ProductHandler) HandleGetProductBySKU(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySKU(c.Params("sku"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleGetProductsByCategory retrieves all products in a category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleSearchProducts performs a case-insensitive name search.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleUpdateProduct overwrites an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var details models.Product
	if err := c.BodyParser(&details); err != nil {
		return apperrors.NewInvalidRequest("invalid request body")
	}
	product, err := h.service.UpdateProduct(id, &details)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "product deleted successfully"})
}

// HandleUpdateInventory sets the absolute stock quantity for a product,
// updating both stores.
func (h *ProductHandler) HandleUpdateInventory(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	quantityParam := c.Query("quantity")
	if quantityParam == "" {
		return apperrors.NewInvalidRequest("quantity query parameter is required")
	}
	quantity, convErr := strconv.Atoi(quantityParam)
	if convErr != nil {
		return apperrors.NewInvalidRequest("quantity must be an integer")
	}

	product, err := h.analytics.UpdateStock(c.Context(), id, quantity)
	if err != nil {
		return err
	}
	return c.JSON(product)
}
