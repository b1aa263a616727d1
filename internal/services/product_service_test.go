package services_test

import (
	"testing"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductService() (*services.ProductService, *repositories.MockProductRepository) {
	repo := repositories.NewMockProductRepository()
	return services.NewProductService(repo, zap.NewNop()), repo
}

func TestProductService_CreateProduct_DerivesStatus(t *testing.T) {
	service, _ := newProductService()

	inStock := &models.Product{
		Name:     "Mechanical Keyboard",
		Price:    decimal.NewFromFloat(79.99),
		Quantity: 25,
		SKU:      "KB-001",
		Category: "peripherals",
	}
	require.NoError(t, service.CreateProduct(inStock))
	assert.Equal(t, models.StatusInStock, inStock.Status)
	assert.NotZero(t, inStock.ID)

	depleted := &models.Product{
		Name:     "Vertical Mouse",
		Price:    decimal.NewFromFloat(45.50),
		Quantity: 0,
		SKU:      "MS-002",
		Category: "peripherals",
	}
	require.NoError(t, service.CreateProduct(depleted))
	assert.Equal(t, models.StatusOutOfStock, depleted.Status)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	service, _ := newProductService()

	// Missing name.
	err := service.CreateProduct(&models.Product{
		Price:    decimal.NewFromFloat(10.00),
		Quantity: 5,
		SKU:      "SKU-1",
	})
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)

	// Non-positive price.
	err = service.CreateProduct(&models.Product{
		Name:     "Free Sample",
		Price:    decimal.Zero,
		Quantity: 5,
		SKU:      "SKU-2",
	})
	require.Error(t, err)
	stdErr := apperrors.AsStandardError(err)
	assert.Equal(t, "ValidationError", stdErr.Code)
	assert.Contains(t, stdErr.Message, "price")

	// Negative quantity.
	err = service.CreateProduct(&models.Product{
		Name:     "Backorder Widget",
		Price:    decimal.NewFromFloat(10.00),
		Quantity: -1,
		SKU:      "SKU-3",
	})
	require.Error(t, err)
	assert.Equal(t, "ValidationError", apperrors.AsStandardError(err).Code)
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	service, _ := newProductService()

	first := &models.Product{
		Name:     "USB Hub",
		Price:    decimal.NewFromFloat(19.99),
		Quantity: 10,
		SKU:      "HUB-001",
	}
	require.NoError(t, service.CreateProduct(first))

	err := service.CreateProduct(&models.Product{
		Name:     "USB Hub v2",
		Price:    decimal.NewFromFloat(24.99),
		Quantity: 10,
		SKU:      "HUB-001",
	})
	require.Error(t, err)
	assert.Equal(t, "DuplicateSKU", apperrors.AsStandardError(err).Code)
}

func TestProductService_UpdateProduct(t *testing.T) {
	service, _ := newProductService()

	product := &models.Product{
		Name:     "Webcam",
		Price:    decimal.NewFromFloat(59.99),
		Quantity: 8,
		SKU:      "CAM-001",
		Category: "peripherals",
	}
	require.NoError(t, service.CreateProduct(product))

	updated, err := service.UpdateProduct(product.ID, &models.Product{
		Name:     "Webcam HD",
		Price:    decimal.NewFromFloat(69.99),
		Quantity: 0,
		SKU:      "CAM-001",
		Category: "peripherals",
	})
	require.NoError(t, err)
	assert.Equal(t, product.ID, updated.ID)
	assert.Equal(t, "Webcam HD", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(69.99)))
	assert.Equal(t, models.StatusOutOfStock, updated.Status)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	service, _ := newProductService()

	_, err := service.UpdateProduct(999, &models.Product{
		Name:     "Ghost Product",
		Price:    decimal.NewFromFloat(10.00),
		Quantity: 1,
		SKU:      "GHOST-1",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductService_DeleteProduct(t *testing.T) {
	service, _ := newProductService()

	product := &models.Product{
		Name:     "Desk Mat",
		Price:    decimal.NewFromFloat(15.00),
		Quantity: 30,
		SKU:      "MAT-001",
	}
	require.NoError(t, service.CreateProduct(product))
	require.NoError(t, service.DeleteProduct(product.ID))

	_, err := service.GetProductByID(product.ID)
	assert.True(t, apperrors.IsNotFound(err))

	assert.True(t, apperrors.IsNotFound(service.DeleteProduct(product.ID)))
}

func TestProductService_SearchProducts(t *testing.T) {
	service, _ := newProductService()

	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "Gaming Laptop", Price: decimal.NewFromFloat(1299.00), Quantity: 3, SKU: "LAP-001",
	}))
	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "Laptop Stand", Price: decimal.NewFromFloat(35.00), Quantity: 12, SKU: "STD-001",
	}))
	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "Monitor Arm", Price: decimal.NewFromFloat(89.00), Quantity: 7, SKU: "ARM-001",
	}))

	results, err := service.SearchProducts("laptop")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = service.SearchProducts("")
	require.Error(t, err)
	assert.Equal(t, "InvalidRequest", apperrors.AsStandardError(err).Code)
}

func TestProductService_GetProductBySKU(t *testing.T) {
	service, _ := newProductService()

	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "Headset", Price: decimal.NewFromFloat(49.99), Quantity: 20, SKU: "HS-001",
	}))

	product, err := service.GetProductBySKU("HS-001")
	require.NoError(t, err)
	assert.Equal(t, "Headset", product.Name)

	_, err = service.GetProductBySKU("NOPE")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductService_GetProductsByCategory(t *testing.T) {
	service, _ := newProductService()

	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "SSD 1TB", Price: decimal.NewFromFloat(99.00), Quantity: 15, SKU: "SSD-001", Category: "storage",
	}))
	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "HDD 4TB", Price: decimal.NewFromFloat(79.00), Quantity: 9, SKU: "HDD-001", Category: "storage",
	}))
	require.NoError(t, service.CreateProduct(&models.Product{
		Name: "RAM 16GB", Price: decimal.NewFromFloat(55.00), Quantity: 25, SKU: "RAM-001", Category: "memory",
	}))

	storage, err := service.GetProductsByCategory("storage")
	require.NoError(t, err)
	assert.Len(t, storage, 2)
}
