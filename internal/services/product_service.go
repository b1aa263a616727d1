package services

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles business logic for the product catalog.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
	log      *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductBySKU retrieves a single product by its SKU.
func (s *ProductService) GetProductBySKU(sku string) (*models.Product, error) {
	return s.repo.GetBySKU(sku)
}

// GetProductsByCategory retrieves all products in a category.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// SearchProducts performs a case-insensitive name search.
func (s *ProductService) SearchProducts(keyword string) ([]models.Product, error) {
	if keyword == "" {
		return nil, apperrors.NewInvalidRequest("search keyword is required")
	}
	return s.repo.SearchByName(keyword)
}

// CreateProduct validates and creates a new product. Status is derived
// from the initial quantity.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}

	product.SyncStatus()
	if err := s.repo.Create(product); err != nil {
		return err
	}

	s.log.Info("product created",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU))
	return nil
}

// UpdateProduct overwrites the mutable fields of an existing product.
func (s *ProductService) UpdateProduct(id uint, details *models.Product) (*models.Product, error) {
	if err := s.validateProduct(details); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = details.Name
	product.Description = details.Description
	product.Price = details.Price
	product.Quantity = details.Quantity
	product.SKU = details.SKU
	product.Category = details.Category
	product.SyncStatus()

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

func (s *ProductService) validateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return apperrors.NewValidationError("invalid product payload", err.Error())
	}
	if product.Price.Cmp(decimal.Zero) <= 0 {
		return apperrors.NewValidationError("price must be greater than zero", "field: price")
	}
	return nil
}
