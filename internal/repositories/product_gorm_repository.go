package repositories

import (
	"errors"
	"strings"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *GORMProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &GORMProductRepository{db: tx}
}

// GetAll retrieves all products.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.NewDatabaseError("list products", err)
	}
	return products, nil
}

// List retrieves one page of products plus the total row count.
func (r *GORMProductRepository) List(offset, limit int) ([]models.Product, int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("count products", err)
	}

	var products []models.Product
	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("list products", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", id)
		}
		return nil, apperrors.NewDatabaseError("get product by id", err)
	}
	return &product, nil
}

// GetBySKU retrieves a single product by its unique SKU.
func (r *GORMProductRepository) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", sku)
		}
		return nil, apperrors.NewDatabaseError("get product by sku", err)
	}
	return &product, nil
}

// GetByCategory retrieves all products in a category.
func (r *GORMProductRepository) GetByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.NewDatabaseError("get products by category", err)
	}
	return products, nil
}

// SearchByName performs a case-insensitive substring search on product names.
func (r *GORMProductRepository) SearchByName(keyword string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(keyword) + "%"
	if err := r.db.Where("LOWER(name) LIKE ?", pattern).Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.NewDatabaseError("search products", err)
	}
	return products, nil
}

// Create inserts a new product. A duplicate SKU surfaces as DuplicateSKU.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewDuplicateSKU(product.SKU)
		}
		return apperrors.NewDatabaseError("create product", err)
	}
	return nil
}

// Update writes all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.NewDuplicateSKU(product.SKU)
		}
		return apperrors.NewDatabaseError("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save reports success with zero rows when the record is gone.
		return apperrors.NewNotFound("product", product.ID)
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return apperrors.NewDatabaseError("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("product", id)
	}
	return nil
}
