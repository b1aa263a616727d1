package repositories

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"

	"gorm.io/gorm"
)

// ProductRepository defines data access for the relational product catalog.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	List(offset, limit int) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	SearchByName(keyword string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error

	// WithTx returns a repository bound to the given transaction. The GORM
	// implementation rebinds; in-memory implementations return themselves.
	WithTx(tx *gorm.DB) ProductRepository
}
