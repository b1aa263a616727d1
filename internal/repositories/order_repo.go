package repositories

import (
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"

	"gorm.io/gorm"
)

// OrderRepository defines data access for orders and their line items.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByCustomerEmail(email string) ([]models.Order, error)

	WithTx(tx *gorm.DB) OrderRepository
}
