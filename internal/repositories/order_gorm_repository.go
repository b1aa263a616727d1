package repositories

import (
	"errors"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *GORMOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &GORMOrderRepository{db: tx}
}

// Create inserts an order together with its line items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return apperrors.NewDatabaseError("create order", err)
	}
	return nil
}

// GetByID retrieves an order with its items preloaded.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order", id)
		}
		return nil, apperrors.NewDatabaseError("get order by id", err)
	}
	return &order, nil
}

// GetByCustomerEmail retrieves all orders for a customer, newest first.
// The email match is case-insensitive.
func (r *GORMOrderRepository) GetByCustomerEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("LOWER(customer_email) = LOWER(?)", email).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("get orders by customer email", err)
	}
	return orders, nil
}
