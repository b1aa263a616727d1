package repositories

import (
	"sort"
	"strings"
	"sync"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"gorm.io/gorm"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[uint]models.Order
	nextID uint
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[uint]models.Order), nextID: 1}
}

// WithTx returns the repository itself; the in-memory store has no
// transactions.
func (r *MockOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return r
}

// Create stores an order and assigns ids to it and its items.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}
	for i := range order.Items {
		order.Items[i].ID = uint(i + 1)
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NewNotFound("order", id)
	}
	return &order, nil
}

// GetByCustomerEmail returns all orders for a customer, newest first.
func (r *MockOrderRepository) GetByCustomerEmail(email string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Order
	for _, o := range r.orders {
		if strings.EqualFold(o.CustomerEmail, email) {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderDate.After(result[j].OrderDate)
	})
	return result, nil
}
