package repositories

import (
	"sort"
	"strings"
	"sync"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"gorm.io/gorm"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[uint]models.Product), nextID: 1}
}

// WithTx returns the repository itself; the in-memory store has no
// transactions.
func (r *MockProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	return r
}

// GetAll returns all products ordered by id.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

// List returns one page of products plus the total count.
func (r *MockProductRepository) List(offset, limit int) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	total := int64(len(all))
	if offset >= len(all) {
		return []models.Product{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFound("product", id)
	}
	return &product, nil
}

// GetBySKU returns a product by its SKU.
func (r *MockProductRepository) GetBySKU(sku string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.SKU == sku {
			product := p
			return &product, nil
		}
	}
	return nil, apperrors.NewNotFound("product", sku)
}

// GetByCategory returns all products in a category.
func (r *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Product
	for _, p := range r.sorted() {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

// SearchByName returns products whose name contains the keyword,
// case-insensitively.
func (r *MockProductRepository) SearchByName(keyword string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(keyword)
	var result []models.Product
	for _, p := range r.sorted() {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			result = append(result, p)
		}
	}
	return result, nil
}

// Create adds a new product, rejecting duplicate SKUs.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.SKU == product.SKU {
			return apperrors.NewDuplicateSKU(product.SKU)
		}
	}
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	product.SyncStatus()
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NewNotFound("product", product.ID)
	}
	product.SyncStatus()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NewNotFound("product", id)
	}
	delete(r.products, id)
	return nil
}

func (r *MockProductRepository) sorted() []models.Product {
	result := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
