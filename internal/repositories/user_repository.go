package repositories

import "github.com/06bhavi/ecommerce-inventory-system/internal/models"

// UserRepository defines data access for admin accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
