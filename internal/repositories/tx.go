package repositories

import "gorm.io/gorm"

// TxRepos bundles the relational repositories bound to a single transaction.
type TxRepos struct {
	Products ProductRepository
	Orders   OrderRepository
}

// TxManager runs a unit of work against the relational store. An error
// returned by fn rolls back everything fn wrote.
type TxManager interface {
	Do(fn func(repos TxRepos) error) error
}

// GormTxManager wraps gorm's transaction handling.
type GormTxManager struct {
	db       *gorm.DB
	products ProductRepository
	orders   OrderRepository
}

// NewGormTxManager creates a TxManager over the given DB and repositories.
func NewGormTxManager(db *gorm.DB, products ProductRepository, orders OrderRepository) *GormTxManager {
	return &GormTxManager{db: db, products: products, orders: orders}
}

// Do executes fn inside one transaction, rebinding the repositories to it.
func (m *GormTxManager) Do(fn func(repos TxRepos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(TxRepos{
			Products: m.products.WithTx(tx),
			Orders:   m.orders.WithTx(tx),
		})
	})
}

// NoopTxManager invokes fn directly without transactional guarantees. Meant
// for in-memory repositories where there is nothing to roll back.
type NoopTxManager struct {
	Products ProductRepository
	Orders   OrderRepository
}

// Do calls fn with the configured repositories as-is.
func (m *NoopTxManager) Do(fn func(repos TxRepos) error) error {
	return fn(TxRepos{Products: m.Products, Orders: m.Orders})
}
