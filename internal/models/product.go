package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product stock statuses. Status is derived from Quantity and must never
// disagree with it.
const (
	StatusInStock    = "IN_STOCK"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// Product is a row in the relational product catalog, the system of record
// for price and stock.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Description string          `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null" validate:"gte=0"`
	SKU         string          `json:"sku" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,max=50"`
	Category    string          `json:"category" gorm:"type:varchar(100)"`
	Status      string          `json:"status" gorm:"type:varchar(20)"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SyncStatus recomputes Status from Quantity.
func (p *Product) SyncStatus() {
	if p.Quantity > 0 {
		p.Status = StatusInStock
	} else {
		p.Status = StatusOutOfStock
	}
}

// BeforeSave keeps the status invariant regardless of which code path
// writes the row.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.SyncStatus()
	return nil
}
