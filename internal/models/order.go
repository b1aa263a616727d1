package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a customer order aggregating one or more line items. TotalAmount
// is always the sum of item subtotals computed at order time.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerEmail   string          `json:"customer_email" gorm:"type:varchar(255);not null;index" validate:"required,email"`
	PaymentMethod   string          `json:"payment_method" gorm:"type:varchar(50)" validate:"required"`
	ShippingAddress string          `json:"shipping_address" gorm:"type:text" validate:"required"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2)"`
	Status          string          `json:"status" gorm:"type:varchar(20)"`
	OrderDate       time.Time       `json:"order_date"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a single product line within an order. UnitPrice snapshots
// the product price at purchase time so later price changes never affect
// past orders.
type OrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"index"`
	ProductID   uint            `json:"product_id" gorm:"not null"`
	ProductName string          `json:"product_name" gorm:"type:varchar(100)"`
	Quantity    int             `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
}
