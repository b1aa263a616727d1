package services

import (
	"context"
	"time"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateOrderItemRequest is one requested line item.
type CreateOrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerEmail   string                   `json:"customer_email" validate:"required,email"`
	PaymentMethod   string                   `json:"payment_method" validate:"required"`
	ShippingAddress string                   `json:"shipping_address" validate:"required"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PagedProducts is one page of the storefront catalog.
type PagedProducts struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Size     int              `json:"size"`
	Total    int64            `json:"total"`
}

// StorefrontService handles the customer-facing order workflow.
type StorefrontService struct {
	txm       repositories.TxManager
	products  repositories.ProductRepository
	orders    repositories.OrderRepository
	analytics *AnalyticsService
	mqClient  *rabbitmq.Client
	validate  *validator.Validate
	log       *zap.Logger
}

// NewStorefrontService creates a new StorefrontService. The analytics
// service and MQ client may be nil; both sides are best-effort.
func NewStorefrontService(
	txm repositories.TxManager,
	products repositories.ProductRepository,
	orders repositories.OrderRepository,
	analytics *AnalyticsService,
	mqClient *rabbitmq.Client,
	log *zap.Logger,
) *StorefrontService {
	return &StorefrontService{
		txm:       txm,
		products:  products,
		orders:    orders,
		analytics: analytics,
		mqClient:  mqClient,
		validate:  validator.New(),
		log:       log,
	}
}

// GetProducts returns one page of the catalog.
func (s *StorefrontService) GetProducts(page, size int) (*PagedProducts, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	products, total, err := s.products.List(page*size, size)
	if err != nil {
		return nil, err
	}
	return &PagedProducts{Products: products, Page: page, Size: size, Total: total}, nil
}

// GetProduct returns a single catalog product.
func (s *StorefrontService) GetProduct(id uint) (*models.Product, error) {
	return s.products.GetByID(id)
}

// GetOrder retrieves an order with its items.
func (s *StorefrontService) GetOrder(id uint) (*models.Order, error) {
	return s.orders.GetByID(id)
}

// GetOrdersByEmail retrieves all orders placed under an email address.
func (s *StorefrontService) GetOrdersByEmail(email string) ([]models.Order, error) {
	if email == "" {
		return nil, apperrors.NewInvalidRequest("email is required")
	}
	return s.orders.GetByCustomerEmail(email)
}

// CreateOrder places an order. For each requested item the product is
// fetched, stock is checked and decremented (status flips to out-of-stock
// at zero), the unit price is snapshotted, and the running total
// accumulated. The whole sequence runs in a single relational transaction;
// any failure rolls back every prior decrement. No row locking is taken,
// so concurrent orders against the same product race on quantity.
func (s *StorefrontService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("invalid order payload", err.Error())
	}

	var created *models.Order
	err := s.txm.Do(func(repos repositories.TxRepos) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, itemReq := range req.Items {
			product, err := repos.Products.GetByID(itemReq.ProductID)
			if err != nil {
				return err
			}
			if product.Quantity < itemReq.Quantity {
				return apperrors.NewInsufficientStock(product.Name, itemReq.Quantity, product.Quantity)
			}

			product.Quantity -= itemReq.Quantity
			product.SyncStatus()
			if err := repos.Products.Update(product); err != nil {
				return err
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(itemReq.Quantity)))
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    itemReq.Quantity,
				UnitPrice:   product.Price,
				Subtotal:    subtotal,
			})
			total = total.Add(subtotal)
		}

		order := &models.Order{
			CustomerEmail:   req.CustomerEmail,
			PaymentMethod:   req.PaymentMethod,
			ShippingAddress: req.ShippingAddress,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			OrderDate:       time.Now(),
			Items:           items,
		}
		if err := repos.Orders.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.Uint("order_id", created.ID),
		zap.String("customer_email", created.CustomerEmail),
		zap.String("total_amount", created.TotalAmount.String()))

	s.publishOrderCreated(created)
	s.syncPurchaseAnalytics(created)

	return created, nil
}

// publishOrderCreated emits the order.created event. Failures are logged,
// never surfaced to the caller.
func (s *StorefrontService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"order_id":       order.ID,
		"customer_email": order.CustomerEmail,
		"status":         order.Status,
		"total_amount":   order.TotalAmount.String(),
		"item_count":     len(order.Items),
	}
	if err := s.mqClient.PublishOrderEvent("order.created", payload); err != nil {
		s.log.Warn("failed to publish order.created event",
			zap.Uint("order_id", order.ID), zap.Error(err))
	}
}

// syncPurchaseAnalytics updates purchase counters and logs PURCHASE
// activity in the document store. The order is already committed;
// analytics lag is acceptable.
func (s *StorefrontService) syncPurchaseAnalytics(order *models.Order) {
	if s.analytics == nil {
		return
	}
	ctx := context.Background()
	for _, item := range order.Items {
		if err := s.analytics.RecordPurchase(ctx, item.ProductID, item.Quantity); err != nil {
			s.log.Warn("failed to sync purchase analytics",
				zap.Uint("product_id", item.ProductID), zap.Error(err))
		}
		err := s.analytics.LogActivity(ctx, &models.UserActivityLog{
			UserID:    order.CustomerEmail,
			Action:    models.ActionPurchase,
			ProductID: item.ProductID,
			Metadata: map[string]interface{}{
				"order_id": order.ID,
				"quantity": item.Quantity,
			},
		})
		if err != nil {
			s.log.Warn("failed to log purchase activity",
				zap.Uint("product_id", item.ProductID), zap.Error(err))
		}
	}
}
