package service

import (
	"context"
	"log/slog"

	"github.com/makka/storefront-api/internal/domain/model"
)

// OrderRepository is the slice of the order repository the service needs.
type OrderRepository interface {
	Create(ctx context.Context, customerID string, req *model.CreateOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListWithOptions(ctx context.Context, opts model.OrdersListOptions) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id, storeID string, status model.OrderStatus) (*model.Order, error)
}

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders OrderRepository
	Logger *slog.Logger
}

// OrderService handles customer checkout and store-admin order management.
type OrderService struct {
	orders OrderRepository
	logger *slog.Logger
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{orders: opts.Orders, logger: logger}
}

// Create places an order for the authenticated customer.
func (s *OrderService) Create(ctx context.Context, customerID string, req *model.CreateOrderRequest) (*model.Order, error) {
	order, err := s.orders.Create(ctx, customerID, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "order created",
		"order_id", order.ID, "store_id", order.StoreID, "total", order.Total)
	return order, nil
}

// ListForCustomer returns the customer's own orders.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID string, limit, offset int) ([]*model.Order, error) {
	return s.orders.ListWithOptions(ctx, model.OrdersListOptions{
		CustomerID: &customerID,
		Limit:      limit,
		Offset:     offset,
	})
}

// ListForStore returns a store's orders for its admin.
func (s *OrderService) ListForStore(ctx context.Context, storeID string, limit, offset int) ([]*model.Order, error) {
	return s.orders.ListWithOptions(ctx, model.OrdersListOptions{
		StoreID: &storeID,
		Limit:   limit,
		Offset:  offset,
	})
}

// UpdateStatus moves an order through fulfillment, scoped to the admin's store.
func (s *OrderService) UpdateStatus(ctx context.Context, id, storeID string, status model.OrderStatus) (*model.Order, error) {
	order, err := s.orders.UpdateStatus(ctx, id, storeID, status)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "order status updated",
		"order_id", order.ID, "store_id", storeID, "status", order.Status)
	return order, nil
}
