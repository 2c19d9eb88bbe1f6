package model

import (
	"errors"
	"strings"
	"time"
)

// PaymentStatus tracks whether an order has been paid.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Valid reports whether the payment status is supported.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// OrderStatus tracks order fulfillment.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDone      OrderStatus = "DONE"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether the order status is supported.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady, OrderStatusDone, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus normalizes a status string and reports whether it is supported.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Order is a customer purchase against one store.
type Order struct {
	ID            string        `json:"id"             db:"id"`
	StoreID       string        `json:"store_id"       db:"store_id"`
	CustomerID    string        `json:"customer_id"    db:"customer_id"`
	Total         int64         `json:"total"          db:"total"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	Status        OrderStatus   `json:"status"         db:"status"`
	CreatedAt     time.Time     `json:"created_at"     db:"created_at"`
}

// CreateOrderRequest represents parameters to create an Order.
// CustomerID comes from the authenticated session, not the payload.
type CreateOrderRequest struct {
	StoreID string `json:"store_id"`
	Total   int64  `json:"total"`
}

// Validate validates CreateOrderRequest.
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.StoreID) == "" {
		return errors.New("store_id is required")
	}
	if r.Total <= 0 {
		return errors.New("total must be > 0")
	}
	return nil
}

// OrdersListOptions controls paging and scoping for listing orders.
type OrdersListOptions struct {
	StoreID    *string
	CustomerID *string
	Limit      int
	Offset     int
}

// DashboardStats summarizes the platform for the super-admin console.
// GMV counts only orders with payment_status = PAID.
type DashboardStats struct {
	TotalStores int64 `json:"total_stores"`
	TotalUsers  int64 `json:"total_users"`
	TotalOrders int64 `json:"total_orders"`
	TotalGMV    int64 `json:"total_gmv"`
}
