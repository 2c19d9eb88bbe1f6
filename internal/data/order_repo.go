package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/makka/storefront-api/internal/data/database"
	"github.com/makka/storefront-api/internal/data/pgxutil"
	"github.com/makka/storefront-api/internal/domain/model"
)

// OrderRepo provides database operations for orders.
type OrderRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const orderColumns = `id, store_id, customer_id, total, payment_status, status, created_at`

// Create inserts a new order in the NEW/PENDING state.
func (r *OrderRepo) Create(ctx context.Context, customerID string, req *model.CreateOrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, errors.New("create order request is required")
	}
	if customerID == "" {
		return nil, errors.New("customer ID is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Order
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO orders (id, store_id, customer_id, total, payment_status, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+orderColumns,
			uuid.NewString(),
			req.StoreID,
			customerID,
			req.Total,
			model.PaymentStatusPending,
			model.OrderStatusNew,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an order by ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var out model.Order
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &out, nil
}

// ListWithOptions retrieves orders scoped by store and/or customer, newest first.
func (r *OrderRepo) ListWithOptions(ctx context.Context, opts model.OrdersListOptions) ([]*model.Order, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns("id", "store_id", "customer_id", "total", "payment_status", "status", "created_at"),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	if opts.StoreID != nil && *opts.StoreID != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("store_id", database.Equal, *opts.StoreID),
		))
	}
	if opts.CustomerID != nil && *opts.CustomerID != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("customer_id", database.Equal, *opts.CustomerID),
		))
	}

	query, args := database.BuildListQuery(database.NewListQueryOptions("orders", queryOpts...))

	var rowsOut []model.Order
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	res := make([]*model.Order, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus changes the fulfillment status, scoped to the owning store.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, storeID string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid order status %q", status)
	}

	var out model.Order
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE orders SET status = $1
			WHERE id = $2 AND store_id = $3
			RETURNING `+orderColumns,
			status, id, storeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &out, nil
}

// CountAndGMV returns the total order count and the summed total of PAID
// orders in a single query.
func (r *OrderRepo) CountAndGMV(ctx context.Context) (count, gmv int64, err error) {
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT COUNT(*),
			       COALESCE(SUM(total) FILTER (WHERE payment_status = $1), 0)
			FROM orders`, model.PaymentStatusPaid).Scan(&count, &gmv)
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	return count, gmv, nil
}
