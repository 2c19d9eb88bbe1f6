package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/makka/storefront-api/internal/data/database"
	"github.com/makka/storefront-api/internal/data/pgxutil"
	"github.com/makka/storefront-api/internal/domain/model"
)

// ProductRepo provides database operations for products.
type ProductRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewProductRepoWithTimeProvider creates a new ProductRepo with a custom time provider (useful for tests).
func NewProductRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProductRepo {
	return &ProductRepo{DB: db, timeProvider: tp}
}

const productColumns = `id, store_id, category_id, name, description, price, images, is_available, created_at`

// Create inserts a product for the store.
func (r *ProductRepo) Create(ctx context.Context, storeID string, req *model.CreateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, errors.New("create product request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	images, err := encodeImages(req.Images)
	if err != nil {
		return nil, err
	}

	var out model.Product
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO products (id, store_id, category_id, name, description, price, images, is_available, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+productColumns,
			uuid.NewString(),
			storeID,
			req.CategoryID,
			strings.TrimSpace(req.Name),
			req.Description,
			req.Price,
			images,
			available,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &out, nil
}

// ListWithOptions retrieves products with optional filters, newest first.
func (r *ProductRepo) ListWithOptions(ctx context.Context, opts model.ProductsListOptions) ([]*model.Product, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(strings.Split(productColumns, ", ")...),
		database.WithCondition(database.WhereCond("store_id", database.Equal, opts.StoreID)),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	if opts.CategoryID != nil && strings.TrimSpace(*opts.CategoryID) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("category_id", database.Equal, strings.TrimSpace(*opts.CategoryID)),
		))
	}
	if opts.OnlyAvailable {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("is_available", database.Equal, true),
		))
	}

	query, args := database.BuildListQuery(database.NewListQueryOptions("products", queryOpts...))

	var rowsOut []model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	res := make([]*model.Product, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a product, scoped to the owning store.
func (r *ProductRepo) Update(ctx context.Context, id, storeID string, req model.UpdateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if req.CategoryID != nil {
		if strings.TrimSpace(*req.CategoryID) == "" {
			setParts = append(setParts, "category_id = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("category_id = $%d", nextIdx()))
			args = append(args, *req.CategoryID)
		}
	}
	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Price != nil {
		setParts = append(setParts, fmt.Sprintf("price = $%d", nextIdx()))
		args = append(args, *req.Price)
	}
	if req.Images != nil {
		images, err := encodeImages(*req.Images)
		if err != nil {
			return nil, err
		}
		setParts = append(setParts, fmt.Sprintf("images = $%d", nextIdx()))
		args = append(args, images)
	}
	if req.IsAvailable != nil {
		setParts = append(setParts, fmt.Sprintf("is_available = $%d", nextIdx()))
		args = append(args, *req.IsAvailable)
	}

	args = append(args, id, storeID)
	query := "UPDATE products SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)-1) +
		" AND store_id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + productColumns

	var out model.Product
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &out, nil
}

// Delete removes a product, scoped to the owning store.
func (r *ProductRepo) Delete(ctx context.Context, id, storeID string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return rows > 0, nil
}

// encodeImages serializes the images slice for the jsonb column, defaulting to [].
func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}
	return data, nil
}
