package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/makka/storefront-api/internal/data/pgxutil"
	"github.com/makka/storefront-api/internal/domain/model"
)

// CategoryRepo provides database operations for product categories.
type CategoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const categoryColumns = `id, name, store_id, created_at`

// Create inserts a category for the store.
func (r *CategoryRepo) Create(ctx context.Context, storeID string, req *model.CreateCategoryRequest) (*model.Category, error) {
	if req == nil {
		return nil, errors.New("create category request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO categories (id, name, store_id, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+categoryColumns,
			uuid.NewString(), strings.TrimSpace(req.Name), storeID, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var out model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+categoryColumns+`
			FROM categories
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &out, nil
}

// ListByStore retrieves the store's categories ordered by name.
func (r *CategoryRepo) ListByStore(ctx context.Context, storeID string) ([]*model.Category, error) {
	var rowsOut []model.Category
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+categoryColumns+`
			FROM categories
			WHERE store_id = $1
			ORDER BY name ASC`, storeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	res := make([]*model.Category, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Rename updates a category's name, scoped to the owning store.
func (r *CategoryRepo) Rename(ctx context.Context, id, storeID string, req model.UpdateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE categories SET name = $1
			WHERE id = $2 AND store_id = $3
			RETURNING `+categoryColumns,
			strings.TrimSpace(req.Name), id, storeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}
	return &out, nil
}

// Delete removes a category, scoped to the owning store. Products keep their
// rows; the FK sets category_id to NULL.
func (r *CategoryRepo) Delete(ctx context.Context, id, storeID string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND store_id = $2`, id, storeID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return rows > 0, nil
}
