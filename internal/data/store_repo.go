package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/makka/storefront-api/internal/data/pgxutil"
	"github.com/makka/storefront-api/internal/domain/model"
)

// StoreRepo provides database operations for stores.
type StoreRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewStoreRepo creates a new StoreRepo with real time provider.
func NewStoreRepo(db *sql.DB) *StoreRepo {
	return &StoreRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewStoreRepoWithTimeProvider creates a new StoreRepo with a custom time provider (useful for tests).
func NewStoreRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *StoreRepo {
	return &StoreRepo{DB: db, timeProvider: tp}
}

const storeColumns = `id, name, slug, address, logo_path, banner_path, theme_color, is_active, created_at`

const (
	storeGetByIDQuery = `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE id = $1`

	storeGetBySlugQuery = `
		SELECT ` + storeColumns + `
		FROM stores
		WHERE slug = $1 AND is_active = TRUE`

	storeListQuery = `
		SELECT ` + storeColumns + `
		FROM stores
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new store together with its default settings row, in one
// transaction.
func (r *StoreRepo) Create(ctx context.Context, req *model.CreateStoreRequest) (*model.Store, error) {
	if req == nil {
		return nil, errors.New("create store request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Store
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO stores (name, slug, address, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+storeColumns,
			strings.TrimSpace(req.Name),
			req.Slug,
			req.Address,
			createdAt,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Store])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO store_settings (store_id, updated_at)
			VALUES ($1, $2)`,
			out.ID, createdAt,
		)
		return err
	}})
	if err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a store by ID.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*model.Store, error) {
	return r.getByQuery(ctx, storeGetByIDQuery, "failed to get store by ID", id)
}

// GetBySlug retrieves an active store by slug. Inactive stores are invisible
// to the public storefront.
func (r *StoreRepo) GetBySlug(ctx context.Context, slug string) (*model.Store, error) {
	return r.getByQuery(ctx, storeGetBySlugQuery, "failed to get store by slug", slug)
}

// List retrieves stores with pagination, newest first.
func (r *StoreRepo) List(ctx context.Context, limit, offset int) ([]*model.Store, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Store
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, storeListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Store])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	res := make([]*model.Store, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a store.
func (r *StoreRepo) Update(ctx context.Context, id string, req model.UpdateStoreRequest) (*model.Store, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := "UPDATE stores SET " + setClause +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + storeColumns

	var out model.Store
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Store])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Count returns the total number of stores.
func (r *StoreRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}

func (r *StoreRepo) buildUpdateClause(req model.UpdateStoreRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", nextIdx()))
		args = append(args, *req.Address)
	}
	if req.LogoPath != nil {
		setParts = append(setParts, fmt.Sprintf("logo_path = $%d", nextIdx()))
		args = append(args, *req.LogoPath)
	}
	if req.BannerPath != nil {
		setParts = append(setParts, fmt.Sprintf("banner_path = $%d", nextIdx()))
		args = append(args, *req.BannerPath)
	}
	if req.ThemeColor != nil {
		setParts = append(setParts, fmt.Sprintf("theme_color = $%d", nextIdx()))
		args = append(args, *req.ThemeColor)
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", nextIdx()))
		args = append(args, *req.IsActive)
	}
	return strings.Join(setParts, ", "), args
}

func (r *StoreRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.Store, error) {
	var store model.Store
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		store, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Store])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &store, nil
}

func (r *StoreRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrStoreNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrStoreSlugTaken
	}
	return err
}
