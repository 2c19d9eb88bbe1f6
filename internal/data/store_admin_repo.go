package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/makka/storefront-api/internal/data/pgxutil"
	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// storeAdminRoleLabel is the informational role string recorded on the grant.
// Authorization only checks grant presence, never this value.
const storeAdminRoleLabel = "STORE_ADMIN"

// StoreAdminRepo provides database operations for store admin grants.
type StoreAdminRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewStoreAdminRepo creates a new StoreAdminRepo.
func NewStoreAdminRepo(db *sql.DB) *StoreAdminRepo {
	return &StoreAdminRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const storeAdminColumns = `id, store_id, user_id, role, created_at`

// Assign grants store-admin capability for the store to the user.
func (r *StoreAdminRepo) Assign(ctx context.Context, storeID, userID string) (*domainauth.StoreAdmin, error) {
	if storeID == "" || userID == "" {
		return nil, errors.New("store ID and user ID are required")
	}

	var out domainauth.StoreAdmin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO store_admins (id, store_id, user_id, role, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+storeAdminColumns,
			uuid.NewString(), storeID, userID, storeAdminRoleLabel, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.StoreAdmin])
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrStoreAdminExists
		}
		return nil, fmt.Errorf("failed to assign store admin: %w", err)
	}
	return &out, nil
}

// GetByUserID retrieves the store-admin grant for a user, if any.
func (r *StoreAdminRepo) GetByUserID(ctx context.Context, userID string) (*domainauth.StoreAdmin, error) {
	var out domainauth.StoreAdmin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+storeAdminColumns+`
			FROM store_admins
			WHERE user_id = $1`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.StoreAdmin])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreAdminNotFound
		}
		return nil, fmt.Errorf("failed to get store admin: %w", err)
	}
	return &out, nil
}

// ListByStore retrieves all grants for a store.
func (r *StoreAdminRepo) ListByStore(ctx context.Context, storeID string) ([]*domainauth.StoreAdmin, error) {
	var rowsOut []domainauth.StoreAdmin
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+storeAdminColumns+`
			FROM store_admins
			WHERE store_id = $1
			ORDER BY created_at`, storeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[domainauth.StoreAdmin])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list store admins: %w", err)
	}

	res := make([]*domainauth.StoreAdmin, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Remove revokes the user's store-admin grant. Returns false when no grant existed.
func (r *StoreAdminRepo) Remove(ctx context.Context, userID string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM store_admins WHERE user_id = $1`, userID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove store admin: %w", err)
	}
	return rows > 0, nil
}
