package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/makka/storefront-api/internal/data/pgxutil"
	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// ProfileRepo provides database operations for user profiles.
type ProfileRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const profileColumns = `id, role, store_id, full_name, phone, created_at`

// Create inserts a profile for a newly registered user.
func (r *ProfileRepo) Create(ctx context.Context, profile domainauth.Profile) (*domainauth.Profile, error) {
	if profile.ID == "" {
		return nil, errors.New("profile ID is required")
	}
	role := profile.Role
	if role == "" {
		role = domainauth.RoleCustomer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now().UTC()
	}

	var out domainauth.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO profiles (id, role, store_id, full_name, phone, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+profileColumns,
			profile.ID, role, profile.StoreID, profile.FullName, profile.Phone, createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.Profile])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a profile by user ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*domainauth.Profile, error) {
	var out domainauth.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+profileColumns+`
			FROM profiles
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &out, nil
}

// List retrieves profiles with pagination, newest first.
func (r *ProfileRepo) List(ctx context.Context, limit, offset int) ([]*domainauth.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []domainauth.Profile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+profileColumns+`
			FROM profiles
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[domainauth.Profile])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	res := make([]*domainauth.Profile, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateRole changes the global role of a user.
func (r *ProfileRepo) UpdateRole(ctx context.Context, id string, role domainauth.Role) (*domainauth.Profile, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	var out domainauth.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE profiles SET role = $1
			WHERE id = $2
			RETURNING `+profileColumns,
			role, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile role: %w", err)
	}
	return &out, nil
}

// Count returns the total number of profiles.
func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}
