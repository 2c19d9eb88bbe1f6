package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/makka/storefront-api/internal/data/pgxutil"
	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// CredentialRepo stores first-party login credentials.
type CredentialRepo struct {
	DB *sql.DB
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(db *sql.DB) *CredentialRepo {
	return &CredentialRepo{DB: db}
}

// Create inserts a credential record.
func (r *CredentialRepo) Create(ctx context.Context, cred domainauth.Credential) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO credentials (user_id, email, password_hash, created_at)
			VALUES ($1, $2, $3, $4)`,
			cred.UserID, cred.Email, cred.PasswordHash, cred.CreatedAt,
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domainauth.ErrEmailTaken
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}
	return nil
}

// GetByEmail retrieves a credential by (normalized) email.
func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (domainauth.Credential, error) {
	var out domainauth.Credential
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT user_id, email, password_hash, created_at
			FROM credentials
			WHERE email = $1`, email)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.Credential])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainauth.Credential{}, domainauth.ErrCredentialNotFound
		}
		return domainauth.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}
	return out, nil
}
