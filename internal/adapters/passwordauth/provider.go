package passwordauth

// Package passwordauth provides a Postgres-backed email/password auth provider.

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/ports"
)

const minPasswordLen = 8

// CredentialStore persists first-party login records.
type CredentialStore interface {
	Create(ctx context.Context, cred domainauth.Credential) error
	GetByEmail(ctx context.Context, email string) (domainauth.Credential, error)
}

// Provider implements ports.PasswordProvider with bcrypt-hashed credentials.
type Provider struct {
	store           CredentialStore
	cost            int
	sessionDuration time.Duration
}

// ProviderOptions configures the password provider.
type ProviderOptions struct {
	Store           CredentialStore
	BcryptCost      int           // default bcrypt.DefaultCost when zero
	SessionDuration time.Duration // default 24h when zero
}

// NewProvider constructs a password provider from ProviderOptions.
func NewProvider(opts ProviderOptions) (*Provider, error) {
	if opts.Store == nil {
		return nil, errors.New("password auth: credential store is required")
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("password auth: bcrypt cost %d out of range", cost)
	}
	dur := opts.SessionDuration
	if dur == 0 {
		dur = 24 * time.Hour
	}
	return &Provider{store: opts.Store, cost: cost, sessionDuration: dur}, nil
}

// SignUp creates a credential for the email and returns the new account.
func (p *Provider) SignUp(ctx context.Context, in ports.SignUpInput) (domainauth.Account, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return domainauth.Account{}, err
	}
	if len(in.Password) < minPasswordLen {
		return domainauth.Account{}, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.cost)
	if err != nil {
		return domainauth.Account{}, fmt.Errorf("hash password: %w", err)
	}

	cred := domainauth.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.store.Create(ctx, cred); err != nil {
		if errors.Is(err, domainauth.ErrEmailTaken) {
			return domainauth.Account{}, domainauth.ErrEmailTaken
		}
		return domainauth.Account{}, fmt.Errorf("create credential: %w", err)
	}

	return domainauth.Account{
		UserID:    cred.UserID,
		Email:     cred.Email,
		FullName:  strings.TrimSpace(in.FullName),
		Phone:     strings.TrimSpace(in.Phone),
		ExpiresAt: time.Now().Add(p.sessionDuration),
	}, nil
}

// SignIn verifies the email/password pair against the stored hash.
// Lookup misses and hash mismatches both surface as ErrInvalidCredentials so
// the response does not reveal which emails are registered.
func (p *Provider) SignIn(ctx context.Context, email, password string) (domainauth.Account, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return domainauth.Account{}, domainauth.ErrInvalidCredentials
	}

	cred, err := p.store.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domainauth.ErrCredentialNotFound) {
			return domainauth.Account{}, domainauth.ErrInvalidCredentials
		}
		return domainauth.Account{}, fmt.Errorf("lookup credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return domainauth.Account{}, domainauth.ErrInvalidCredentials
	}

	return domainauth.Account{
		UserID:    cred.UserID,
		Email:     cred.Email,
		ExpiresAt: time.Now().Add(p.sessionDuration),
	}, nil
}

// Revoke is a no-op: sessions live in the session store, and credentials keep
// no per-session state.
func (p *Provider) Revoke(_ context.Context, _ domainauth.Session) error { return nil }

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", errors.New("email is required")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", errors.New("email is not valid")
	}
	return trimmed, nil
}
