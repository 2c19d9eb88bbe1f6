package devauth

// Package devauth provides a simple, config-driven auth provider for local development.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/ports"
)

// Config controls the dev auth provider behavior.
type Config struct {
	UserID          string
	Email           string
	FullName        string
	SessionDuration time.Duration // default 8h when zero
}

// Provider short-circuits authentication for local development. It satisfies
// both the password and the OAuth provider ports: every sign-in returns the
// configured account, and the OAuth flow redirects straight back to our own
// callback with locally generated state and nonce.
type Provider struct {
	account         domainauth.Account
	sessionDuration time.Duration
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{
		account: domainauth.Account{
			UserID:    cfg.UserID,
			Email:     cfg.Email,
			FullName:  cfg.FullName,
			ExpiresAt: time.Now().Add(dur),
		},
		sessionDuration: dur,
	}, nil
}

// SignUp ignores the payload except for identity fields and returns the
// configured dev account with the requested email.
func (p *Provider) SignUp(_ context.Context, in ports.SignUpInput) (domainauth.Account, error) {
	acct := p.freshAccount()
	if in.Email != "" {
		acct.Email = in.Email
	}
	if in.FullName != "" {
		acct.FullName = in.FullName
	}
	return acct, nil
}

// SignIn accepts any credentials and returns the configured dev account.
func (p *Provider) SignIn(_ context.Context, email, _ string) (domainauth.Account, error) {
	acct := p.freshAccount()
	if email != "" {
		acct.Email = email
	}
	return acct, nil
}

// Revoke is a no-op for the dev provider.
func (p *Provider) Revoke(_ context.Context, _ domainauth.Session) error { return nil }

// Begin returns a local callback URL and cryptographically secure state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	// Our standard handler expects GET /auth/callback?code=...&state=...
	authURL := "/auth/callback?code=dev&state=" + state
	return authURL, state, nonce, nil
}

// Exchange ignores the provided code/state/nonce (validation handled by handler) and returns the dev account.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Account, error) {
	return p.freshAccount(), nil
}

func (p *Provider) freshAccount() domainauth.Account {
	acct := p.account
	// Refresh expiry on each use for convenience
	if time.Until(acct.ExpiresAt) < 5*time.Minute {
		acct.ExpiresAt = time.Now().Add(p.sessionDuration)
	}
	return acct
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	// Compute number of random bytes needed to produce at least n base64 URL chars
	bLen := (n*3 + 3) / 4
	b := make([]byte, bLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < n {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:n], nil
}
