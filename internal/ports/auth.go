package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// SignUpInput carries inputs for first-party account creation.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// PasswordProvider authenticates first-party accounts by email and password.
type PasswordProvider interface {
	// SignUp creates the account and returns the authenticated identity.
	SignUp(ctx context.Context, in SignUpInput) (domainauth.Account, error)

	// SignIn verifies the credentials and returns the authenticated identity.
	SignIn(ctx context.Context, email, password string) (domainauth.Account, error)

	// Revoke invalidates any provider-side state for the session. Implementations
	// that keep no server-side state return nil.
	Revoke(ctx context.Context, sess domainauth.Session) error
}

// BeginInput carries inputs for initiating a federated auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// OAuthProvider initiates and completes an authentication flow against an IdP.
type OAuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Account, error)

	// Revoke invalidates any provider-side state for the session.
	Revoke(ctx context.Context, sess domainauth.Session) error
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthEventBus broadcasts auth-state changes (sign-in, sign-out) so that every
// process can drop stale cached identities.
type AuthEventBus interface {
	Publish(ctx context.Context, event domainauth.Event) error

	// Subscribe registers a handler for auth events. The returned function
	// unsubscribes the handler and releases its resources.
	Subscribe(ctx context.Context, handler func(domainauth.Event)) (func(), error)
}
