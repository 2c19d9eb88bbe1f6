package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/ports"
)

// ProfileStore is the slice of the profile repository the auth service needs.
type ProfileStore interface {
	Create(ctx context.Context, profile domainauth.Profile) (*domainauth.Profile, error)
	GetByID(ctx context.Context, id string) (*domainauth.Profile, error)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Passwords ports.PasswordProvider // nil when running in OAuth-only mode
	OAuth     ports.OAuthProvider    // nil when running in password-only mode
	Sessions  ports.SessionStore
	Profiles  ProfileStore
	Identity  *IdentityService
	Events    ports.AuthEventBus
	Logger    *slog.Logger
}

// AuthService orchestrates authentication flows: account creation, credential
// or OAuth sign-in, session persistence, and sign-out.
type AuthService struct {
	passwords ports.PasswordProvider
	oauth     ports.OAuthProvider
	sessions  ports.SessionStore
	profiles  ProfileStore
	identity  *IdentityService
	events    ports.AuthEventBus
	logger    *slog.Logger
}

var (
	errSessionExpired  = errors.New("session expired")
	errPasswordAuthOff = errors.New("password authentication is not enabled")
	errOAuthOff        = errors.New("oauth authentication is not enabled")
)

// ErrSessionExpired reports whether err means the session has expired.
func ErrSessionExpired(err error) bool { return errors.Is(err, errSessionExpired) }

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		passwords: opts.Passwords,
		oauth:     opts.OAuth,
		sessions:  opts.Sessions,
		profiles:  opts.Profiles,
		identity:  opts.Identity,
		events:    opts.Events,
		logger:    logger,
	}
}

// SignUpInput groups parameters for first-party account creation.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// SignUp registers an account, creates its customer profile, and opens a session.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*domainauth.Session, error) {
	if s.passwords == nil {
		return nil, errPasswordAuthOff
	}

	account, err := s.passwords.SignUp(ctx, ports.SignUpInput{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Phone:    input.Phone,
	})
	if err != nil {
		return nil, err
	}

	profile := domainauth.Profile{
		ID:   account.UserID,
		Role: domainauth.RoleCustomer,
	}
	if input.FullName != "" {
		profile.FullName = &input.FullName
	}
	if input.Phone != "" {
		profile.Phone = &input.Phone
	}
	if _, err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return s.openSession(ctx, account)
}

// SignIn verifies credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if s.passwords == nil {
		return nil, errPasswordAuthOff
	}

	account, err := s.passwords.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, account)
}

// BeginLoginResult contains the result of beginning an OAuth login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an OAuth flow and returns the provider auth URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.oauth == nil {
		return nil, errOAuthOff
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.oauth.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing an OAuth login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin exchanges the code for an account, ensures a profile exists,
// and opens a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*domainauth.Session, error) {
	if s.oauth == nil {
		return nil, errOAuthOff
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	account, err := s.oauth.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := s.ensureProfile(ctx, account); err != nil {
		return nil, err
	}

	return s.openSession(ctx, account)
}

// GetSession retrieves a session by ID, cleaning up expired records.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired() {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// SignOut ends the session. Local state (the session record and any cached
// identity) is cleared first; provider-side revocation runs last and its
// failure is only logged, so local sign-out always wins.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to sign out
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		// Unknown session: nothing local to clear, nothing to revoke.
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if s.identity != nil {
		s.identity.Invalidate(session.UserID)
	}

	s.publishEvent(ctx, domainauth.Event{
		Kind:      domainauth.EventSignedOut,
		UserID:    session.UserID,
		SessionID: session.ID,
		At:        time.Now().UTC(),
	})

	if revokeErr := s.revoke(ctx, session); revokeErr != nil {
		s.logger.ErrorContext(ctx, "provider sign-out failed",
			"user_id", session.UserID, "error", revokeErr)
	}
	return nil
}

func (s *AuthService) openSession(ctx context.Context, account domainauth.Account) (*domainauth.Session, error) {
	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    account.UserID,
		Email:     account.Email,
		FullName:  account.FullName,
		ExpiresAt: account.ExpiresAt,
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	if s.identity != nil {
		s.identity.Invalidate(session.UserID)
	}
	s.publishEvent(ctx, domainauth.Event{
		Kind:      domainauth.EventSignedIn,
		UserID:    session.UserID,
		SessionID: session.ID,
		At:        time.Now().UTC(),
	})

	return &session, nil
}

func (s *AuthService) ensureProfile(ctx context.Context, account domainauth.Account) error {
	_, err := s.profiles.GetByID(ctx, account.UserID)
	if err == nil {
		return nil
	}

	profile := domainauth.Profile{
		ID:   account.UserID,
		Role: domainauth.RoleCustomer,
	}
	if account.FullName != "" {
		profile.FullName = &account.FullName
	}
	if _, createErr := s.profiles.Create(ctx, profile); createErr != nil {
		return fmt.Errorf("create profile: %w", createErr)
	}
	return nil
}

func (s *AuthService) revoke(ctx context.Context, session domainauth.Session) error {
	if s.passwords != nil {
		if err := s.passwords.Revoke(ctx, session); err != nil {
			return err
		}
	}
	if s.oauth != nil {
		if err := s.oauth.Revoke(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) publishEvent(ctx context.Context, event domainauth.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "publish auth event failed",
			"kind", event.Kind, "user_id", event.UserID, "error", err)
	}
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// UUID is URL-safe and has good entropy
	return uuid.New().String()
}
