package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.PasswordProvider = (*MockPasswordProvider)(nil)
	_ ports.OAuthProvider    = (*MockOAuthProvider)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
	_ ports.AuthEventBus     = (*MemoryEventBus)(nil)
)

// MockPasswordProvider simulates first-party auth with configurable hooks.
type MockPasswordProvider struct {
	SignUpFunc func(ctx context.Context, in ports.SignUpInput) (domainauth.Account, error)
	SignInFunc func(ctx context.Context, email, password string) (domainauth.Account, error)
	RevokeFunc func(ctx context.Context, sess domainauth.Session) error

	DefaultAccount domainauth.Account
	RevokeCalls    []domainauth.Session
}

// NewMockPasswordProvider creates a MockPasswordProvider with a default account.
func NewMockPasswordProvider() *MockPasswordProvider {
	return &MockPasswordProvider{
		DefaultAccount: domainauth.Account{
			UserID:    "mock-user-1",
			Email:     "mock.user@example.com",
			FullName:  "Mock User",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockPasswordProvider) SignUp(ctx context.Context, in ports.SignUpInput) (domainauth.Account, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, in)
	}
	acct := m.DefaultAccount
	if in.Email != "" {
		acct.Email = in.Email
	}
	if in.FullName != "" {
		acct.FullName = in.FullName
	}
	acct.ExpiresAt = time.Now().Add(time.Hour)
	return acct, nil
}

func (m *MockPasswordProvider) SignIn(ctx context.Context, email, password string) (domainauth.Account, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	acct := m.DefaultAccount
	if email != "" {
		acct.Email = email
	}
	acct.ExpiresAt = time.Now().Add(time.Hour)
	return acct, nil
}

func (m *MockPasswordProvider) Revoke(ctx context.Context, sess domainauth.Session) error {
	m.RevokeCalls = append(m.RevokeCalls, sess)
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, sess)
	}
	return nil
}

// MockOAuthProvider simulates an IdP for tests with deterministic state/nonce handling.
type MockOAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Account, error)
	RevokeFunc   func(ctx context.Context, sess domainauth.Session) error

	AuthURL        string
	DefaultAccount domainauth.Account

	callCount int
}

// NewMockOAuthProvider creates a MockOAuthProvider with sensible defaults.
func NewMockOAuthProvider() *MockOAuthProvider {
	return &MockOAuthProvider{
		AuthURL: "https://mock-idp/auth",
		DefaultAccount: domainauth.Account{
			UserID:    "mock-user-1",
			Email:     "mock.user@example.com",
			FullName:  "Mock User",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockOAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}
	m.callCount++
	return m.AuthURL, fmt.Sprintf("state-%d", m.callCount), fmt.Sprintf("nonce-%d", m.callCount), nil
}

func (m *MockOAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Account, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	acct := m.DefaultAccount
	acct.ExpiresAt = time.Now().Add(time.Hour)
	return acct, nil
}

func (m *MockOAuthProvider) Revoke(ctx context.Context, sess domainauth.Session) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, sess)
	}
	return nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// MemoryEventBus is an in-process auth event bus for unit tests.
type MemoryEventBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(domainauth.Event)
	// Published records every published event in order.
	Published []domainauth.Event
}

// NewMemoryEventBus creates a new in-memory event bus.
func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{handlers: make(map[int]func(domainauth.Event))}
}

func (m *MemoryEventBus) Publish(_ context.Context, event domainauth.Event) error {
	m.mu.Lock()
	m.Published = append(m.Published, event)
	handlers := make([]func(domainauth.Event), 0, len(m.handlers))
	for _, h := range m.handlers {
		handlers = append(handlers, h)
	}
	m.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

func (m *MemoryEventBus) Subscribe(_ context.Context, handler func(domainauth.Event)) (func(), error) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.handlers[id] = handler
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.handlers, id)
		m.mu.Unlock()
	}, nil
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}

// MemoryCredentialStore is an in-memory credential store for tests of
// password-mode auth wiring.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	creds map[string]domainauth.Credential
}

// NewMemoryCredentialStore creates an empty MemoryCredentialStore.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{creds: make(map[string]domainauth.Credential)}
}

// Create stores a credential keyed by email.
func (s *MemoryCredentialStore) Create(_ context.Context, cred domainauth.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.creds[cred.Email]; ok {
		return domainauth.ErrEmailTaken
	}
	s.creds[cred.Email] = cred
	return nil
}

// GetByEmail returns the credential for the email.
func (s *MemoryCredentialStore) GetByEmail(_ context.Context, email string) (domainauth.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.creds[email]
	if !ok {
		return domainauth.Credential{}, domainauth.ErrCredentialNotFound
	}
	return cred, nil
}
