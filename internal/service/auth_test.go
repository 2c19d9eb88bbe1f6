package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/mocks"
	mockauth "github.com/makka/storefront-api/internal/mocks/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *mockauth.MockPasswordProvider, *mockauth.MemorySessionStore, *mocks.MockProfileStore, *mockauth.MemoryEventBus) {
	t.Helper()

	ctrl := gomock.NewController(t)
	passwords := mockauth.NewMockPasswordProvider()
	sessions := mockauth.NewMemorySessionStore()
	profiles := mocks.NewMockProfileStore(ctrl)
	events := mockauth.NewMemoryEventBus()

	svc := NewAuthService(AuthServiceOptions{
		Passwords: passwords,
		Sessions:  sessions,
		Profiles:  profiles,
		Events:    events,
		Logger:    slog.Default(),
	})
	return svc, passwords, sessions, profiles, events
}

func TestAuthService_SignUp_CreatesProfileAndSession(t *testing.T) {
	t.Parallel()

	svc, _, sessions, profiles, events := newTestAuthService(t)
	ctx := context.Background()

	profiles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domainauth.Profile) (*domainauth.Profile, error) {
			assert.Equal(t, domainauth.RoleCustomer, p.Role)
			require.NotNil(t, p.FullName)
			assert.Equal(t, "Siti Rahma", *p.FullName)
			return &p, nil
		})

	sess, err := svc.SignUp(ctx, SignUpInput{
		Email:    "siti@example.com",
		Password: "correct-horse",
		FullName: "Siti Rahma",
		Phone:    "0812000111",
	})
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "siti@example.com", sess.Email)
	assert.Equal(t, 1, sessions.Len())

	require.Len(t, events.Published, 1)
	assert.Equal(t, domainauth.EventSignedIn, events.Published[0].Kind)
	assert.Equal(t, sess.UserID, events.Published[0].UserID)
}

func TestAuthService_SignUp_ProfileCreateFailure(t *testing.T) {
	t.Parallel()

	svc, _, sessions, profiles, _ := newTestAuthService(t)
	ctx := context.Background()

	profiles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	_, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.c", Password: "password123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create profile")
	assert.Equal(t, 0, sessions.Len(), "no session on failed sign-up")
}

func TestAuthService_SignUp_PasswordModeDisabled(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(AuthServiceOptions{
		Sessions: mockauth.NewMemorySessionStore(),
	})
	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}

func TestAuthService_SignIn_OpensSession(t *testing.T) {
	t.Parallel()

	svc, passwords, sessions, _, events := newTestAuthService(t)
	ctx := context.Background()

	passwords.SignInFunc = func(_ context.Context, email, password string) (domainauth.Account, error) {
		assert.Equal(t, "siti@example.com", email)
		assert.Equal(t, "correct-horse", password)
		return domainauth.Account{
			UserID:    "user-7",
			Email:     email,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}

	sess, err := svc.SignIn(ctx, "siti@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "user-7", sess.UserID)
	assert.Equal(t, 1, sessions.Len())
	require.Len(t, events.Published, 1)
	assert.Equal(t, domainauth.EventSignedIn, events.Published[0].Kind)
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, passwords, sessions, _, _ := newTestAuthService(t)

	passwords.SignInFunc = func(context.Context, string, string) (domainauth.Account, error) {
		return domainauth.Account{}, domainauth.ErrInvalidCredentials
	}

	_, err := svc.SignIn(context.Background(), "siti@example.com", "wrong")
	require.ErrorIs(t, err, domainauth.ErrInvalidCredentials)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_CompleteLogin_EnsuresProfile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	oauth := mockauth.NewMockOAuthProvider()
	sessions := mockauth.NewMemorySessionStore()
	profiles := mocks.NewMockProfileStore(ctrl)

	svc := NewAuthService(AuthServiceOptions{
		OAuth:    oauth,
		Sessions: sessions,
		Profiles: profiles,
	})
	ctx := context.Background()

	// First login: no profile yet, one gets created.
	profiles.EXPECT().GetByID(gomock.Any(), "mock-user-1").Return(nil, errors.New("not found"))
	profiles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domainauth.Profile) (*domainauth.Profile, error) {
			assert.Equal(t, "mock-user-1", p.ID)
			assert.Equal(t, domainauth.RoleCustomer, p.Role)
			return &p, nil
		})

	sess, err := svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "state-1", Nonce: "nonce-1"})
	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", sess.UserID)

	// Second login: profile exists, no Create call.
	profiles.EXPECT().
		GetByID(gomock.Any(), "mock-user-1").
		Return(&domainauth.Profile{ID: "mock-user-1", Role: domainauth.RoleCustomer}, nil)

	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "state-2", Nonce: "nonce-2"})
	require.NoError(t, err)
}

func TestAuthService_CompleteLogin_Validation(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(AuthServiceOptions{
		OAuth:    mockauth.NewMockOAuthProvider(),
		Sessions: mockauth.NewMemorySessionStore(),
	})
	ctx := context.Background()

	_, err := svc.CompleteLogin(ctx, CompleteLoginInput{State: "s", Nonce: "n"})
	assert.ErrorContains(t, err, "authorization code is required")

	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", Nonce: "n"})
	assert.ErrorContains(t, err, "state parameter is required")

	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s"})
	assert.ErrorContains(t, err, "nonce parameter is required")
}

func TestAuthService_GetSession_ExpiredIsCleanedUp(t *testing.T) {
	t.Parallel()

	svc, _, sessions, _, _ := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "stale",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.GetSession(ctx, "stale")
	require.Error(t, err)
	assert.True(t, ErrSessionExpired(err))
	assert.Equal(t, 0, sessions.Len(), "expired session record deleted")
}

func TestAuthService_SignOut_LocalStateClearedBeforeRevocation(t *testing.T) {
	t.Parallel()

	svc, passwords, sessions, _, events := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "s1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	var lenAtRevoke int
	passwords.RevokeFunc = func(_ context.Context, sess domainauth.Session) error {
		lenAtRevoke = sessions.Len()
		return nil
	}

	require.NoError(t, svc.SignOut(ctx, "s1"))
	require.Len(t, passwords.RevokeCalls, 1)
	assert.Equal(t, 0, lenAtRevoke, "session already deleted when provider revocation runs")

	require.Len(t, events.Published, 1)
	assert.Equal(t, domainauth.EventSignedOut, events.Published[0].Kind)
	assert.Equal(t, "user-1", events.Published[0].UserID)
}

func TestAuthService_SignOut_RevocationFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	svc, passwords, sessions, _, _ := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "s1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	passwords.RevokeFunc = func(context.Context, domainauth.Session) error {
		return errors.New("idp unreachable")
	}

	// Local sign-out wins even when the provider is down.
	require.NoError(t, svc.SignOut(ctx, "s1"))
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_SignOut_UnknownSessionIsNoop(t *testing.T) {
	t.Parallel()

	svc, passwords, _, _, events := newTestAuthService(t)

	require.NoError(t, svc.SignOut(context.Background(), "never-existed"))
	assert.Empty(t, passwords.RevokeCalls)
	assert.Empty(t, events.Published)

	require.NoError(t, svc.SignOut(context.Background(), ""))
}

func TestAuthService_BeginLogin(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(AuthServiceOptions{
		OAuth:    mockauth.NewMockOAuthProvider(),
		Sessions: mockauth.NewMemorySessionStore(),
	})
	ctx := context.Background()

	res, err := svc.BeginLogin(ctx, "http://localhost:8080/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
	assert.Equal(t, "state-1", res.State)
	assert.Equal(t, "nonce-1", res.Nonce)

	_, err = svc.BeginLogin(ctx, "")
	assert.ErrorContains(t, err, "redirect URL is required")
}
