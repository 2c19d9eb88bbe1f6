package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/service"
)

// stubAuthService implements AuthServiceInterface with configurable hooks.
type stubAuthService struct {
	signUpFunc        func(ctx context.Context, input service.SignUpInput) (*domainauth.Session, error)
	signInFunc        func(ctx context.Context, email, password string) (*domainauth.Session, error)
	beginLoginFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*domainauth.Session, error)
	getSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	signOutCalls      []string
	signOutErr        error
}

func (s *stubAuthService) SignUp(ctx context.Context, input service.SignUpInput) (*domainauth.Session, error) {
	return s.signUpFunc(ctx, input)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*domainauth.Session, error) {
	return s.signInFunc(ctx, email, password)
}

func (s *stubAuthService) BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	return s.beginLoginFunc(ctx, redirectURL)
}

func (s *stubAuthService) CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*domainauth.Session, error) {
	return s.completeLoginFunc(ctx, input)
}

func (s *stubAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if s.getSessionFunc != nil {
		return s.getSessionFunc(ctx, sessionID)
	}
	return nil, errors.New("not found")
}

func (s *stubAuthService) SignOut(_ context.Context, sessionID string) error {
	s.signOutCalls = append(s.signOutCalls, sessionID)
	return s.signOutErr
}

func testSession(userID string) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-1",
		UserID:    userID,
		Email:     "siti@example.com",
		FullName:  "Siti Rahma",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newAuthHandlers(svc *stubAuthService, resolver IdentityResolver) *AuthHandlers {
	if resolver == nil {
		resolver = &stubResolver{identities: map[string]domainauth.Identity{}}
	}
	return &AuthHandlers{Svc: svc, Identity: resolver}
}

func TestAuthHandlers_SignUp(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{
		signUpFunc: func(_ context.Context, input service.SignUpInput) (*domainauth.Session, error) {
			assert.Equal(t, "siti@example.com", input.Email)
			assert.Equal(t, "Siti Rahma", input.FullName)
			return testSession("u1"), nil
		},
	}
	h := newAuthHandlers(svc, nil)

	body := `{"email":"siti@example.com","password":"correct-horse","full_name":"Siti Rahma","phone":"0812000111"}`
	r := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.SignUp(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp["session_id"])
	assert.Equal(t, "/", resp["redirect_path"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "sess-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandlers_SignUp_EmailTaken(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{
		signUpFunc: func(context.Context, service.SignUpInput) (*domainauth.Session, error) {
			return nil, domainauth.ErrEmailTaken
		},
	}
	h := newAuthHandlers(svc, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"dup@example.com","password":"password123"}`))
	w := httptest.NewRecorder()
	h.SignUp(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email_taken", resp["error"])
}

func TestAuthHandlers_SignIn_RedirectPathFollowsRole(t *testing.T) {
	t.Parallel()

	sess := testSession("u1")
	resolver := &stubResolver{identities: map[string]domainauth.Identity{
		"sess-1": {
			Session: sess,
			Profile: &domainauth.Profile{ID: "u1", Role: domainauth.RoleSuperAdmin},
		},
	}}
	svc := &stubAuthService{
		signInFunc: func(context.Context, string, string) (*domainauth.Session, error) {
			return sess, nil
		},
	}
	h := newAuthHandlers(svc, resolver)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		strings.NewReader(`{"email":"siti@example.com","password":"correct-horse"}`))
	w := httptest.NewRecorder()
	h.SignIn(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainauth.PathSuperAdmin, resp["redirect_path"])
}

func TestAuthHandlers_SignIn_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{
		signInFunc: func(context.Context, string, string) (*domainauth.Session, error) {
			return nil, domainauth.ErrInvalidCredentials
		},
	}
	h := newAuthHandlers(svc, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		strings.NewReader(`{"email":"siti@example.com","password":"wrong"}`))
	w := httptest.NewRecorder()
	h.SignIn(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlers_SignOut(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	h := newAuthHandlers(svc, nil)

	r := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	h.SignOut(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sess-1"}, svc.signOutCalls)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/", resp["redirect_to"])

	// Cookie cleared on the client regardless.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandlers_SignOut_ServiceFailureStillClearsCookie(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{signOutErr: errors.New("redis down")}
	h := newAuthHandlers(svc, nil)

	r := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	w := httptest.NewRecorder()
	h.SignOut(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestAuthHandlers_Login_SetsOAuthCookies(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{
		beginLoginFunc: func(_ context.Context, redirectURL string) (*service.BeginLoginResult, error) {
			assert.Equal(t, "/checkout", redirectURL)
			return &service.BeginLoginResult{
				AuthURL: "https://idp.example.com/auth?client_id=x",
				State:   "state-1",
				Nonce:   "nonce-1",
			}, nil
		},
	}
	h := newAuthHandlers(svc, nil)

	r := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/checkout", nil)
	w := httptest.NewRecorder()
	h.Login(w, r)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://idp.example.com/auth?client_id=x", w.Header().Get("Location"))

	names := map[string]string{}
	for _, c := range w.Result().Cookies() {
		names[c.Name] = c.Value
	}
	assert.Equal(t, "state-1", names["oauth_state"])
	assert.Equal(t, "nonce-1", names["oauth_nonce"])
	assert.Equal(t, "/checkout", names["post_login_redirect"])
}

func TestAuthHandlers_Callback_StateMismatch(t *testing.T) {
	t.Parallel()

	h := newAuthHandlers(&stubAuthService{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/auth/callback?code=c&state=tampered", nil)
	r.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_state", resp["error"])
}

func TestAuthHandlers_Callback_Success(t *testing.T) {
	t.Parallel()

	sess := testSession("u1")
	resolver := &stubResolver{identities: map[string]domainauth.Identity{
		"sess-1": {
			Session:    sess,
			Profile:    &domainauth.Profile{ID: "u1", Role: domainauth.RoleCustomer},
			StoreAdmin: &domainauth.StoreAdmin{UserID: "u1", StoreID: "store-1"},
		},
	}}
	svc := &stubAuthService{
		completeLoginFunc: func(_ context.Context, input service.CompleteLoginInput) (*domainauth.Session, error) {
			assert.Equal(t, "c", input.Code)
			assert.Equal(t, "state-1", input.State)
			assert.Equal(t, "nonce-1", input.Nonce)
			return sess, nil
		},
	}
	h := newAuthHandlers(svc, resolver)

	r := httptest.NewRequest(http.MethodGet, "/auth/callback?code=c&state=state-1", nil)
	r.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
	r.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "nonce-1"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	require.Equal(t, http.StatusFound, w.Code)
	// No stored origin: the user lands on their role home (store admin -> /admin).
	assert.Equal(t, domainauth.PathAdmin, w.Header().Get("Location"))
}

func TestAuthHandlers_Session(t *testing.T) {
	t.Parallel()

	sess := testSession("u1")
	resolver := &stubResolver{identities: map[string]domainauth.Identity{
		"sess-1": {
			Session: sess,
			Profile: &domainauth.Profile{ID: "u1", Role: domainauth.RoleCustomer},
		},
	}}
	h := newAuthHandlers(&stubAuthService{}, resolver)

	// Anonymous.
	r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	h.Session(w, r)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["authenticated"])

	// Authenticated customer.
	r = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	w = httptest.NewRecorder()
	h.Session(w, r)
	resp = map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["authenticated"])
	assert.Equal(t, false, resp["is_super_admin"])
	assert.Equal(t, false, resp["is_store_admin"])
	assert.Equal(t, "/", resp["redirect_path"])
	assert.Equal(t, string(domainauth.RoleCustomer), resp["role"])
}
