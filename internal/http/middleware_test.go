package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// stubResolver returns a fixed identity per session ID.
type stubResolver struct {
	identities map[string]domainauth.Identity
	err        error
}

func (s *stubResolver) Resolve(_ context.Context, sessionID string) (domainauth.Identity, error) {
	if s.err != nil {
		return domainauth.Identity{Loading: true}, s.err
	}
	return s.identities[sessionID], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("rendered"))
	})
}

func guardRequest(t *testing.T, resolver IdentityResolver, policy domainauth.AccessPolicy, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	for _, opt := range opts {
		opt(r)
	}
	w := httptest.NewRecorder()
	Protect(resolver, policy)(okHandler()).ServeHTTP(w, r)
	return w
}

func withSession(id string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
	}
}

func withBrowserAccept() func(*http.Request) {
	return func(r *http.Request) {
		r.URL.Path = "/admin/orders"
		r.Header.Set("Accept", "text/html")
	}
}

func customerIdentity(userID string) domainauth.Identity {
	return domainauth.Identity{
		Session: &domainauth.Session{ID: "s", UserID: userID},
		Profile: &domainauth.Profile{ID: userID, Role: domainauth.RoleCustomer},
	}
}

func TestProtect_AnonymousAPIGets401(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{identities: map[string]domainauth.Identity{}}
	w := guardRequest(t, resolver, domainauth.AccessPolicy{RequireAuth: true})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "authentication_required", body["error"])
	assert.Contains(t, body["redirect_to"], domainauth.PathLogin)
	assert.Contains(t, body["redirect_to"], "redirect_uri=")
}

func TestProtect_AnonymousBrowserRedirectsToLogin(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{identities: map[string]domainauth.Identity{}}
	w := guardRequest(t, resolver, domainauth.AccessPolicy{RequireAuth: true}, withBrowserAccept())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), domainauth.PathLogin)
	assert.Contains(t, w.Header().Get("Location"), "redirect_uri=%2Fadmin%2Forders")
}

func TestProtect_RoleMismatchRedirectsByActualRole(t *testing.T) {
	t.Parallel()

	superAdmin := domainauth.Identity{
		Session: &domainauth.Session{ID: "s", UserID: "u1"},
		Profile: &domainauth.Profile{ID: "u1", Role: domainauth.RoleSuperAdmin},
	}
	resolver := &stubResolver{identities: map[string]domainauth.Identity{"s": superAdmin}}
	policy := domainauth.AccessPolicy{
		RequireAuth:  true,
		AllowedRoles: []domainauth.Role{domainauth.RoleAdmin},
	}

	// API client: 403 carrying the role home, never a bare deny.
	w := guardRequest(t, resolver, policy, withSession("s"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domainauth.PathSuperAdmin, body["redirect_to"])

	// Browser client: a redirect to the role home.
	w = guardRequest(t, resolver, policy, withSession("s"), withBrowserAccept())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.PathSuperAdmin, w.Header().Get("Location"))
}

func TestProtect_CustomerOnlyBouncesStoreAdmin(t *testing.T) {
	t.Parallel()

	storeAdmin := domainauth.Identity{
		Session:    &domainauth.Session{ID: "s", UserID: "u1"},
		Profile:    &domainauth.Profile{ID: "u1", Role: domainauth.RoleCustomer},
		StoreAdmin: &domainauth.StoreAdmin{UserID: "u1", StoreID: "store-1"},
	}
	resolver := &stubResolver{identities: map[string]domainauth.Identity{"s": storeAdmin}}
	policy := domainauth.AccessPolicy{RequireAuth: true, CustomerOnly: true}

	w := guardRequest(t, resolver, policy, withSession("s"), withBrowserAccept())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domainauth.PathAdmin, w.Header().Get("Location"))
}

func TestProtect_CustomerRenders(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{identities: map[string]domainauth.Identity{"s": customerIdentity("u1")}}
	policy := domainauth.AccessPolicy{RequireAuth: true, CustomerOnly: true}

	w := guardRequest(t, resolver, policy, withSession("s"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rendered", w.Body.String())
}

func TestProtect_LoadingGets503WithRetryAfter(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{err: context.DeadlineExceeded}
	w := guardRequest(t, resolver, domainauth.AccessPolicy{RequireAuth: true}, withSession("s"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestProtect_SetsIdentityInContext(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{identities: map[string]domainauth.Identity{"s": customerIdentity("u1")}}

	var gotUserID string
	handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotUserID = SessionUserID(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s"})
	w := httptest.NewRecorder()
	Protect(resolver, domainauth.AccessPolicy{RequireAuth: true})(handler).ServeHTTP(w, r)

	assert.Equal(t, "u1", gotUserID)
}

func TestIsBrowserRequest(t *testing.T) {
	t.Parallel()

	api := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	api.Header.Set("Accept", "text/html")
	assert.False(t, isBrowserRequest(api))

	page := httptest.NewRequest(http.MethodGet, "/admin", nil)
	page.Header.Set("Accept", "text/html,application/xhtml+xml")
	assert.True(t, isBrowserRequest(page))

	jsonClient := httptest.NewRequest(http.MethodGet, "/admin", nil)
	jsonClient.Header.Set("Accept", "application/json")
	assert.False(t, isBrowserRequest(jsonClient))

	noAccept := httptest.NewRequest(http.MethodGet, "/admin", nil)
	assert.True(t, isBrowserRequest(noAccept))
}
