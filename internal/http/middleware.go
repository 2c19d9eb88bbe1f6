package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityResolver resolves the full identity for a session ID.
type IdentityResolver interface {
	Resolve(ctx context.Context, sessionID string) (domainauth.Identity, error)
}

// SessionCookieName is the cookie carrying the opaque session ID.
const SessionCookieName = "session_id"

// sessionIDFromRequest reads the session cookie; "" means anonymous.
func sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Protect returns a middleware enforcing an access policy on the route.
// The identity is resolved once per request, the guard is evaluated, and the
// outcome is realized per client type: browsers get 303 redirects, API
// clients get structured 401/403 JSON carrying the redirect target. A
// still-loading identity (resolution interrupted) answers 503 with
// Retry-After rather than guessing at an access judgment.
func Protect(resolver IdentityResolver, policy domainauth.AccessPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r.Context(), sessionIDFromRequest(r))
			if err != nil && !identity.Loading {
				WriteError(w, ErrorParams{
					Code:    http.StatusInternalServerError,
					ErrCode: "identity_resolution_failed",
					Err:     errors.New("could not resolve identity"),
				})
				return
			}

			decision := domainauth.Evaluate(identity, policy)
			switch decision.Kind {
			case domainauth.DecisionLoading:
				w.Header().Set("Retry-After", "1")
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "identity_loading",
					Err:     errors.New("identity is still resolving"),
				})
				return
			case domainauth.DecisionRedirect:
				denyOrRedirect(w, r, identity, decision)
				return
			case domainauth.DecisionRender:
				ctx := SetIdentityInContext(r.Context(), identity)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

// denyOrRedirect realizes a redirect decision for the request's client type.
func denyOrRedirect(w http.ResponseWriter, r *http.Request, identity domainauth.Identity, decision domainauth.Decision) {
	target := decision.Target
	if decision.ReturnTo {
		// Carry the origin so the login flow can resume there.
		target += "?redirect_uri=" + url.QueryEscape(safeRedirectPath(r.URL.RequestURI()))
	}

	if IsBrowserRequest(r) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if !identity.Authenticated() {
		WriteJSON(w, http.StatusUnauthorized, map[string]string{
			"error":       "authentication_required",
			"message":     "authentication required",
			"redirect_to": target,
		})
		return
	}
	WriteJSON(w, http.StatusForbidden, map[string]string{
		"error":       "insufficient_permissions",
		"message":     "insufficient permissions",
		"redirect_to": target,
	})
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser requests vs API
// requests, so guard denials can pick between redirects and JSON errors.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isBrowser := isBrowserRequest(r)
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if val := r.Context().Value(browserRequestKey{}); val != nil {
		if isBrowser, ok := val.(bool); ok {
			return isBrowser
		}
	}
	// Fallback to direct detection if middleware wasn't used
	return isBrowserRequest(r)
}

// isBrowserRequest classifies the request: /api/ paths are API clients,
// everything else is decided by the Accept header's HTML preference.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		// No Accept header, assume browser for non-API routes
		return true
	}
	return strings.Contains(accept, "text/html")
}
