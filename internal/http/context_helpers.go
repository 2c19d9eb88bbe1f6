package httpx

import (
	"context"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
)

// identityKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type identityKey struct{}

// SetIdentityInContext returns a child context carrying the resolved identity.
func SetIdentityInContext(ctx context.Context, id domainauth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentityFromContext returns the identity from context and whether one was set.
func GetIdentityFromContext(ctx context.Context) (domainauth.Identity, bool) {
	if id, ok := ctx.Value(identityKey{}).(domainauth.Identity); ok {
		return id, true
	}
	return domainauth.Identity{}, false
}

// SessionUserID returns the authenticated user's ID, or "" for anonymous requests.
func SessionUserID(ctx context.Context) string {
	id, ok := GetIdentityFromContext(ctx)
	if !ok || id.Session == nil {
		return ""
	}
	return id.Session.UserID
}

// AdminStoreID returns the store the caller administers, or "" when the
// caller holds no store-admin grant.
func AdminStoreID(ctx context.Context) string {
	id, ok := GetIdentityFromContext(ctx)
	if !ok || id.StoreAdmin == nil {
		return ""
	}
	return id.StoreAdmin.StoreID
}
