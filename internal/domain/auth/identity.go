package auth

// Identity is the resolved authorization bundle for the current actor:
// the session (if any), the profile row, and the store-admin grant.
// Loading is true until both lookups have settled; consumers must treat
// a loading identity as undecided rather than unauthenticated.
type Identity struct {
	Session    *Session
	Profile    *Profile
	StoreAdmin *StoreAdmin
	Loading    bool
}

// Authenticated reports whether a live session backs this identity.
func (id Identity) Authenticated() bool { return id.Session != nil }

// IsSuperAdmin reports platform-wide authority. False when profile is absent.
func IsSuperAdmin(p *Profile) bool { return p != nil && p.Role == RoleSuperAdmin }

// IsStoreAdmin reports store-admin capability. Presence of the grant alone
// decides; the role string inside it is not inspected.
func IsStoreAdmin(sa *StoreAdmin) bool { return sa != nil }

// Navigation targets used by the redirect policy and the route guard.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathAdmin      = "/admin"
	PathSuperAdmin = "/superadmin"
)

// RedirectPath maps a resolved identity to its home destination after login.
// The super-admin check precedes the store-admin check: a user holding both
// routes to the super-admin console.
func RedirectPath(p *Profile, sa *StoreAdmin) string {
	if p == nil {
		return PathHome
	}
	if IsSuperAdmin(p) {
		return PathSuperAdmin
	}
	if IsStoreAdmin(sa) {
		return PathAdmin
	}
	return PathHome
}
