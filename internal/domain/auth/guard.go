package auth

// AccessPolicy is the set of constraints a route declares of the identity.
// Defined at route-registration time, immutable thereafter, evaluated fresh
// on every navigation.
type AccessPolicy struct {
	// AllowedRoles restricts the route to the listed roles when non-empty.
	AllowedRoles []Role
	// RequireAuth blocks anonymous access.
	RequireAuth bool
	// CustomerOnly bounces admins and super-admins to their own dashboards.
	CustomerOnly bool
}

// DecisionKind enumerates the three guard outcomes.
type DecisionKind int

const (
	// DecisionRender admits the request.
	DecisionRender DecisionKind = iota
	// DecisionRedirect bounces the request to Decision.Target.
	DecisionRedirect
	// DecisionLoading means the identity is still resolving; no access
	// judgment is made and the evaluation should be retried.
	DecisionLoading
)

// Decision is the outcome of evaluating an AccessPolicy against an Identity.
type Decision struct {
	Kind   DecisionKind
	Target string
	// ReturnTo carries the originating location when redirecting to login,
	// so the flow can resume there afterward.
	ReturnTo bool
}

func render() Decision            { return Decision{Kind: DecisionRender} }
func redirect(to string) Decision { return Decision{Kind: DecisionRedirect, Target: to} }
func toLogin() Decision {
	return Decision{Kind: DecisionRedirect, Target: PathLogin, ReturnTo: true}
}

// Evaluate runs the route guard. It is deterministic and side-effect free:
// all lookups happen before the call and the identity is taken as resolved.
// Rules apply in strict order, first match wins.
func Evaluate(id Identity, policy AccessPolicy) Decision {
	if id.Loading {
		return Decision{Kind: DecisionLoading}
	}

	if policy.RequireAuth && !id.Authenticated() {
		return toLogin()
	}

	if policy.CustomerOnly && id.Authenticated() && id.Profile != nil {
		if IsSuperAdmin(id.Profile) {
			return redirect(PathSuperAdmin)
		}
		if IsStoreAdmin(id.StoreAdmin) {
			return redirect(PathAdmin)
		}
		// Plain customers fall through to render.
	}

	if len(policy.AllowedRoles) > 0 {
		return evaluateRoles(id, policy.AllowedRoles)
	}

	return render()
}

// evaluateRoles handles the role-restricted branch of the guard.
func evaluateRoles(id Identity, allowed []Role) Decision {
	if !id.Authenticated() || id.Profile == nil {
		return toLogin()
	}

	if roleAllowed(allowed, RoleSuperAdmin) && IsSuperAdmin(id.Profile) {
		return render()
	}
	if roleAllowed(allowed, RoleAdmin) && IsStoreAdmin(id.StoreAdmin) {
		return render()
	}
	if roleAllowed(allowed, RoleCustomer) && id.Profile.Role == RoleCustomer {
		return render()
	}

	// Authenticated but mismatched: bounce to the user's own home instead
	// of denying outright.
	if IsSuperAdmin(id.Profile) {
		return redirect(PathSuperAdmin)
	}
	if IsStoreAdmin(id.StoreAdmin) {
		return redirect(PathAdmin)
	}
	return redirect(PathHome)
}

func roleAllowed(allowed []Role, r Role) bool {
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}
