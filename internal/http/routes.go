package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     *service.AuthService
	Identity *service.IdentityService
	Stores   *service.StoreService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Console  *service.SuperAdminService

	CookieDomain string
	Logger       *slog.Logger
}

// Route policies, declared once at registration time and immutable after.
var (
	policyCustomer = domainauth.AccessPolicy{RequireAuth: true, CustomerOnly: true}
	policyAdmin    = domainauth.AccessPolicy{
		RequireAuth:  true,
		AllowedRoles: []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleSuperAdmin},
	}
	policySuperAdmin = domainauth.AccessPolicy{
		RequireAuth:  true,
		AllowedRoles: []domainauth.Role{domainauth.RoleSuperAdmin},
	}
)

// NewRouter creates and configures the HTTP router with the route guard.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Identity:     services.Identity,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	storefront := &StorefrontHandlers{
		Stores:  services.Stores,
		Catalog: services.Catalog,
		Orders:  services.Orders,
	}
	admin := &AdminHandlers{
		Stores:  services.Stores,
		Catalog: services.Catalog,
		Orders:  services.Orders,
	}
	superAdmin := &SuperAdminHandlers{
		Console: services.Console,
		Stores:  services.Stores,
	}

	registerAuthRoutes(mux, authHandlers)
	registerStorefrontRoutes(mux, storefront, services.Identity)
	registerAdminRoutes(mux, admin, services.Identity)
	registerSuperAdminRoutes(mux, superAdmin, services.Identity)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return BrowserDetection()(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/signup", h.SignUp)
	mux.HandleFunc("POST /api/auth/signin", h.SignIn)
	mux.HandleFunc("GET /api/auth/session", h.Session)
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/signout", h.SignOut)
}

func registerStorefrontRoutes(mux *http.ServeMux, h *StorefrontHandlers, resolver IdentityResolver) {
	// Public catalog surface.
	mux.HandleFunc("GET /api/stores/{slug}", h.GetStore)
	mux.HandleFunc("GET /api/stores/{slug}/categories", h.ListCategories)
	mux.HandleFunc("GET /api/stores/{slug}/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)

	// Checkout and order history are for signed-in customers; admins are
	// bounced to their own dashboards by the guard.
	customer := Protect(resolver, policyCustomer)
	mux.Handle("POST /api/orders", customer(http.HandlerFunc(h.CreateOrder)))
	mux.Handle("GET /api/orders", customer(http.HandlerFunc(h.ListMyOrders)))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, resolver IdentityResolver) {
	guard := Protect(resolver, policyAdmin)

	mux.Handle("GET /api/admin/store", guard(http.HandlerFunc(h.GetMyStore)))
	mux.Handle("GET /api/admin/settings", guard(http.HandlerFunc(h.GetSettings)))
	mux.Handle("PUT /api/admin/settings", guard(http.HandlerFunc(h.UpdateSettings)))

	mux.Handle("GET /api/admin/categories", guard(http.HandlerFunc(h.ListCategories)))
	mux.Handle("POST /api/admin/categories", guard(http.HandlerFunc(h.CreateCategory)))
	mux.Handle("PUT /api/admin/categories/{id}", guard(http.HandlerFunc(h.RenameCategory)))
	mux.Handle("DELETE /api/admin/categories/{id}", guard(http.HandlerFunc(h.DeleteCategory)))

	mux.Handle("GET /api/admin/products", guard(http.HandlerFunc(h.ListProducts)))
	mux.Handle("POST /api/admin/products", guard(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("PUT /api/admin/products/{id}", guard(http.HandlerFunc(h.UpdateProduct)))
	mux.Handle("DELETE /api/admin/products/{id}", guard(http.HandlerFunc(h.DeleteProduct)))

	mux.Handle("GET /api/admin/orders", guard(http.HandlerFunc(h.ListOrders)))
	mux.Handle("PATCH /api/admin/orders/{id}", guard(http.HandlerFunc(h.UpdateOrderStatus)))
}

func registerSuperAdminRoutes(mux *http.ServeMux, h *SuperAdminHandlers, resolver IdentityResolver) {
	guard := Protect(resolver, policySuperAdmin)

	mux.Handle("GET /api/superadmin/stats", guard(http.HandlerFunc(h.Stats)))
	mux.Handle("GET /api/superadmin/stores", guard(http.HandlerFunc(h.ListStores)))
	mux.Handle("POST /api/superadmin/stores", guard(http.HandlerFunc(h.CreateStore)))
	mux.Handle("PATCH /api/superadmin/stores/{id}", guard(http.HandlerFunc(h.UpdateStore)))
	mux.Handle("GET /api/superadmin/stores/{id}/admins", guard(http.HandlerFunc(h.ListStoreAdmins)))
	mux.Handle("GET /api/superadmin/users", guard(http.HandlerFunc(h.ListUsers)))
	mux.Handle("PATCH /api/superadmin/users/{id}/role", guard(http.HandlerFunc(h.PromoteRole)))
	mux.Handle("POST /api/superadmin/store-admins", guard(http.HandlerFunc(h.AssignStoreAdmin)))
	mux.Handle("DELETE /api/superadmin/store-admins/{userID}", guard(http.HandlerFunc(h.RemoveStoreAdmin)))
	mux.Handle("GET /api/superadmin/orders/recent", guard(http.HandlerFunc(h.RecentOrders)))
}
