package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/makka/storefront-api/config"
	redisadapter "github.com/makka/storefront-api/internal/adapters/redis"
	"github.com/makka/storefront-api/internal/data"
	"github.com/makka/storefront-api/internal/ports"
	"github.com/makka/storefront-api/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth     *service.AuthService
	Identity *service.IdentityService
	Stores   *service.StoreService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Console  *service.SuperAdminService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB             *sql.DB
	CredentialRepo *data.CredentialRepo
	ProfileRepo    *data.ProfileRepo
	StoreAdminRepo *data.StoreAdminRepo
	StoreRepo      *data.StoreRepo
	SettingsRepo   *data.StoreSettingsRepo
	CategoryRepo   *data.CategoryRepo
	ProductRepo    *data.ProductRepo
	OrderRepo      *data.OrderRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		DB:             db,
		CredentialRepo: data.NewCredentialRepo(db),
		ProfileRepo:    data.NewProfileRepo(db),
		StoreAdminRepo: data.NewStoreAdminRepo(db),
		StoreRepo:      data.NewStoreRepo(db),
		SettingsRepo:   data.NewStoreSettingsRepo(db),
		CategoryRepo:   data.NewCategoryRepo(db),
		ProductRepo:    data.NewProductRepo(db),
		OrderRepo:      data.NewOrderRepo(db),
	}
}

// buildSessionInfra wires the Redis-backed session store and auth event bus.
// Both are nil when Redis is not configured; auth then stays disabled but the
// public catalog keeps serving.
func buildSessionInfra(client redis.UniversalClient, logger *slog.Logger) (ports.SessionStore, ports.AuthEventBus) {
	if client == nil {
		return nil, nil
	}
	return redisadapter.NewSessionStoreWithPrefix(client, "session:"),
		redisadapter.NewAuthEventBus(client, logger)
}

func newImageResolver(cfg config.StorageConfig) *service.ImageResolver {
	return service.NewImageResolver(service.ImageResolverOptions{
		PublicBaseURL: cfg.PublicBaseURL,
		Bucket:        cfg.ProductsBucket,
		Placeholder:   cfg.PlaceholderPath,
	})
}

// NewServices wires repositories, session infrastructure, and domain services.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB)
	sessions, events := buildSessionInfra(deps.RedisClient, logger)

	identity := service.NewIdentityService(service.IdentityServiceOptions{
		Sessions:    sessions,
		Profiles:    repos.ProfileRepo,
		StoreAdmins: repos.StoreAdminRepo,
		Events:      events,
		Logger:      logger,
	})
	if err := identity.Start(context.Background()); err != nil {
		logger.Warn("identity cache invalidation disabled: auth event subscribe failed", "error", err)
	}

	auth := BuildAuthService(AuthConfig{
		Auth:        appCfg.Auth,
		Sessions:    sessions,
		Credentials: repos.CredentialRepo,
		Profiles:    repos.ProfileRepo,
		Identity:    identity,
		Events:      events,
		Logger:      logger,
	})

	stores := service.NewStoreService(service.StoreServiceOptions{
		Stores:   repos.StoreRepo,
		Settings: repos.SettingsRepo,
		Logger:   logger,
	})

	catalog := service.NewCatalogService(service.CatalogServiceOptions{
		Categories: repos.CategoryRepo,
		Products:   repos.ProductRepo,
		Images:     newImageResolver(appCfg.Storage),
		Logger:     logger,
	})

	orders := service.NewOrderService(service.OrderServiceOptions{
		Orders: repos.OrderRepo,
		Logger: logger,
	})

	console := service.NewSuperAdminService(service.SuperAdminServiceOptions{
		Profiles:    repos.ProfileRepo,
		StoreAdmins: repos.StoreAdminRepo,
		Stores:      repos.StoreRepo,
		Orders:      repos.OrderRepo,
		Identity:    identity,
		Events:      events,
		Logger:      logger,
	})

	return ServiceContainer{
		Auth:     auth,
		Identity: identity,
		Stores:   stores,
		Catalog:  catalog,
		Orders:   orders,
		Console:  console,
	}
}
