// Package devseed populates a development database with demo data:
// a demo store with categories and products, plus dev accounts for each
// role. Seeding is idempotent; existing records are left alone.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/makka/storefront-api/internal/data"
	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/domain/model"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	DB          *sql.DB
	credentials *data.CredentialRepo
	profiles    *data.ProfileRepo
	storeAdmins *data.StoreAdminRepo
	stores      *data.StoreRepo
	categories  *data.CategoryRepo
	products    *data.ProductRepo
}

// NewServices constructs all required repositories for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:          db,
		credentials: data.NewCredentialRepo(db),
		profiles:    data.NewProfileRepo(db),
		storeAdmins: data.NewStoreAdminRepo(db),
		stores:      data.NewStoreRepo(db),
		categories:  data.NewCategoryRepo(db),
		products:    data.NewProductRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	store, err := seedStore(ctx, svcs, logger)
	if err != nil {
		return err
	}

	failures := 0
	failures += seedCategories(ctx, svcs, store.ID, logger)
	failures += seedProducts(ctx, svcs, store.ID, logger)
	failures += seedAccounts(ctx, svcs, store.ID, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedStore(ctx context.Context, svcs Services, logger *slog.Logger) (*model.Store, error) {
	const slug = "makka-bakery"

	address := "Jl. Raya Bogor No. 1"
	store, err := svcs.stores.Create(ctx, &model.CreateStoreRequest{
		Name:    "Makka Bakery",
		Slug:    slug,
		Address: &address,
	})
	if err == nil {
		if logger != nil {
			logger.InfoContext(ctx, "created demo store", "slug", slug, "store_id", store.ID)
		}
		return store, nil
	}
	if !errors.Is(err, data.ErrStoreSlugTaken) {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	store, err = svcs.stores.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("lookup existing demo store: %w", err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "demo store already exists", "slug", slug, "store_id", store.ID)
	}
	return store, nil
}

func seedCategories(ctx context.Context, svcs Services, storeID string, logger *slog.Logger) int {
	existing, err := svcs.categories.ListByStore(ctx, storeID)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list categories", "error", err)
		}
		return 1
	}
	byName := make(map[string]bool, len(existing))
	for _, c := range existing {
		byName[c.Name] = true
	}

	failures := 0
	for _, name := range []string{"Bread", "Cakes", "Pastries"} {
		if byName[name] {
			continue
		}
		if _, err := svcs.categories.Create(ctx, storeID, &model.CreateCategoryRequest{Name: name}); err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create category", "name", name, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created category", "name", name)
		}
	}
	return failures
}

func defaultProducts() []*model.CreateProductRequest {
	croissant := "Butter croissant, baked fresh every morning."
	sourdough := "24-hour fermented sourdough loaf."
	brownie := "Dark chocolate fudge brownie."
	return []*model.CreateProductRequest{
		{Name: "Croissant", Description: &croissant, Price: 18_000, Images: []string{"croissant.jpg"}},
		{Name: "Sourdough Loaf", Description: &sourdough, Price: 45_000, Images: []string{"sourdough.jpg"}},
		{Name: "Chocolate Brownie", Description: &brownie, Price: 25_000, Images: []string{"brownie.jpg"}},
	}
}

func seedProducts(ctx context.Context, svcs Services, storeID string, logger *slog.Logger) int {
	existing, err := svcs.products.ListWithOptions(ctx, model.ProductsListOptions{StoreID: storeID, Limit: 200})
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list products", "error", err)
		}
		return 1
	}
	byName := make(map[string]bool, len(existing))
	for _, p := range existing {
		byName[p.Name] = true
	}

	failures := 0
	for _, req := range defaultProducts() {
		if byName[req.Name] {
			continue
		}
		if _, err := svcs.products.Create(ctx, storeID, req); err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create product", "name", req.Name, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created product", "name", req.Name)
		}
	}
	return failures
}

type devAccount struct {
	email      string
	fullName   string
	role       domainauth.Role
	storeAdmin bool
}

func devAccounts() []devAccount {
	return []devAccount{
		{email: "admin@example.com", fullName: "Platform Admin", role: domainauth.RoleSuperAdmin},
		{email: "bakery@example.com", fullName: "Bakery Admin", role: domainauth.RoleAdmin, storeAdmin: true},
		{email: "customer@example.com", fullName: "Demo Customer", role: domainauth.RoleCustomer},
	}
}

// devPassword is shared by all seeded accounts. Dev mode only.
const devPassword = "password123"

func seedAccounts(ctx context.Context, svcs Services, storeID string, logger *slog.Logger) int {
	failures := 0
	for _, acct := range devAccounts() {
		if err := seedAccount(ctx, svcs, storeID, acct, logger); err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed account", "email", acct.email, "error", err)
			}
			failures++
		}
	}
	return failures
}

func seedAccount(ctx context.Context, svcs Services, storeID string, acct devAccount, logger *slog.Logger) error {
	userID, created, err := ensureCredential(ctx, svcs, acct.email)
	if err != nil {
		return err
	}
	if logger != nil {
		msg := "dev account already exists"
		if created {
			msg = "created dev account"
		}
		logger.InfoContext(ctx, msg, "email", acct.email, "role", acct.role)
	}

	if err := ensureProfile(ctx, svcs, userID, acct); err != nil {
		return err
	}

	if acct.storeAdmin {
		if _, err := svcs.storeAdmins.Assign(ctx, storeID, userID); err != nil &&
			!errors.Is(err, data.ErrStoreAdminExists) {
			return fmt.Errorf("assign store admin: %w", err)
		}
	}
	return nil
}

func ensureCredential(ctx context.Context, svcs Services, email string) (string, bool, error) {
	if cred, err := svcs.credentials.GetByEmail(ctx, email); err == nil {
		return cred.UserID, false, nil
	} else if !errors.Is(err, domainauth.ErrCredentialNotFound) {
		return "", false, fmt.Errorf("lookup credential: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.MinCost)
	if err != nil {
		return "", false, fmt.Errorf("hash dev password: %w", err)
	}

	cred := domainauth.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := svcs.credentials.Create(ctx, cred); err != nil {
		return "", false, fmt.Errorf("create credential: %w", err)
	}
	return cred.UserID, true, nil
}

func ensureProfile(ctx context.Context, svcs Services, userID string, acct devAccount) error {
	if _, err := svcs.profiles.GetByID(ctx, userID); err == nil {
		return nil
	} else if !errors.Is(err, data.ErrProfileNotFound) {
		return fmt.Errorf("lookup profile: %w", err)
	}

	fullName := acct.fullName
	if _, err := svcs.profiles.Create(ctx, domainauth.Profile{
		ID:       userID,
		Role:     acct.role,
		FullName: &fullName,
	}); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}
