package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/ports"
)

// recentOrdersLimit caps the cross-store recent orders listing.
const recentOrdersLimit = 100

// ProfileAdminRepository is the slice of the profile repository the
// super-admin service needs.
type ProfileAdminRepository interface {
	List(ctx context.Context, limit, offset int) ([]*domainauth.Profile, error)
	UpdateRole(ctx context.Context, id string, role domainauth.Role) (*domainauth.Profile, error)
	Count(ctx context.Context) (int64, error)
}

// StoreAdminRepository manages store-admin grants.
type StoreAdminRepository interface {
	Assign(ctx context.Context, storeID, userID string) (*domainauth.StoreAdmin, error)
	ListByStore(ctx context.Context, storeID string) ([]*domainauth.StoreAdmin, error)
	Remove(ctx context.Context, userID string) (bool, error)
}

// StoreCounter exposes the store count for stats.
type StoreCounter interface {
	Count(ctx context.Context) (int64, error)
}

// OrderAggregator exposes order aggregates for stats and the recent listing.
type OrderAggregator interface {
	CountAndGMV(ctx context.Context) (count, gmv int64, err error)
	ListWithOptions(ctx context.Context, opts model.OrdersListOptions) ([]*model.Order, error)
}

// SuperAdminServiceOptions groups dependencies for SuperAdminService.
type SuperAdminServiceOptions struct {
	Profiles    ProfileAdminRepository
	StoreAdmins StoreAdminRepository
	Stores      StoreCounter
	Orders      OrderAggregator
	Identity    *IdentityService
	Events      ports.AuthEventBus // optional; broadcasts role changes to other processes
	Logger      *slog.Logger
}

// SuperAdminService backs the platform console: user management, store-admin
// grants, and the dashboard stats.
type SuperAdminService struct {
	profiles    ProfileAdminRepository
	storeAdmins StoreAdminRepository
	stores      StoreCounter
	orders      OrderAggregator
	identity    *IdentityService
	events      ports.AuthEventBus
	logger      *slog.Logger
}

// NewSuperAdminService constructs a new SuperAdminService.
func NewSuperAdminService(opts SuperAdminServiceOptions) *SuperAdminService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SuperAdminService{
		profiles:    opts.Profiles,
		storeAdmins: opts.StoreAdmins,
		stores:      opts.Stores,
		orders:      opts.Orders,
		identity:    opts.Identity,
		events:      opts.Events,
		logger:      logger,
	}
}

// Stats aggregates platform totals. The underlying queries run concurrently.
// GMV only counts orders whose payment_status is PAID.
func (s *SuperAdminService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.stores.Count(gctx)
		if err != nil {
			return err
		}
		stats.TotalStores = n
		return nil
	})
	g.Go(func() error {
		n, err := s.profiles.Count(gctx)
		if err != nil {
			return err
		}
		stats.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		count, gmv, err := s.orders.CountAndGMV(gctx)
		if err != nil {
			return err
		}
		stats.TotalOrders = count
		stats.TotalGMV = gmv
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListUsers returns profiles for the console.
func (s *SuperAdminService) ListUsers(ctx context.Context, limit, offset int) ([]*domainauth.Profile, error) {
	return s.profiles.List(ctx, limit, offset)
}

// PromoteRole changes a user's global role and drops their cached identity so
// the change takes effect on their next request.
func (s *SuperAdminService) PromoteRole(
	ctx context.Context,
	userID string,
	role domainauth.Role,
) (*domainauth.Profile, error) {
	profile, err := s.profiles.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	s.dropCachedIdentity(ctx, userID)
	s.logger.InfoContext(ctx, "user role changed", "user_id", userID, "role", role)
	return profile, nil
}

// AssignStoreAdmin grants store-admin capability for the store to the user.
func (s *SuperAdminService) AssignStoreAdmin(
	ctx context.Context,
	storeID, userID string,
) (*domainauth.StoreAdmin, error) {
	grant, err := s.storeAdmins.Assign(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	s.dropCachedIdentity(ctx, userID)
	s.logger.InfoContext(ctx, "store admin assigned", "user_id", userID, "store_id", storeID)
	return grant, nil
}

// RemoveStoreAdmin revokes the user's store-admin grant.
func (s *SuperAdminService) RemoveStoreAdmin(ctx context.Context, userID string) (bool, error) {
	removed, err := s.storeAdmins.Remove(ctx, userID)
	if err != nil {
		return false, err
	}
	if removed {
		s.dropCachedIdentity(ctx, userID)
	}
	return removed, nil
}

// dropCachedIdentity invalidates the local identity cache and broadcasts the
// role change so other processes drop theirs too, instead of serving the old
// authorization for up to the cache TTL.
func (s *SuperAdminService) dropCachedIdentity(ctx context.Context, userID string) {
	if s.identity != nil {
		s.identity.Invalidate(userID)
	}
	if s.events == nil {
		return
	}
	event := domainauth.Event{
		Kind:   domainauth.EventRoleChanged,
		UserID: userID,
		At:     time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "publish auth event failed",
			"kind", event.Kind, "user_id", event.UserID, "error", err)
	}
}

// ListStoreAdmins returns the grants for one store.
func (s *SuperAdminService) ListStoreAdmins(ctx context.Context, storeID string) ([]*domainauth.StoreAdmin, error) {
	return s.storeAdmins.ListByStore(ctx, storeID)
}

// RecentOrders returns the newest orders across all stores, capped at 100.
func (s *SuperAdminService) RecentOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orders.ListWithOptions(ctx, model.OrdersListOptions{Limit: recentOrdersLimit})
}
