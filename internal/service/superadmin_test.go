package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/makka/storefront-api/internal/data"
	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/mocks"
	mockauth "github.com/makka/storefront-api/internal/mocks/auth"
)

type superAdminFixture struct {
	svc         *SuperAdminService
	profiles    *mocks.MockProfileAdminRepository
	storeAdmins *mocks.MockStoreAdminRepository
	stores      *mocks.MockStoreCounter
	orders      *mocks.MockOrderAggregator
	events      *mockauth.MemoryEventBus
}

func newSuperAdminFixture(t *testing.T) *superAdminFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &superAdminFixture{
		profiles:    mocks.NewMockProfileAdminRepository(ctrl),
		storeAdmins: mocks.NewMockStoreAdminRepository(ctrl),
		stores:      mocks.NewMockStoreCounter(ctrl),
		orders:      mocks.NewMockOrderAggregator(ctrl),
		events:      mockauth.NewMemoryEventBus(),
	}
	f.svc = NewSuperAdminService(SuperAdminServiceOptions{
		Profiles:    f.profiles,
		StoreAdmins: f.storeAdmins,
		Stores:      f.stores,
		Orders:      f.orders,
		Events:      f.events,
	})
	return f
}

func TestSuperAdminService_Stats(t *testing.T) {
	t.Parallel()

	f := newSuperAdminFixture(t)
	ctx := context.Background()

	f.stores.EXPECT().Count(gomock.Any()).Return(int64(4), nil)
	f.profiles.EXPECT().Count(gomock.Any()).Return(int64(120), nil)
	f.orders.EXPECT().CountAndGMV(gomock.Any()).Return(int64(37), int64(1_250_000), nil)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalStores)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(37), stats.TotalOrders)
	assert.Equal(t, int64(1_250_000), stats.TotalGMV)
}

func TestSuperAdminService_Stats_PropagatesFailure(t *testing.T) {
	t.Parallel()

	f := newSuperAdminFixture(t)
	ctx := context.Background()

	f.stores.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db down")).MaxTimes(1)
	f.profiles.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db down")).MaxTimes(1)
	f.orders.EXPECT().CountAndGMV(gomock.Any()).Return(int64(0), int64(0), errors.New("db down")).MaxTimes(1)

	_, err := f.svc.Stats(ctx)
	require.Error(t, err)
}

func TestSuperAdminService_PromoteRole_InvalidatesIdentity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileAdminRepository(ctrl)
	identity := NewIdentityService(IdentityServiceOptions{})
	events := mockauth.NewMemoryEventBus()
	svc := NewSuperAdminService(SuperAdminServiceOptions{
		Profiles: profiles,
		Identity: identity,
		Events:   events,
	})
	ctx := context.Background()

	profiles.EXPECT().
		UpdateRole(gomock.Any(), "user-1", domainauth.RoleSuperAdmin).
		Return(&domainauth.Profile{ID: "user-1", Role: domainauth.RoleSuperAdmin}, nil)

	profile, err := svc.PromoteRole(ctx, "user-1", domainauth.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleSuperAdmin, profile.Role)

	// Other processes learn about the promotion through the event bus.
	require.Len(t, events.Published, 1)
	assert.Equal(t, domainauth.EventRoleChanged, events.Published[0].Kind)
	assert.Equal(t, "user-1", events.Published[0].UserID)
}

func TestSuperAdminService_AssignAndRemoveStoreAdmin(t *testing.T) {
	t.Parallel()

	f := newSuperAdminFixture(t)
	ctx := context.Background()

	f.storeAdmins.EXPECT().
		Assign(gomock.Any(), "store-1", "user-1").
		Return(&domainauth.StoreAdmin{ID: "grant-1", StoreID: "store-1", UserID: "user-1"}, nil)

	grant, err := f.svc.AssignStoreAdmin(ctx, "store-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "store-1", grant.StoreID)
	require.Len(t, f.events.Published, 1, "grant change must be broadcast")
	assert.Equal(t, domainauth.EventRoleChanged, f.events.Published[0].Kind)
	assert.Equal(t, "user-1", f.events.Published[0].UserID)

	f.storeAdmins.EXPECT().
		Assign(gomock.Any(), "store-1", "user-1").
		Return(nil, data.ErrStoreAdminExists)
	_, err = f.svc.AssignStoreAdmin(ctx, "store-1", "user-1")
	require.ErrorIs(t, err, data.ErrStoreAdminExists)

	f.storeAdmins.EXPECT().Remove(gomock.Any(), "user-1").Return(true, nil)
	removed, err := f.svc.RemoveStoreAdmin(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, f.events.Published, 2, "revocation must be broadcast")

	f.storeAdmins.EXPECT().Remove(gomock.Any(), "user-1").Return(false, nil)
	removed, err = f.svc.RemoveStoreAdmin(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, f.events.Published, 2, "no-op removal publishes nothing")
}

func TestSuperAdminService_RecentOrders_CapsAtHundred(t *testing.T) {
	t.Parallel()

	f := newSuperAdminFixture(t)
	ctx := context.Background()

	f.orders.EXPECT().
		ListWithOptions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.OrdersListOptions) ([]*model.Order, error) {
			assert.Equal(t, 100, opts.Limit)
			assert.Nil(t, opts.StoreID)
			assert.Nil(t, opts.CustomerID)
			return []*model.Order{{ID: "o1"}}, nil
		})

	orders, err := f.svc.RecentOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestSuperAdminService_ListUsers(t *testing.T) {
	t.Parallel()

	f := newSuperAdminFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		List(gomock.Any(), 50, 0).
		Return([]*domainauth.Profile{{ID: "user-1"}, {ID: "user-2"}}, nil)

	users, err := f.svc.ListUsers(ctx, 50, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
