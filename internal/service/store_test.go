package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/makka/storefront-api/internal/data"
	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/mocks"
)

func newTestStoreService(t *testing.T) (*StoreService, *mocks.MockStoreRepository, *mocks.MockStoreSettingsRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	stores := mocks.NewMockStoreRepository(ctrl)
	settings := mocks.NewMockStoreSettingsRepository(ctrl)
	svc := NewStoreService(StoreServiceOptions{Stores: stores, Settings: settings})
	return svc, stores, settings
}

func TestStoreService_GetBySlug(t *testing.T) {
	t.Parallel()

	svc, stores, _ := newTestStoreService(t)
	ctx := context.Background()

	stores.EXPECT().
		GetBySlug(gomock.Any(), "roti-enak").
		Return(&model.Store{ID: "store-1", Slug: "roti-enak", IsActive: true}, nil)

	store, err := svc.GetBySlug(ctx, "roti-enak")
	require.NoError(t, err)
	assert.Equal(t, "store-1", store.ID)

	stores.EXPECT().GetBySlug(gomock.Any(), "gone").Return(nil, data.ErrStoreNotFound)
	_, err = svc.GetBySlug(ctx, "gone")
	require.ErrorIs(t, err, data.ErrStoreNotFound)
	assert.True(t, IsNotFound(err))
}

func TestStoreService_Create(t *testing.T) {
	t.Parallel()

	svc, stores, _ := newTestStoreService(t)
	ctx := context.Background()

	req := &model.CreateStoreRequest{Name: "Roti Enak", Slug: "roti-enak"}
	stores.EXPECT().
		Create(gomock.Any(), req).
		Return(&model.Store{ID: "store-1", Name: "Roti Enak", Slug: "roti-enak"}, nil)

	store, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "roti-enak", store.Slug)

	stores.EXPECT().Create(gomock.Any(), req).Return(nil, data.ErrStoreSlugTaken)
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, data.ErrStoreSlugTaken)
}

func TestStoreService_UpdateSettings(t *testing.T) {
	t.Parallel()

	svc, _, settings := newTestStoreService(t)
	ctx := context.Background()

	enabled := true
	req := model.UpdateStoreSettingsRequest{PaymentCODEnabled: &enabled}
	settings.EXPECT().
		Update(gomock.Any(), "store-1", req).
		Return(&model.StoreSettings{StoreID: "store-1", PaymentCODEnabled: true}, nil)

	got, err := svc.UpdateSettings(ctx, "store-1", req)
	require.NoError(t, err)
	assert.True(t, got.PaymentCODEnabled)
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.True(t, IsNotFound(data.ErrProfileNotFound))
	assert.True(t, IsNotFound(data.ErrOrderNotFound))
}
