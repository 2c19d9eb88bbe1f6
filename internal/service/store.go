package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/makka/storefront-api/internal/data"
	"github.com/makka/storefront-api/internal/domain/model"
)

// StoreRepository is the slice of the store repository the service needs.
type StoreRepository interface {
	Create(ctx context.Context, req *model.CreateStoreRequest) (*model.Store, error)
	GetByID(ctx context.Context, id string) (*model.Store, error)
	GetBySlug(ctx context.Context, slug string) (*model.Store, error)
	List(ctx context.Context, limit, offset int) ([]*model.Store, error)
	Update(ctx context.Context, id string, req model.UpdateStoreRequest) (*model.Store, error)
}

// StoreSettingsRepository is the slice of the settings repository the service needs.
type StoreSettingsRepository interface {
	GetByStoreID(ctx context.Context, storeID string) (*model.StoreSettings, error)
	Update(ctx context.Context, storeID string, req model.UpdateStoreSettingsRequest) (*model.StoreSettings, error)
}

// StoreServiceOptions groups dependencies for StoreService.
type StoreServiceOptions struct {
	Stores   StoreRepository
	Settings StoreSettingsRepository
	Logger   *slog.Logger
}

// StoreService serves storefront lookups plus store management for the
// super-admin console and per-store settings for store admins.
type StoreService struct {
	stores   StoreRepository
	settings StoreSettingsRepository
	logger   *slog.Logger
}

// NewStoreService constructs a new StoreService.
func NewStoreService(opts StoreServiceOptions) *StoreService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreService{stores: opts.Stores, settings: opts.Settings, logger: logger}
}

// GetBySlug returns the active store for a public storefront slug.
func (s *StoreService) GetBySlug(ctx context.Context, slug string) (*model.Store, error) {
	return s.stores.GetBySlug(ctx, slug)
}

// GetByID returns a store by ID.
func (s *StoreService) GetByID(ctx context.Context, id string) (*model.Store, error) {
	return s.stores.GetByID(ctx, id)
}

// List returns stores for the super-admin console.
func (s *StoreService) List(ctx context.Context, limit, offset int) ([]*model.Store, error) {
	return s.stores.List(ctx, limit, offset)
}

// Create creates a store; the repository also seeds its default settings row.
func (s *StoreService) Create(ctx context.Context, req *model.CreateStoreRequest) (*model.Store, error) {
	store, err := s.stores.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "store created", "store_id", store.ID, "slug", store.Slug)
	return store, nil
}

// Update updates store fields, including the is_active toggle.
func (s *StoreService) Update(ctx context.Context, id string, req model.UpdateStoreRequest) (*model.Store, error) {
	store, err := s.stores.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		s.logger.InfoContext(ctx, "store active flag changed", "store_id", store.ID, "is_active", *req.IsActive)
	}
	return store, nil
}

// GetSettings returns settings for a store.
func (s *StoreService) GetSettings(ctx context.Context, storeID string) (*model.StoreSettings, error) {
	return s.settings.GetByStoreID(ctx, storeID)
}

// UpdateSettings updates settings for a store.
func (s *StoreService) UpdateSettings(
	ctx context.Context,
	storeID string,
	req model.UpdateStoreSettingsRequest,
) (*model.StoreSettings, error) {
	return s.settings.Update(ctx, storeID, req)
}

// IsNotFound reports whether err is one of the repository not-found sentinels.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	for _, sentinel := range []error{
		data.ErrStoreNotFound,
		data.ErrStoreSettingsNotFound,
		data.ErrProfileNotFound,
		data.ErrStoreAdminNotFound,
		data.ErrCategoryNotFound,
		data.ErrProductNotFound,
		data.ErrOrderNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
