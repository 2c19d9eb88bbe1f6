// Package mocks provides mock implementations for testing the storefront services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// narrow repository interfaces declared by the service layer. The mocks are
// generated using go:generate directives and provide a fluent API for setting up
// test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockOrderRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(order, nil)
package mocks

// Generate mocks for the profile and store-admin read interfaces used by the
// auth and identity services: ProfileStore (Create, GetByID), ProfileReader
// (GetByID), StoreAdminReader (GetByUserID).
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=profile_store_mock.go github.com/makka/storefront-api/internal/service ProfileStore,ProfileReader,StoreAdminReader

// Generate mocks for the store interfaces: StoreRepository (Create, GetByID,
// GetBySlug, List, Update), StoreSettingsRepository (GetByStoreID, Update),
// StoreCounter (Count).
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=store_repository_mock.go github.com/makka/storefront-api/internal/service StoreRepository,StoreSettingsRepository,StoreCounter

// Generate mocks for the catalog interfaces: CategoryRepository (Create,
// GetByID, ListByStore, Rename, Delete), ProductRepository (Create, GetByID,
// ListWithOptions, Update, Delete).
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=catalog_repository_mock.go github.com/makka/storefront-api/internal/service CategoryRepository,ProductRepository

// Generate mocks for the order interfaces: OrderRepository (Create, GetByID,
// ListWithOptions, UpdateStatus), OrderAggregator (CountAndGMV, ListWithOptions).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=order_repository_mock.go github.com/makka/storefront-api/internal/service OrderRepository,OrderAggregator

// Generate mocks for the console interfaces: ProfileAdminRepository (List,
// UpdateRole, Count), StoreAdminRepository (Assign, ListByStore, Remove).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=superadmin_repository_mock.go github.com/makka/storefront-api/internal/service ProfileAdminRepository,StoreAdminRepository
