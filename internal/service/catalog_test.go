package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/makka/storefront-api/internal/data"
	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/mocks"
)

func newTestCatalogService(t *testing.T) (*CatalogService, *mocks.MockCategoryRepository, *mocks.MockProductRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	categories := mocks.NewMockCategoryRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	svc := NewCatalogService(CatalogServiceOptions{
		Categories: categories,
		Products:   products,
		Images: NewImageResolver(ImageResolverOptions{
			PublicBaseURL: "https://cdn.example.com/products",
			Placeholder: "/placeholder.svg",
		}),
	})
	return svc, categories, products
}

func TestCatalogService_ListProducts_ResolvesImages(t *testing.T) {
	t.Parallel()

	svc, _, products := newTestCatalogService(t)
	ctx := context.Background()

	storeID := "store-1"
	products.EXPECT().
		ListWithOptions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.ProductsListOptions) ([]*model.Product, error) {
			assert.Equal(t, storeID, opts.StoreID)
			assert.True(t, opts.OnlyAvailable)
			return []*model.Product{
				{ID: "p1", Images: []string{"croissant.jpg"}},
				{ID: "p2", Images: []string{"https://elsewhere.example.com/pic.png"}},
				{ID: "p3"},
			}, nil
		})

	views, err := svc.ListProducts(ctx, model.ProductsListOptions{
		StoreID:       storeID,
		OnlyAvailable: true,
	})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "https://cdn.example.com/products/croissant.jpg", views[0].Thumbnail)
	assert.Equal(t, "https://elsewhere.example.com/pic.png", views[1].Thumbnail)
	assert.Equal(t, "/placeholder.svg", views[2].Thumbnail)
}

func TestCatalogService_CategoryCRUD(t *testing.T) {
	t.Parallel()

	svc, categories, _ := newTestCatalogService(t)
	ctx := context.Background()

	req := &model.CreateCategoryRequest{Name: "Pastry"}
	categories.EXPECT().
		Create(gomock.Any(), "store-1", req).
		Return(&model.Category{ID: "c1", Name: "Pastry", StoreID: "store-1"}, nil)

	cat, err := svc.CreateCategory(ctx, "store-1", req)
	require.NoError(t, err)
	assert.Equal(t, "Pastry", cat.Name)

	categories.EXPECT().
		Rename(gomock.Any(), "c1", "store-1", model.UpdateCategoryRequest{Name: "Viennoiserie"}).
		Return(&model.Category{ID: "c1", Name: "Viennoiserie", StoreID: "store-1"}, nil)
	cat, err = svc.RenameCategory(ctx, "c1", "store-1", model.UpdateCategoryRequest{Name: "Viennoiserie"})
	require.NoError(t, err)
	assert.Equal(t, "Viennoiserie", cat.Name)

	// Deleting through the wrong store scope reports not-found, not success.
	categories.EXPECT().Delete(gomock.Any(), "c1", "other-store").Return(false, data.ErrCategoryNotFound)
	_, err = svc.DeleteCategory(ctx, "c1", "other-store")
	require.ErrorIs(t, err, data.ErrCategoryNotFound)

	categories.EXPECT().Delete(gomock.Any(), "c1", "store-1").Return(true, nil)
	deleted, err := svc.DeleteCategory(ctx, "c1", "store-1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Parallel()

	svc, _, products := newTestCatalogService(t)
	ctx := context.Background()

	products.EXPECT().
		GetByID(gomock.Any(), "p1").
		Return(&model.Product{ID: "p1", Images: []string{"a.jpg", "b.jpg"}}, nil)

	view, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/a.jpg", view.Thumbnail)
	assert.Len(t, view.ImageURLs, 2)
}
