package service

import (
	"context"
	"log/slog"

	"github.com/makka/storefront-api/internal/domain/model"
)

// CategoryRepository is the slice of the category repository the service needs.
type CategoryRepository interface {
	Create(ctx context.Context, storeID string, req *model.CreateCategoryRequest) (*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	ListByStore(ctx context.Context, storeID string) ([]*model.Category, error)
	Rename(ctx context.Context, id, storeID string, req model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

// ProductRepository is the slice of the product repository the service needs.
type ProductRepository interface {
	Create(ctx context.Context, storeID string, req *model.CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	ListWithOptions(ctx context.Context, opts model.ProductsListOptions) ([]*model.Product, error)
	Update(ctx context.Context, id, storeID string, req model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Categories CategoryRepository
	Products   ProductRepository
	Images     *ImageResolver
	Logger     *slog.Logger
}

// CatalogService serves the public catalog and the store-admin catalog CRUD.
// Write operations are scoped to the caller's store; the store ID comes from
// the store-admin grant, never from the request payload.
type CatalogService struct {
	categories CategoryRepository
	products   ProductRepository
	images     *ImageResolver
	logger     *slog.Logger
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		categories: opts.Categories,
		products:   opts.Products,
		images:     opts.Images,
		logger:     logger,
	}
}

// ProductView is a product with resolved image URLs for API responses.
type ProductView struct {
	model.Product
	Thumbnail string   `json:"thumbnail"`
	ImageURLs []string `json:"image_urls"`
}

func (s *CatalogService) toView(p *model.Product) *ProductView {
	view := &ProductView{Product: *p}
	if s.images != nil {
		view.Thumbnail = s.images.Thumbnail(p)
		view.ImageURLs = s.images.ResolveAll(p)
	}
	return view
}

// ListCategories returns the store's categories, name ascending.
func (s *CatalogService) ListCategories(ctx context.Context, storeID string) ([]*model.Category, error) {
	return s.categories.ListByStore(ctx, storeID)
}

// CreateCategory creates a category in the admin's store.
func (s *CatalogService) CreateCategory(
	ctx context.Context,
	storeID string,
	req *model.CreateCategoryRequest,
) (*model.Category, error) {
	return s.categories.Create(ctx, storeID, req)
}

// RenameCategory renames a category in the admin's store.
func (s *CatalogService) RenameCategory(
	ctx context.Context,
	id, storeID string,
	req model.UpdateCategoryRequest,
) (*model.Category, error) {
	return s.categories.Rename(ctx, id, storeID, req)
}

// DeleteCategory removes a category in the admin's store.
func (s *CatalogService) DeleteCategory(ctx context.Context, id, storeID string) (bool, error) {
	return s.categories.Delete(ctx, id, storeID)
}

// ListProducts returns products with resolved image URLs. Public callers set
// OnlyAvailable; admin listings include unavailable products.
func (s *CatalogService) ListProducts(ctx context.Context, opts model.ProductsListOptions) ([]*ProductView, error) {
	products, err := s.products.ListWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	views := make([]*ProductView, len(products))
	for i, p := range products {
		views[i] = s.toView(p)
	}
	return views, nil
}

// GetProduct returns one product with resolved image URLs.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(p), nil
}

// CreateProduct creates a product in the admin's store.
func (s *CatalogService) CreateProduct(
	ctx context.Context,
	storeID string,
	req *model.CreateProductRequest,
) (*ProductView, error) {
	p, err := s.products.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "product created", "product_id", p.ID, "store_id", storeID)
	return s.toView(p), nil
}

// UpdateProduct updates a product in the admin's store.
func (s *CatalogService) UpdateProduct(
	ctx context.Context,
	id, storeID string,
	req model.UpdateProductRequest,
) (*ProductView, error) {
	p, err := s.products.Update(ctx, id, storeID, req)
	if err != nil {
		return nil, err
	}
	return s.toView(p), nil
}

// DeleteProduct removes a product in the admin's store.
func (s *CatalogService) DeleteProduct(ctx context.Context, id, storeID string) (bool, error) {
	return s.products.Delete(ctx, id, storeID)
}
