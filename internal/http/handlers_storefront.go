package httpx

import (
	"errors"
	"net/http"

	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/service"
)

// StorefrontHandlers serves the public storefront surface plus the
// authenticated customer's orders.
type StorefrontHandlers struct {
	Stores  *service.StoreService
	Catalog *service.CatalogService
	Orders  *service.OrderService
}

// GetStore returns the active store for a slug.
// GET /api/stores/{slug}.
func (h *StorefrontHandlers) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.Stores.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeStoreError(w, err, "store_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, store)
}

// ListCategories returns a store's categories, name ascending.
// GET /api/stores/{slug}/categories.
func (h *StorefrontHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	store, err := h.Stores.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeStoreError(w, err, "store_not_found")
		return
	}

	categories, err := h.Catalog.ListCategories(r.Context(), store.ID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// ListProducts returns a store's available products, optionally filtered by
// category.
// GET /api/stores/{slug}/products?category_id=<id>.
func (h *StorefrontHandlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	store, err := h.Stores.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeStoreError(w, err, "store_not_found")
		return
	}

	limit, offset := pageParams(r, 50, 200)
	opts := model.ProductsListOptions{
		StoreID:       store.ID,
		OnlyAvailable: true,
		Limit:         limit,
		Offset:        offset,
	}
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		opts.CategoryID = &categoryID
	}

	products, err := h.Catalog.ListProducts(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

// GetProduct returns one product with resolved image URLs.
// GET /api/products/{id}.
func (h *StorefrontHandlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "product_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// CreateOrder places an order for the signed-in customer.
// POST /api/orders.
func (h *StorefrontHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_order", Err: err})
		return
	}

	order, err := h.Orders.Create(r.Context(), SessionUserID(r.Context()), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "order_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, order)
}

// ListMyOrders lists the signed-in customer's orders.
// GET /api/orders.
func (h *StorefrontHandlers) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 20, 100)
	orders, err := h.Orders.ListForCustomer(r.Context(), SessionUserID(r.Context()), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// writeStoreError maps repository not-found sentinels to 404, everything else to 500.
func writeStoreError(w http.ResponseWriter, err error, notFoundCode string) {
	if service.IsNotFound(err) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: notFoundCode, Err: err})
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: "internal_error",
		Err:     errors.New("internal error"),
	})
}
