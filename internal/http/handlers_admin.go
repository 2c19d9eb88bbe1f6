package httpx

import (
	"errors"
	"net/http"

	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/service"
)

// AdminHandlers serves the store-admin console. Every operation is scoped to
// the caller's own store: the store ID always comes from the store-admin
// grant on the resolved identity, never from the request payload.
type AdminHandlers struct {
	Stores  *service.StoreService
	Catalog *service.CatalogService
	Orders  *service.OrderService
}

// storeScope extracts the caller's store ID; the guard guarantees a grant is
// present, so a missing one here is a programming error worth a 403.
func storeScope(w http.ResponseWriter, r *http.Request) (string, bool) {
	storeID := AdminStoreID(r.Context())
	if storeID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "no_store_grant",
			Err:     errors.New("no store admin grant"),
		})
		return "", false
	}
	return storeID, true
}

// GetMyStore returns the admin's store.
// GET /api/admin/store.
func (h *AdminHandlers) GetMyStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	store, err := h.Stores.GetByID(r.Context(), storeID)
	if err != nil {
		writeStoreError(w, err, "store_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, store)
}

// GetSettings returns the admin's store settings.
// GET /api/admin/settings.
func (h *AdminHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	settings, err := h.Stores.GetSettings(r.Context(), storeID)
	if err != nil {
		writeStoreError(w, err, "settings_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, settings)
}

// UpdateSettings updates the admin's store settings.
// PUT /api/admin/settings.
func (h *AdminHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	var req model.UpdateStoreSettingsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_settings", Err: err})
		return
	}

	settings, err := h.Stores.UpdateSettings(r.Context(), storeID, req)
	if err != nil {
		writeStoreError(w, err, "settings_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, settings)
}

// ListCategories lists the admin's store categories.
// GET /api/admin/categories.
func (h *AdminHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	categories, err := h.Catalog.ListCategories(r.Context(), storeID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// CreateCategory creates a category in the admin's store.
// POST /api/admin/categories.
func (h *AdminHandlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	var req model.CreateCategoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_category", Err: err})
		return
	}

	category, err := h.Catalog.CreateCategory(r.Context(), storeID, &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, category)
}

// RenameCategory renames a category in the admin's store.
// PUT /api/admin/categories/{id}.
func (h *AdminHandlers) RenameCategory(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	var req model.UpdateCategoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_category", Err: err})
		return
	}

	category, err := h.Catalog.RenameCategory(r.Context(), r.PathValue("id"), storeID, req)
	if err != nil {
		writeStoreError(w, err, "category_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, category)
}

// DeleteCategory removes a category in the admin's store.
// DELETE /api/admin/categories/{id}.
func (h *AdminHandlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	deleted, err := h.Catalog.DeleteCategory(r.Context(), r.PathValue("id"), storeID)
	if err != nil {
		writeStoreError(w, err, "category_not_found")
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "category_not_found",
			Err:     errors.New("category not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListProducts lists the admin's store products, including unavailable ones.
// GET /api/admin/products.
func (h *AdminHandlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	limit, offset := pageParams(r, 50, 200)
	products, err := h.Catalog.ListProducts(r.Context(), model.ProductsListOptions{
		StoreID: storeID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

// CreateProduct creates a product in the admin's store.
// POST /api/admin/products.
func (h *AdminHandlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	var req model.CreateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_product", Err: err})
		return
	}

	product, err := h.Catalog.CreateProduct(r.Context(), storeID, &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, product)
}

// UpdateProduct updates a product in the admin's store.
// PUT /api/admin/products/{id}.
func (h *AdminHandlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	var req model.UpdateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_product", Err: err})
		return
	}

	product, err := h.Catalog.UpdateProduct(r.Context(), r.PathValue("id"), storeID, req)
	if err != nil {
		writeStoreError(w, err, "product_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product in the admin's store.
// DELETE /api/admin/products/{id}.
func (h *AdminHandlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	deleted, err := h.Catalog.DeleteProduct(r.Context(), r.PathValue("id"), storeID)
	if err != nil {
		writeStoreError(w, err, "product_not_found")
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "product_not_found",
			Err:     errors.New("product not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOrders lists the admin's store orders.
// GET /api/admin/orders.
func (h *AdminHandlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	limit, offset := pageParams(r, 20, 100)
	orders, err := h.Orders.ListForStore(r.Context(), storeID, limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// UpdateOrderStatus moves an order through fulfillment in the admin's store.
// PATCH /api/admin/orders/{id}.
func (h *AdminHandlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	storeID, ok := storeScope(w, r)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}
	status, ok := model.ParseOrderStatus(body.Status)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_status",
			Err:     errors.New("unsupported order status"),
		})
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), r.PathValue("id"), storeID, status)
	if err != nil {
		writeStoreError(w, err, "order_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, order)
}
