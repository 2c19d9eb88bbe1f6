package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/data"
	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/service"
)

// SuperAdminHandlers serves the platform console: store management, user
// management, store-admin grants, and the dashboard stats.
type SuperAdminHandlers struct {
	Console *service.SuperAdminService
	Stores  *service.StoreService
}

// Stats returns the platform dashboard totals.
// GET /api/superadmin/stats.
func (h *SuperAdminHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Console.Stats(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "stats_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// ListStores lists all stores, active or not.
// GET /api/superadmin/stores.
func (h *SuperAdminHandlers) ListStores(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 50, 200)
	stores, err := h.Stores.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"stores": stores})
}

// CreateStore creates a store together with its default settings row.
// POST /api/superadmin/stores.
func (h *SuperAdminHandlers) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStoreRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_store", Err: err})
		return
	}

	store, err := h.Stores.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, data.ErrStoreSlugTaken) {
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "slug_taken", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, store)
}

// UpdateStore updates store fields, including the active toggle.
// PATCH /api/superadmin/stores/{id}.
func (h *SuperAdminHandlers) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStoreRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_store", Err: err})
		return
	}

	store, err := h.Stores.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeStoreError(w, err, "store_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, store)
}

// ListUsers lists user profiles for the console.
// GET /api/superadmin/users.
func (h *SuperAdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 50, 200)
	users, err := h.Console.ListUsers(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// PromoteRole changes a user's global role.
// PATCH /api/superadmin/users/{id}/role.
func (h *SuperAdminHandlers) PromoteRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role string `json:"role"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}
	role, err := domainauth.ParseRole(body.Role)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_role", Err: err})
		return
	}

	profile, err := h.Console.PromoteRole(r.Context(), r.PathValue("id"), role)
	if err != nil {
		writeStoreError(w, err, "user_not_found")
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// AssignStoreAdmin grants store-admin capability to a user.
// POST /api/superadmin/store-admins.
func (h *SuperAdminHandlers) AssignStoreAdmin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StoreID string `json:"store_id"`
		UserID  string `json:"user_id"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}
	if body.StoreID == "" || body.UserID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_grant",
			Err:     errors.New("store_id and user_id are required"),
		})
		return
	}

	grant, err := h.Console.AssignStoreAdmin(r.Context(), body.StoreID, body.UserID)
	if err != nil {
		if errors.Is(err, data.ErrStoreAdminExists) {
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "grant_exists", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "assign_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusCreated, grant)
}

// RemoveStoreAdmin revokes a user's store-admin grant.
// DELETE /api/superadmin/store-admins/{userID}.
func (h *SuperAdminHandlers) RemoveStoreAdmin(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Console.RemoveStoreAdmin(r.Context(), r.PathValue("userID"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "remove_failed", Err: err})
		return
	}
	if !removed {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "grant_not_found",
			Err:     errors.New("store admin grant not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListStoreAdmins lists a store's admin grants.
// GET /api/superadmin/stores/{id}/admins.
func (h *SuperAdminHandlers) ListStoreAdmins(w http.ResponseWriter, r *http.Request) {
	grants, err := h.Console.ListStoreAdmins(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"store_admins": grants})
}

// RecentOrders returns the newest orders across all stores, capped at 100.
// GET /api/superadmin/orders/recent.
func (h *SuperAdminHandlers) RecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Console.RecentOrders(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
