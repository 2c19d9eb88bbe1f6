package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/makka/storefront-api/internal/domain/auth"
	"github.com/makka/storefront-api/internal/domain/model"
	"github.com/makka/storefront-api/internal/mocks"
	"github.com/makka/storefront-api/internal/service"
)

const grantedStoreID = "store-9"

// adminRequest builds a request carrying a store-admin identity, the way the
// guard leaves it in context after a successful evaluation.
func adminRequest(method, target string, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	identity := domainauth.Identity{
		Session: &domainauth.Session{ID: "sess-1", UserID: "user-1"},
		Profile: &domainauth.Profile{ID: "user-1", Role: domainauth.RoleAdmin},
		StoreAdmin: &domainauth.StoreAdmin{
			ID:      "grant-1",
			StoreID: grantedStoreID,
			UserID:  "user-1",
		},
	}
	return r.WithContext(SetIdentityInContext(r.Context(), identity))
}

func TestAdminHandlers_ListProducts_ScopedToGrant(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductRepository(ctrl)
	h := &AdminHandlers{Catalog: service.NewCatalogService(service.CatalogServiceOptions{
		Products: products,
	})}

	products.EXPECT().
		ListWithOptions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.ProductsListOptions) ([]*model.Product, error) {
			assert.Equal(t, grantedStoreID, opts.StoreID)
			assert.False(t, opts.OnlyAvailable, "admin listing includes unavailable products")
			return []*model.Product{{ID: "p1", Name: "Croissant"}}, nil
		})

	rr := httptest.NewRecorder()
	h.ListProducts(rr, adminRequest(http.MethodGet, "/api/admin/products", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	var payload struct {
		Products []*service.ProductView `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Len(t, payload.Products, 1)
	assert.Equal(t, "p1", payload.Products[0].ID)
}

func TestAdminHandlers_ListProducts_WithoutGrant(t *testing.T) {
	t.Parallel()

	h := &AdminHandlers{}
	r := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)

	rr := httptest.NewRecorder()
	h.ListProducts(rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "no_store_grant")
}

func TestAdminHandlers_UpdateOrderStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	h := &AdminHandlers{Orders: service.NewOrderService(service.OrderServiceOptions{
		Orders: orders,
	})}

	orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", grantedStoreID, model.OrderStatusReady).
		Return(&model.Order{ID: "order-1", StoreID: grantedStoreID, Status: model.OrderStatusReady}, nil)

	r := adminRequest(http.MethodPatch, "/api/admin/orders/order-1", `{"status":"ready"}`)
	r.SetPathValue("id", "order-1")

	rr := httptest.NewRecorder()
	h.UpdateOrderStatus(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	var order model.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.Equal(t, model.OrderStatusReady, order.Status)
}

func TestAdminHandlers_UpdateOrderStatus_UnsupportedStatus(t *testing.T) {
	t.Parallel()

	// No repo expectation: a bad status never reaches the service.
	h := &AdminHandlers{}

	r := adminRequest(http.MethodPatch, "/api/admin/orders/order-1", `{"status":"SHIPPED_TO_MARS"}`)
	r.SetPathValue("id", "order-1")

	rr := httptest.NewRecorder()
	h.UpdateOrderStatus(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_status")
}
