package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startCheckout fills the cart and opens a session, returning its ID.
func startCheckout(t *testing.T, router http.Handler, userID string) string {
	t.Helper()
	headers := asConsumer(userID)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "prod-1", "quantity": 2}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout", nil, headers)
	require.Equal(t, http.StatusCreated, rec.Code)

	var session struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.ID)
	return session.ID
}

func TestCheckout_EmptyCart(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout", nil, asConsumer("user-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}

func TestCheckout_FullFlow(t *testing.T) {
	router := newTestRouter(t)
	headers := asConsumer("user-1")
	id := startCheckout(t, router, "user-1")

	// Pick home delivery with an address.
	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/checkout/"+id+"/delivery",
		map[string]any{"option": "delivery", "address": "123 Kingsway, Maseru"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	// Pick mobile money with a phone number.
	rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/checkout/"+id+"/payment-method",
		map[string]any{"method": "mobile-money", "phone": "+26658000000"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	// Hand off to the gateway.
	rec, env = doRequest(t, router, http.MethodPost, "/api/v1/checkout/"+id+"/pay", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	var redirect struct {
		PaymentLink string `json:"payment_link"`
		Session     struct {
			Status string `json:"status"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &redirect))
	assert.NotEmpty(t, redirect.PaymentLink)
	assert.Equal(t, "awaiting_payment", redirect.Session.Status)

	// Gateway reports success with its transaction id.
	rec, env = doRequest(t, router, http.MethodPost, "/api/v1/checkout/"+id+"/complete",
		map[string]any{"provider_tx_id": "flw_tx_777"}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order struct {
		ID           string `json:"id"`
		Subtotal     int64  `json:"subtotal"`
		Commission   int64  `json:"commission"`
		Total        int64  `json:"total"`
		DeliveryFee  int64  `json:"delivery_fee"`
		ProviderTxID string `json:"provider_tx_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, "flw_tx_777", order.ProviderTxID)
	assert.Equal(t, int64(50), order.Subtotal)
	assert.Equal(t, int64(5), order.Commission)
	assert.Equal(t, int64(50), order.Total)
	assert.Equal(t, int64(50), order.DeliveryFee)

	// The order shows up in history.
	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/orders", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// And the cart is empty again.
	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/cart", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Items []any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestCheckout_PayWithoutAddress(t *testing.T) {
	router := newTestRouter(t)
	headers := asConsumer("user-1")
	id := startCheckout(t, router, "user-1")

	rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/checkout/"+id+"/delivery",
		map[string]any{"option": "delivery"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/checkout/"+id+"/payment-method",
		map[string]any{"method": "card"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout/"+id+"/pay", nil, headers)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_DELIVERY_ADDRESS", env.Error.Code)
}

func TestCheckout_PayWithoutPhone(t *testing.T) {
	router := newTestRouter(t)
	headers := asConsumer("user-1")
	id := startCheckout(t, router, "user-1")

	// Card payments need a contact phone too.
	rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/checkout/"+id+"/payment-method",
		map[string]any{"method": "card"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout/"+id+"/pay", nil, headers)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_PHONE_NUMBER", env.Error.Code)
}

func TestCheckout_CloseReturnsToReview(t *testing.T) {
	router := newTestRouter(t)
	headers := asConsumer("user-1")
	id := startCheckout(t, router, "user-1")

	rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/checkout/"+id+"/payment-method",
		map[string]any{"method": "card", "phone": "+26658000001"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/checkout/"+id+"/pay", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout/"+id+"/close", nil, headers)

	require.Equal(t, http.StatusOK, rec.Code)
	var session struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "reviewing", session.Status)
}

func TestCheckout_ForeignSession(t *testing.T) {
	router := newTestRouter(t)
	id := startCheckout(t, router, "user-1")

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/checkout/"+id, nil, asConsumer("user-2"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
}

func TestAdminRoutes_RoleGated(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/admin/analytics", nil, asConsumer("user-1"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)

	admin := map[string]string{"X-User-ID": "admin-1", "X-User-Role": "admin"}
	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/admin/analytics", nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)
}

func TestFarmerRoutes_RoleGated(t *testing.T) {
	router := newTestRouter(t)
	body := map[string]any{
		"name": "Red Cabbage", "category": "vegetables", "price": 15, "unit": "1 head", "quantity": 10,
	}

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/farmer/products", body, asConsumer("user-1"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	farmer := map[string]string{"X-User-ID": "farmer-2", "X-User-Role": "farmer"}
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/farmer/products", body, farmer)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Nil(t, env.Error)
}

func TestCatalogRoutes_Public(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/products?category=vegetables", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 3, result.TotalCount)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/farms", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/products/prod-999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
