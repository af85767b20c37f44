package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/config"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/employee"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/seed"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC) }
	srv := httptest.NewServer(newRouter(config.DefaultConfig(), ds, zap.NewNop(), now))
	t.Cleanup(srv.Close)
	return srv
}

func request(t *testing.T, srv *httptest.Server, method, path, token, body string, out interface{}) int {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	var session struct {
		Token string `json:"token"`
	}
	code := request(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`, &session)
	require.Equal(t, http.StatusOK, code)
	return session.Token
}

func TestPurchasePipelineEndToEnd(t *testing.T) {
	srv := newTestServer(t)
	customerToken := login(t, srv, "customer1", "pass123")
	employeeToken := login(t, srv, "employee1", "pass456")

	// Staff edit is visible to the storefront.
	code := request(t, srv, http.MethodPatch, "/api/v1/products/2/description", employeeToken, `{"description":"Rev3 board"}`, nil)
	require.Equal(t, http.StatusOK, code)
	var p catalog.Product
	require.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/api/v1/products/2", "", "", &p))
	assert.Equal(t, "Rev3 board", p.Description)

	require.Equal(t, http.StatusCreated, request(t, srv, http.MethodPost, "/api/v1/cart/items", customerToken, `{"productId":2,"quantity":2}`, nil))

	var o order.Order
	code = request(t, srv, http.MethodPost, "/api/v1/cart/checkout", customerToken,
		`{"paymentMethod":"Credit Card","shippingAddress":"X"}`, &o)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 3, o.ID, "follows the two seeded orders")
	assert.Equal(t, 91.29, o.Total)
	assert.Equal(t, order.StatusProcessing, o.Status)

	var rc order.Receipt
	require.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/api/v1/receipts/3", customerToken, "", &rc))
	assert.Equal(t, 91.29, rc.Amount)

	require.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/api/v1/products/2", "", "", &p))
	assert.Equal(t, 23, p.Stock)

	var d employee.Dashboard
	require.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/api/v1/dashboard", employeeToken, "", &d))
	assert.Equal(t, 3, d.Statistics.OrdersCount)
	assert.Equal(t, 3, d.RecentOrders[0].ID)
	require.Len(t, d.PendingShipments, 3)
	assert.Equal(t, "Pending", d.PendingShipments[2].Status)
	assert.Equal(t, "Alice Customer", d.PendingShipments[2].CustomerName)
}

func TestUnsupportedPaymentLeavesNoTrace(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "customer1", "pass123")

	var body map[string]string
	code := request(t, srv, http.MethodPost, "/api/v1/orders", token,
		`{"items":[{"productId":2,"price":39.95,"quantity":1}],"paymentMethod":"Pay in Store","shippingAddress":"X"}`, &body)
	assert.Equal(t, http.StatusPaymentRequired, code)
	assert.Equal(t, "payment failed: Payment method 'Pay in Store' is not supported", body["error"])

	var orders []order.Order
	require.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/api/v1/orders", token, "", &orders))
	assert.Len(t, orders, 2)
}
