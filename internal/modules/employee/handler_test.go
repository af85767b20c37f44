package employee

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/config"
	"github.com/georgemunganga/awe-electronics/internal/modules/auth"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
	"github.com/georgemunganga/awe-electronics/internal/validation"
)

func newRouter(t *testing.T) (*chi.Mux, *fixture, map[string]string) {
	t.Helper()
	f := newFixture()
	users := user.NewMemoryRepository([]user.User{
		{ID: 1, Username: "customer1", Password: "pass123", Role: user.RoleCustomer},
		{ID: 2, Username: "employee1", Password: "pass456", Role: user.RoleEmployee},
	})
	authSvc := auth.NewService(users, config.AuthConfig{Secret: "test", TokenTTL: time.Hour}, zap.NewNop())

	router := chi.NewRouter()
	NewHandler(f.svc, authSvc, validation.NewRequestValidator()).RegisterRoutes(router)

	tokens := map[string]string{}
	for name, pw := range map[string]string{"customer1": "pass123", "employee1": "pass456"} {
		s, err := authSvc.Login(context.Background(), name, pw)
		require.NoError(t, err)
		tokens[name] = s.Token
	}
	return router, f, tokens
}

func call(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RequiresEmployee(t *testing.T) {
	router, _, tokens := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, call(router, http.MethodGet, "/api/v1/dashboard", "", "").Code)
	assert.Equal(t, http.StatusForbidden, call(router, http.MethodGet, "/api/v1/dashboard", tokens["customer1"], "").Code)
	assert.Equal(t, http.StatusOK, call(router, http.MethodGet, "/api/v1/dashboard", tokens["employee1"], "").Code)
}

func TestHandler_ProductEdits(t *testing.T) {
	router, f, tokens := newRouter(t)
	tok := tokens["employee1"]

	rec := call(router, http.MethodPatch, "/api/v1/products/1/description", tok, `{"description":"Now 80W"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	p, _ := f.products.GetByID(1)
	assert.Equal(t, "Now 80W", p.Description)

	rec = call(router, http.MethodPatch, "/api/v1/products/42/description", tok, `{"description":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"product with id 42 not found"}`, rec.Body.String())

	rec = call(router, http.MethodPost, "/api/v1/products", tok, `{"name":"Breadboard","price":7.5,"stock":40}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":6`)

	rec = call(router, http.MethodPost, "/api/v1/products", tok, `{"price":7.5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = call(router, http.MethodPut, "/api/v1/products/6", tok, `{"id":99,"name":"Breadboard XL","price":9,"stock":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":6`)

	assert.Equal(t, http.StatusNoContent, call(router, http.MethodDelete, "/api/v1/products/6", tok, "").Code)
	assert.Equal(t, http.StatusNotFound, call(router, http.MethodDelete, "/api/v1/products/6", tok, "").Code)
}

func TestHandler_InventoryCSV(t *testing.T) {
	router, _, tokens := newRouter(t)

	rec := call(router, http.MethodGet, "/api/v1/dashboard/inventory.csv", tokens["employee1"], "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,name,category,price,stock,status\n"))
}

func TestHandler_UpdateShipment(t *testing.T) {
	router, _, tokens := newRouter(t)

	rec := call(router, http.MethodPatch, "/api/v1/orders/2/shipment", tokens["employee1"], `{"status":"Delivered"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Delivered"`)

	rec = call(router, http.MethodPatch, "/api/v1/orders/2/shipment", tokens["employee1"], `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
