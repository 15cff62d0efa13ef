package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageHandler(t *testing.T) {
	h := NewPageHandler()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		marker  string
	}{
		{name: "home", handler: h.Home, marker: `id="product-grid"`},
		{name: "products", handler: h.Products, marker: `id="all-products-grid"`},
		{name: "cart", handler: h.Cart, marker: `id="cart-container"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler(rr, httptest.NewRequest("GET", "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), tt.marker)
		})
	}
}

func TestPageHandler_Redirect(t *testing.T) {
	rr := httptest.NewRecorder()
	NewPageHandler().Redirect(rr, httptest.NewRequest("GET", "/anything/else", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler("database", "redis").Health(rr, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","catalog":"database","cart":"redis"}`, rr.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor("validation"))
	assert.Equal(t, http.StatusNotFound, statusFor("not_found"))
	assert.Equal(t, http.StatusInternalServerError, statusFor("upstream_failure"))
}
