package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-chi/chi/v5"
)

// CheckoutHandler serves POST /api/checkout and the order lookup
type CheckoutHandler struct {
	checkout services.CheckoutServiceInterface
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout services.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout places an order for the submitted items
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.checkout.Checkout(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CheckoutResponse{
		Success:   true,
		OrderID:   result.OrderID,
		NewUserID: result.NewUserID,
	})
}

// Order handles GET /api/orders/{id}?user_id=
func (h *CheckoutHandler) Order(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, models.ErrOrderNotFound)
		return
	}

	order, err := h.checkout.GetOrder(r.Context(), r.URL.Query().Get("user_id"), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
