package handlers

import (
	"net/http"

	"storefront/internal/models"
	"storefront/internal/services"
)

// CartHandler serves the cart API
type CartHandler struct {
	carts services.CartServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts services.CartServiceInterface) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /api/cart?user_id=
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.GetCart(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.carts.AddItem(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.CartResponse{Success: true, Cart: items})
}

// Remove handles POST /api/cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req models.CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.carts.RemoveItem(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.CartResponse{Success: true, Cart: items})
}
