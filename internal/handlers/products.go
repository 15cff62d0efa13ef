package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-chi/chi/v5"
)

// ProductHandler serves the catalog API
type ProductHandler struct {
	catalog services.CatalogServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog services.CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}. Ids that are not integers cannot
// match a product, so they are reported as not found.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, models.ErrProductNotFound)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
