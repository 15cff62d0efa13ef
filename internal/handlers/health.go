package handlers

import "net/http"

// HealthHandler reports liveness and which backends are in use
type HealthHandler struct {
	catalogMode string
	cartBackend string
}

// NewHealthHandler creates a new health handler. catalogMode is "database"
// or "demo".
func NewHealthHandler(catalogMode, cartBackend string) *HealthHandler {
	return &HealthHandler{catalogMode: catalogMode, cartBackend: cartBackend}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"catalog": h.catalogMode,
		"cart":    h.cartBackend,
	})
}
