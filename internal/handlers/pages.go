package handlers

import (
	"log/slog"
	"net/http"

	"storefront/web/templates/pages"

	"github.com/a-h/templ"
)

// PageHandler renders the HTML entry points. The pages are shells; product
// and cart data is fetched by the client script from the JSON API.
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home handles / and /index
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.Home())
}

// Products handles /products
func (h *PageHandler) Products(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.Products())
}

// Cart handles /cart
func (h *PageHandler) Cart(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.Cart())
}

// Redirect sends any unmatched path back to the home page
func (h *PageHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page",
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
