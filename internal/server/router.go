// Package server assembles the HTTP surface: routes, middleware and assets.
package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"storefront/internal/handlers"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Handlers groups the handlers mounted by NewRouter
type Handlers struct {
	Products *handlers.ProductHandler
	Carts    *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Pages    *handlers.PageHandler
	Health   *handlers.HealthHandler
}

// Options tunes the router. A nil RateLimiter disables rate limiting and a
// nil Static disables /static. TrustProxy lets X-Forwarded-For and
// X-Real-IP replace the peer address.
type Options struct {
	Logger      *slog.Logger
	CORS        middleware.CORSConfig
	RateLimiter *middleware.RateLimiter
	Static      fs.FS
	TrustProxy  bool
}

// NewRouter builds the application handler
func NewRouter(h Handlers, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.ErrorHandlingMiddleware(logger))
	r.Use(middleware.SecurityHeadersMiddleware)
	r.Use(middleware.CORSMiddleware(opts.CORS))

	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)
	// Unknown paths go back to the home page
	r.NotFound(h.Pages.Redirect)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
	}

	r.Get("/health", h.Health.Health)

	r.Get("/", h.Pages.Home)
	r.Get("/index", h.Pages.Home)
	r.Get("/products", h.Pages.Products)
	r.Get("/cart", h.Pages.Cart)

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(middleware.RateLimit(opts.RateLimiter))
		}

		r.Get("/products", h.Products.List)
		r.Get("/products/{id}", h.Products.Get)

		r.Get("/cart", h.Carts.Get)
		r.Post("/cart/add", h.Carts.Add)
		r.Post("/cart/remove", h.Carts.Remove)

		r.Post("/checkout", h.Checkout.Checkout)
		r.Get("/orders/{id}", h.Checkout.Order)
	})

	return otelhttp.NewHandler(r, "storefront",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
