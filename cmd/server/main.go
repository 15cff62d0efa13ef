package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/cartstore"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/server"
	"storefront/internal/services"
	"storefront/web"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.Server.Env,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := openCatalog(ctx, cfg, log, database.NewConnection)
	if err != nil {
		return err
	}
	defer cat.close()

	carts, closeCarts, err := newCartStore(ctx, cfg.Cart)
	if err != nil {
		return err
	}
	defer closeCarts()
	log.Info("cart store ready", slog.String("backend", cfg.Cart.Backend))

	h := server.Handlers{
		Products: handlers.NewProductHandler(services.NewCatalogService(cat.products)),
		Carts:    handlers.NewCartHandler(services.NewCartService(carts, cat.products)),
		Checkout: handlers.NewCheckoutHandler(services.NewCheckoutService(cat.orders, carts, services.NewUserIDPolicy(), log)),
		Pages:    handlers.NewPageHandler(),
		Health:   handlers.NewHealthHandler(cat.mode, cfg.Cart.Backend),
	}

	g, gctx := errgroup.WithContext(ctx)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		g.Go(func() error {
			limiter.Cleanup(gctx, time.Minute)
			return nil
		})
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: server.NewRouter(h, server.Options{
			Logger:      log,
			CORS:        middleware.DefaultCORSConfig(),
			RateLimiter: limiter,
			Static:      web.Static(),
			TrustProxy:  cfg.Server.TrustProxy,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g.Go(func() error {
		log.Info("server starting", slog.String("addr", srv.Addr), slog.String("catalog", cat.mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newCartStore builds the configured cart backend and its cleanup func
func newCartStore(ctx context.Context, cfg config.CartConfig) (cartstore.Store, func(), error) {
	switch cfg.Backend {
	case config.CartBackendMemory:
		return cartstore.NewMemoryStore(), func() {}, nil
	case config.CartBackendRedis:
		client, err := cartstore.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return cartstore.NewRedisStore(client, cfg.TTL), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cart backend %q", cfg.Backend)
	}
}
