package main

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

const (
	catalogModeDatabase = "database"
	catalogModeDemo     = "demo"
)

// connectFunc opens the database. database.NewConnection in production.
type connectFunc func(ctx context.Context, cfg database.Config) (*database.DB, error)

// catalog holds the product and order repositories the server runs on
type catalog struct {
	products services.ProductRepository
	orders   services.OrderRepository
	mode     string
	close    func()
}

// openCatalog connects to the database. An unreachable database is fatal
// unless DEMO_MODE is set, in which case the built-in fixtures and an
// in-memory order log serve instead.
func openCatalog(ctx context.Context, cfg *config.Config, log *slog.Logger, connect connectFunc) (*catalog, error) {
	db, err := connect(ctx, database.ConfigFrom(cfg.Database))
	if err != nil {
		if !cfg.Server.DemoMode {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Warn("database unavailable, demo mode serving built-in catalog", slog.Any("err", err))
		return &catalog{
			products: repositories.NewMemoryProductRepository(repositories.DefaultProducts()),
			orders:   repositories.NewMemoryOrderRepository(),
			mode:     catalogModeDemo,
			close:    func() {},
		}, nil
	}
	log.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("migrations applied")
	}

	return &catalog{
		products: repositories.NewProductRepository(db.DB),
		orders:   repositories.NewOrderRepository(db.DB),
		mode:     catalogModeDatabase,
		close:    func() { db.Close() },
	}, nil
}
