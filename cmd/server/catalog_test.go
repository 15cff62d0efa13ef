package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func unreachable(ctx context.Context, cfg database.Config) (*database.DB, error) {
	return nil, errors.New("dial tcp 10.0.0.1:5432: connect: connection refused")
}

func TestOpenCatalog_UnreachableDatabaseIsFatal(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		t.Run(env, func(t *testing.T) {
			cfg := &config.Config{Server: config.ServerConfig{Env: env}}

			c, err := openCatalog(context.Background(), cfg, discardLogger(), unreachable)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), "failed to connect to database")
			assert.Contains(t, err.Error(), "connection refused")
		})
	}
}

func TestOpenCatalog_DemoModeFallsBackToFixtures(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{DemoMode: true}}

	c, err := openCatalog(context.Background(), cfg, discardLogger(), unreachable)
	require.NoError(t, err)
	defer c.close()

	assert.Equal(t, catalogModeDemo, c.mode)
	assert.IsType(t, &repositories.MemoryProductRepository{}, c.products)
	assert.IsType(t, &repositories.MemoryOrderRepository{}, c.orders)

	products, err := c.products.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, len(repositories.DefaultProducts()))
}

func TestOpenCatalog_Database(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	connect := func(ctx context.Context, cfg database.Config) (*database.DB, error) {
		assert.Equal(t, "shop", cfg.DBName)
		return &database.DB{DB: sqlDB}, nil
	}

	cfg := &config.Config{
		Server:   config.ServerConfig{DemoMode: true},
		Database: config.DatabaseConfig{DBName: "shop"},
	}

	c, err := openCatalog(context.Background(), cfg, discardLogger(), connect)
	require.NoError(t, err)

	assert.Equal(t, catalogModeDatabase, c.mode)
	assert.IsType(t, &repositories.ProductRepository{}, c.products)
	assert.IsType(t, &repositories.OrderRepository{}, c.orders)

	c.close()
	assert.NoError(t, mock.ExpectationsWereMet())
}
