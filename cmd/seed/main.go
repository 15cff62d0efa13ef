package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

func main() {
	var (
		source  = flag.String("source", "", "URL of a JSON product feed (default: built-in catalog)")
		timeout = flag.Duration("timeout", 30*time.Second, "Timeout for fetching the feed")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewConnection(ctx, database.ConfigFrom(cfg.Database))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repositories.NewProductRepository(db.DB)

	if *source == "" {
		products := repositories.DefaultProducts()
		if err := repo.UpsertMany(ctx, products); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
		log.Printf("Seeded %d built-in products", len(products))
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	importer := services.NewCatalogImporter(&http.Client{Timeout: *timeout}, repo)
	n, err := importer.Import(fetchCtx, *source)
	if err != nil {
		log.Fatalf("Failed to import catalog from %s: %v", *source, err)
	}
	log.Printf("Imported %d products from %s", n, *source)
}
