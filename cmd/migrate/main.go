package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"storefront/internal/config"
	"storefront/internal/database"
)

func main() {
	var (
		statusFlag = flag.Bool("status", false, "Show migration status")
		upFlag     = flag.Bool("up", false, "Run pending migrations")
		downFlag   = flag.Bool("down", false, "Roll back the latest migration")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConnection(context.Background(), database.ConfigFrom(cfg.Database))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db.DB)
	if err != nil {
		log.Fatalf("Failed to initialise migrations: %v", err)
	}

	switch {
	case *statusFlag:
		status, err := migrator.Status()
		if err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
		if !status.Applied {
			fmt.Println("No migrations applied")
			return
		}
		fmt.Printf("Version: %d\n", status.Version)
		if status.Dirty {
			fmt.Println("State:   dirty (a migration failed part way, fix it and force the version)")
		} else {
			fmt.Println("State:   clean")
		}
	case *upFlag:
		if err := migrator.Up(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("All migrations completed successfully!")
	case *downFlag:
		if err := migrator.Down(); err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		fmt.Println("Rolled back one migration")
	default:
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/migrate -status   # Show migration status")
		fmt.Println("  go run ./cmd/migrate -up       # Run pending migrations")
		fmt.Println("  go run ./cmd/migrate -down     # Roll back the latest migration")
		os.Exit(1)
	}
}
