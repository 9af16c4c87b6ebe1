package main

// Seed the careers table from the embedded catalog:
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"career-backend/internal/careers"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	catalog, err := careers.LoadEmbeddedCatalog()
	if err != nil {
		log.Printf("failed to load embedded catalog: %v", err)
		os.Exit(1)
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	repo := &careers.PGRepo{DB: sqlDB}
	for _, career := range catalog {
		if err := repo.Upsert(ctx, career); err != nil {
			log.Printf("failed to upsert %s: %v", career.ID, err)
			os.Exit(1)
		}
	}
	log.Printf("seeded %d careers", len(catalog))
}
