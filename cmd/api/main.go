package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"greep/adapters/excel"
	"greep/adapters/postgres"
	"greep/adapters/sqlite"
	"greep/app"
	"greep/internal"
	"greep/internal/config"
	"greep/ports"
	"greep/ui"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := internal.NewDefaultLogger()

	var products ports.ProductRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to product database:", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatal("Failed to ensure product schema:", err)
		}
		products = postgres.NewProductRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set; running analyze-only")
	}

	ledger, err := sqlite.OpenLedger(cfg.ImportLog.Path)
	if err != nil {
		log.Fatal("Failed to open import ledger:", err)
	}

	service := app.NewImportService(excel.Source{}, products, ledger, logger)
	server := ui.NewServer(service, cfg, logger)

	log.Println("Starting Greep import API on http://localhost:" + cfg.Server.Port)
	log.Fatal(server.Start())
}
