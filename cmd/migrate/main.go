package main

import (
	"context"
	"os"

	"storefront/config"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/migrate"
	"storefront/internal/repository"
	"storefront/internal/seed"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Standalone migration runner: creates the schema and seeds the catalog,
// then exits. The server does the same at startup; this exists for
// provisioning a database without starting the process.
func main() {
	_ = godotenv.Load()
	if err := logger.Init(os.Getenv("ENV") == "development"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()
	cfg := config.Load()

	db, err := database.Connect(&database.Config{Path: cfg.DBPath}, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close(db, log)

	ctx := context.Background()
	if err := migrate.Run(ctx, db, log, migrate.DefaultOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	if err := seed.Products(ctx, repository.New(db), log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	log.Info("database ready", zap.String("path", cfg.DBPath))
}
