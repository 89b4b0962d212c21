package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/internal/database"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/migrate"
	"storefront/internal/repository"
	"storefront/internal/seed"
	"storefront/internal/service"
	transport "storefront/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()
	if cfg.AdminCredentialsAreDefault() {
		log.Warn("admin credentials are the insecure defaults; set ADMIN_USER and ADMIN_PASS")
	}

	db, err := database.Connect(&database.Config{Path: cfg.DBPath}, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close(db, log)

	ctx := context.Background()
	if err := migrate.Run(ctx, db, log, migrate.DefaultOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	repos := repository.New(db)
	if err := seed.Products(ctx, repos, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	// Event bus is optional: no brokers, no publishing.
	var bus service.EventBus
	if len(cfg.KafkaBrokers) > 0 {
		kb := events.NewKafkaEventBus(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kb.Close()
		bus = kb
		log.Info("order events enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic))
	}

	catalogSvc := service.NewCatalogService(repos)
	orderSvc := service.NewOrderService(repos, bus, log)

	router := transport.Router(cfg, catalogSvc, orderSvc, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting storefront HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down storefront HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	log.Info("storefront HTTP server stopped gracefully")
}
