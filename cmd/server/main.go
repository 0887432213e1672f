// Command server runs the marketplace API.
//
// @title        Marketplace API
// @version      1.0
// @description  B2B marketplace: vendor onboarding, product listings, role-based auth, analytics.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openmarket/marketplace-api/internal/api"
	"github.com/openmarket/marketplace-api/internal/core/service"
	"github.com/openmarket/marketplace-api/internal/core/token"
	"github.com/openmarket/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/openmarket/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/openmarket/marketplace-api/internal/infrastructure/db/redis"
	"github.com/openmarket/marketplace-api/internal/infrastructure/places"
	"github.com/openmarket/marketplace-api/internal/infrastructure/queue"
	"github.com/openmarket/marketplace-api/internal/infrastructure/seed"
	"github.com/openmarket/marketplace-api/pkg/logger"
)

const (
	shutdownTimeout  = 10 * time.Second
	analyticsWorkers = 4
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	accounts := mongodb.NewAccountRepository(db)
	vendors := mongodb.NewVendorRepository(db)
	products := mongodb.NewProductRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{accounts, vendors, products, analyticsRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	if err := seed.EnsureAdmin(ctx, accounts, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	// --- Services ---
	tokens := token.NewManager(cfg.JWTSecret, token.DefaultTTL)
	authService := service.NewAuthService(accounts, tokens, log)
	adminService := service.NewAdminService(accounts, vendors, log)
	vendorService := service.NewVendorService(vendors, log)
	productService := service.NewProductService(products, vendors, log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, redisdb.NewEventCounter(rdb), log)
	placesService := service.NewPlacesService(
		places.NewClient(cfg.PlacesAPIKey),
		redisdb.NewPlacesCache(rdb),
		log,
	)

	dispatcher := queue.NewDispatcher(analyticsWorkers, analyticsService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Logger:    log,
		Tokens:    tokens,
		Auth:      authService,
		Admin:     adminService,
		Vendors:   vendorService,
		Products:  productService,
		Analytics: analyticsService,
		Places:    placesService,
		Events:    dispatcher,
		Mongo:     db,
		Redis:     rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	_ = os.Stdout.Sync()
}
