// Command server runs the storefront HTTP API: catalog browsing with
// time-travel reads, stock-safe order placement, and the back-office
// endpoints, all backed by a single SQLite database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-shop-backend/internal/config"
	httpapi "github.com/tbourn/go-shop-backend/internal/http"
	"github.com/tbourn/go-shop-backend/internal/observability"
	"github.com/tbourn/go-shop-backend/internal/repo"
	"github.com/tbourn/go-shop-backend/internal/services"
	"github.com/tbourn/go-shop-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title        Shop Backend API
// @version      1.0
// @description  Storefront catalog with time-versioned pricing and discounts, stock-safe order placement, and back-office management endpoints.
//
// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown error")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("open database failed")
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		log.Fatal().Err(err).Msg("gorm tracing plugin failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}
	if err := repo.SeedLookups(db); err != nil {
		log.Fatal().Err(err).Msg("lookup seeding failed")
	}
	if cfg.SeedDemo {
		if err := seedDemo(ctx, db); err != nil {
			log.Warn().Err(err).Msg("demo seeding failed")
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("storefront api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}

// seedDemo registers a small demo catalog so a fresh database has something to
// browse. Lookup IDs reference the rows inserted by repo.SeedLookups.
func seedDemo(ctx context.Context, db *gorm.DB) error {
	productSvc := services.NewProductService(db)

	var count int64
	if err := db.WithContext(ctx).Table("products").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sub := uint(1)
	demos := []services.RegisterProductInput{
		{
			Detail: services.ProductDetailInput{
				Name:             "Linen Shirt",
				ShortDescription: "Breathable linen, relaxed fit.",
				SubCategoryID:    &sub,
				Price:            12900,
				MinSalesQuantity: 1,
				MaxSalesQuantity: 10,
				IsActivated:      true,
				IsDisplayed:      true,
			},
			Options: []services.RegisterOption{
				{ColorID: 1, SizeID: 2, Quantity: 25},
				{ColorID: 1, SizeID: 3, Quantity: 25},
				{ColorID: 4, SizeID: 3, Quantity: 10},
			},
			Images: []services.RegisterImage{
				{URL: "https://cdn.example.com/linen-shirt/main.jpg", IsMain: true},
			},
		},
		{
			Detail: services.ProductDetailInput{
				Name:             "Canvas Tote",
				ShortDescription: "Heavy canvas with interior pocket.",
				Price:            9800,
				MinSalesQuantity: 1,
				MaxSalesQuantity: 5,
				IsActivated:      true,
				IsDisplayed:      true,
			},
			Options: []services.RegisterOption{
				{ColorID: 6, SizeID: 3, Quantity: 40},
			},
			Images: []services.RegisterImage{
				{URL: "https://cdn.example.com/canvas-tote/main.jpg", IsMain: true},
			},
		},
	}

	for _, in := range demos {
		if _, err := productSvc.Register(ctx, in); err != nil {
			return err
		}
	}
	log.Info().Int("products", len(demos)).Msg("demo catalog seeded")
	return nil
}
