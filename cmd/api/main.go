package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/app"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/auth"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/cache"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/config"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/pdf"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/storage/postgres"
	transporthttp "github.com/seveneightfive/warehouse-414-vintage-finds/internal/transport/http"
	"github.com/seveneightfive/warehouse-414-vintage-finds/migrations"
)

func main() {
	logger := log.Default()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	pool, err := postgres.NewPool(startupCtx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		logger.Fatalf("db ping: %v", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	var productCache app.ProductCache
	var statsCache app.StatsCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := client.Ping(startupCtx).Err(); err != nil {
			logger.Printf("WARN: redis unreachable at %s, running without cache: %v", cfg.Redis.Addr, err)
		} else {
			rc := cache.NewRedis(client, cfg.Redis.CacheTTL, logger)
			productCache, statsCache = rc, rc
			logger.Printf("redis cache enabled at %s", cfg.Redis.Addr)
		}
	}

	clk := clock.NewSystem()

	catalogRepo := postgres.NewCatalogRepository(pool)
	catalogSvc := app.NewCatalogService(catalogRepo, app.WithProductCache(productCache))

	holdRepo := postgres.NewHoldRepository(pool)
	holdSvc := app.NewHoldService(holdRepo, clk, app.WithHoldCaches(productCache, statsCache))

	inquiryRepo := postgres.NewInquiryRepository(pool)
	inquirySvc := app.NewInquiryService(inquiryRepo, clk, app.WithInquiryStatsCache(statsCache))

	adminRepo := postgres.NewAdminRepository(pool)
	adminSvc := app.NewAdminService(adminRepo, clk, app.WithAdminCaches(productCache, statsCache))

	specRepo := postgres.NewSpecSheetRepository(pool)
	renderer := pdf.NewSpecSheetRenderer(cfg.Site.BaseURL, clk)
	specSvc := app.NewSpecSheetService(specRepo, renderer, clk)

	authSvc := auth.NewService(cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL, clk)

	handler := transporthttp.NewRouter(transporthttp.RouterDeps{
		Catalog:       catalogSvc,
		Holds:         holdSvc,
		Inquiries:     inquirySvc,
		SpecSheets:    specSvc,
		HoldReview:    holdSvc,
		InquiryReview: inquirySvc,
		Products:      adminSvc,
		Taxonomy:      adminSvc,
		Stats:         adminSvc,
		Auth:          authSvc,
		CORSOrigins:   cfg.Server.CORSOrigins,
		Logger:        logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Printf("api listening on :%s", cfg.Server.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		logger.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("server shutdown error: %v", err)
	}
	logger.Printf("server stopped")
}
