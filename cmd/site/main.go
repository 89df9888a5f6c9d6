package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/techclub-site/api/swagger"
	"github.com/noah-isme/techclub-site/internal/handler"
	"github.com/noah-isme/techclub-site/internal/middleware"
	"github.com/noah-isme/techclub-site/internal/repository"
	"github.com/noah-isme/techclub-site/internal/service"
	"github.com/noah-isme/techclub-site/internal/view"
	"github.com/noah-isme/techclub-site/pkg/cache"
	"github.com/noah-isme/techclub-site/pkg/config"
	"github.com/noah-isme/techclub-site/pkg/database"
	"github.com/noah-isme/techclub-site/pkg/export"
	"github.com/noah-isme/techclub-site/pkg/logger"
	corsmiddleware "github.com/noah-isme/techclub-site/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/techclub-site/pkg/middleware/requestid"
)

// @title Tech Club Site API
// @version 1.0.0
// @description Events and projects catalog rendered as cards.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := service.NewMetricsService()

	source, db, err := catalogSource(ctx, cfg)
	if err != nil {
		logr.Fatal("catalog source unavailable", zap.String("source", cfg.Catalog.Source), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	catalog := service.NewCatalogService(source, service.NewCatalogValidator(validator.New()), cfg.Catalog.Strict, metrics, logr)
	if err := catalog.Load(ctx); err != nil {
		logr.Fatal("failed to load catalog", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.PageCache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving pages uncached", zap.Error(err))
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient)
	defer cacheRepo.Close() //nolint:errcheck
	pageCache := service.NewCacheService(cacheRepo, metrics, cfg.PageCache.TTL, logr, redisClient != nil)

	views, err := view.New(cfg.SiteName)
	if err != nil {
		logr.Fatal("failed to parse templates", zap.Error(err))
	}

	pages := service.NewPageService(catalog, service.NewCardRenderer(service.DefaultStagger))
	exports := service.NewExportService(catalog, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metrics))
	}

	handler.SetupRoutes(r, handler.Routes{
		APIPrefix:     cfg.APIPrefix,
		Pages:         handler.NewPageHandler(pages, views, pageCache, catalog, metrics, cfg.SiteName),
		Events:        handler.NewEventHandler(pages, exports),
		Projects:      handler.NewProjectHandler(pages, exports),
		Ops:           handler.NewMetricsHandler(metrics, catalog),
		EnableMetrics: cfg.Metrics.Enabled,
		EnableDocs:    cfg.Docs.Enabled,
	})

	go reloadOnHangup(ctx, catalog, pageCache)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "catalog_source", source.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	handleShutdown(cancel)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

func catalogSource(ctx context.Context, cfg *config.Config) (service.CatalogSource, *sqlx.DB, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		if cfg.Catalog.Path == "" {
			return nil, nil, errors.New("CATALOG_PATH is required for the file source")
		}
		return repository.NewFileCatalogRepository(cfg.Catalog.Path), nil, nil
	case config.CatalogSourcePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresCatalogRepository(db), db, nil
	case config.CatalogSourceEmbedded, "":
		return repository.NewEmbeddedCatalogRepository(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
}

// reloadOnHangup re-reads the catalog on SIGHUP.
func reloadOnHangup(ctx context.Context, catalog *service.CatalogService, pageCache *service.CacheService) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	catalog.ReloadOn(ctx, hup, pageCache)
}

// handleShutdown blocks until SIGINT or SIGTERM.
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
