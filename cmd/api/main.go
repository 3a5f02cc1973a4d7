package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/salestrack/sales-service/internal/api/http"
	"github.com/salestrack/sales-service/internal/api/http/handlers"
	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/cache"
	"github.com/salestrack/sales-service/internal/config"
	"github.com/salestrack/sales-service/internal/events"
	"github.com/salestrack/sales-service/internal/idgen"
	"github.com/salestrack/sales-service/internal/observability"
	"github.com/salestrack/sales-service/internal/persistence"
	"github.com/salestrack/sales-service/internal/repository"
	"github.com/salestrack/sales-service/internal/service"
	"github.com/salestrack/sales-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	storeRepo := repository.NewStoreRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)

	authService, err := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AdminRepo: adminRepo,
		StaffRepo: staffRepo,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}

	dashboardCache := cache.NewRedisCache(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartCacheInvalidationWorker(dispatcher, dashboardCache, logger)

	saleService := service.NewSaleService(saleRepo, dashboardCache, dispatcher, idgen.New(), logger, cfg.Cache.DashboardTTL())
	catalogService := service.NewCatalogService(storeRepo, staffRepo, productRepo)

	authMiddleware := auth.NewMiddleware(authService, authService)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		AdminAuth:      handlers.NewAdminAuthHandler(authService),
		ClientAuth:     handlers.NewClientAuthHandler(authService),
		Sales:          handlers.NewSalesHandler(saleService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
