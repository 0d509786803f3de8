package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/recoleta-app/collector-api/api/swagger"
	"github.com/recoleta-app/collector-api/internal/handler"
	"github.com/recoleta-app/collector-api/internal/middleware"
	"github.com/recoleta-app/collector-api/internal/repository"
	"github.com/recoleta-app/collector-api/internal/service"
	"github.com/recoleta-app/collector-api/pkg/cache"
	"github.com/recoleta-app/collector-api/pkg/config"
	"github.com/recoleta-app/collector-api/pkg/logger"
	corsmiddleware "github.com/recoleta-app/collector-api/pkg/middleware/cors"
	reqidmiddleware "github.com/recoleta-app/collector-api/pkg/middleware/requestid"
)

// @title Recoleta Collector API
// @version 1.0.0
// @description Aggregation and lifecycle backend for the collector operations panel
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching and lifecycle persistence degraded", zap.Error(err))
	}

	upstream := repository.NewUpstream(cfg.Upstream)
	discardRepo := repository.NewDiscardRepository(upstream, logr)
	collectorRepo := repository.NewCollectorRepository(upstream, logr)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	lifecycleRepo := repository.NewLifecycleRepository(redisClient, cfg.Lifecycle.SessionTTL, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metricsService := service.NewMetricsService()
	cacheService := service.NewCacheService(cacheRepo, metricsService, cfg.Dashboard.CacheTTL, logr, redisClient != nil)

	discardService := service.NewDiscardService(service.DiscardServiceParams{
		Repo:        discardRepo,
		Metrics:     metricsService,
		Logger:      logr,
		SnapshotTTL: cfg.Dashboard.CacheTTL,
	})
	reportService := service.NewReportService(service.ReportServiceParams{
		Discards:     discardService,
		Cache:        cacheService,
		Logger:       logr,
		CacheTTL:     cfg.Dashboard.CacheTTL,
		TotalsWindow: cfg.Dashboard.TotalsWindow,
		WeeklyWindow: cfg.Dashboard.WeeklyWindow,
	})
	geoService := service.NewGeoService(logr)
	lifecycleService := service.NewLifecycleService(service.LifecycleServiceParams{
		Store:  lifecycleRepo,
		Logger: logr,
	})
	exportService := service.NewExportService(service.ExportServiceParams{
		Reports: reportService,
		Logger:  logr,
		Enabled: cfg.Exports.Enabled,
	})
	profileService := service.NewProfileService(collectorRepo, logr)

	reportHandler := handler.NewReportHandler(reportService)
	discardHandler := handler.NewDiscardHandler(discardService, geoService)
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService)
	profileHandler := handler.NewProfileHandler(profileService)
	exportHandler := handler.NewExportHandler(exportService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(cfg.JWT.Secret))
	{
		api.GET("/dashboard", reportHandler.Dashboard)
		api.GET("/history", reportHandler.History)

		api.GET("/discards", discardHandler.List)
		api.GET("/discards/markers", discardHandler.Markers)
		api.POST("/discards/:id/advance", lifecycleHandler.Advance)

		api.GET("/lifecycle/log", lifecycleHandler.Log)
		api.DELETE("/lifecycle/log", lifecycleHandler.Reset)

		api.GET("/collectors/me", profileHandler.Me)
		api.PUT("/collectors/:id", profileHandler.Update)

		api.GET("/reports/monthly/export", exportHandler.Monthly)
		api.GET("/metrics/summary", metricsHandler.Summary)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
