// Health Insights API
//
// REST API for wellness tracking and rule-driven health insights.
//
//	@title			Health Insights API
//	@version		1.0
//	@description	Track vitals and wellness journal entries, and generate scored, cached health insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			health-records
//	@tag.description	Vitals and journal tracking endpoints
//
//	@tag.name			insights
//	@tag.description	Health insights, trends, and cache endpoints
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pulsewell/health-insights-api/internal/api"
	"github.com/pulsewell/health-insights-api/internal/api/handler"
	"github.com/pulsewell/health-insights-api/internal/config"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/repository"
	"github.com/pulsewell/health-insights-api/internal/seed"
	"github.com/pulsewell/health-insights-api/internal/service"
	"github.com/pulsewell/health-insights-api/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "health-insights-api")
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer shutdownTracer(context.Background())

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.VitalSign{}, &domain.HealthJournalEntry{}, &domain.InsightsCacheRow{}); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migration completed")

	if cfg.Seed {
		logger.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewHealthRecordRepository(db)
	cacheRepo := repository.NewInsightsCacheRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	userService := service.NewUserService(userRepo)
	recordService := service.NewHealthRecordService(recordRepo, userRepo)
	fetcher := service.NewHealthDataFetcher(recordRepo)
	cacheManager := service.NewCacheManager(cacheRepo, cacheTTL, logger)
	insightsService := service.NewInsightsService(
		fetcher, cacheManager, userRepo, logger,
		cfg.AnalysisPeriodDays, cfg.MinDataPoints, cacheTTL,
	)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	recordHandler := handler.NewHealthRecordHandler(recordService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(userHandler, recordHandler, insightsHandler, logger)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
