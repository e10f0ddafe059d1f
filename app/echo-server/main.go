package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beaconia/app/echo-server/router"
	"beaconia/business/activity"
	"beaconia/business/feedback"
	"beaconia/business/history"
	"beaconia/business/personalize"
	"beaconia/business/recommend"
	"beaconia/internal/middleware"
	"beaconia/internal/repository/gemini"
	psqlRepo "beaconia/internal/repository/postgres"
	redisRepo "beaconia/internal/repository/redis"
	"beaconia/internal/rest"
	"beaconia/pkg/config"
	"beaconia/pkg/database"
	redisdb "beaconia/pkg/database/redis"
	"beaconia/pkg/logger"
	"beaconia/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "env", cfg.App.Environment)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected successfully")

	// Init repo
	activityRepo := psqlRepo.NewActivityRepository(db)
	decisionRepo := psqlRepo.NewDecisionRepository(db)

	var catalog recommend.CatalogRepository = activityRepo
	if cfg.Redis.Enabled() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		client, err := redisdb.NewRedisClient(pingCtx, cfg.Redis)
		cancel()
		if err != nil {
			logger.Warn("Catalog cache disabled", "error", err)
		} else {
			defer redisdb.CloseRedisClient(client)
			catalog = redisRepo.NewCatalogCache(activityRepo, redisRepo.NewClientStore(client), cfg.Redis.CatalogTTL)
			logger.Info("Catalog cache enabled", "ttl", cfg.Redis.CatalogTTL.String())
		}
	}

	var personalizer recommend.Personalizer
	if cfg.AI.Enabled() {
		geminiRepo := gemini.NewGeminiRepository(gemini.GeminiConfig{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
		}, nil)
		personalizer = personalize.NewPersonalizer(geminiRepo, cfg.AI.Timeout)
		logger.Info("AI personalization enabled", "model", cfg.AI.Model)
	} else {
		logger.Info("AI personalization disabled, using deterministic ranking")
	}

	// Init service
	recommendService := recommend.NewRecommendService(catalog, decisionRepo, personalizer, recommend.NewRandomSource(), recommend.DefaultConfig())
	feedbackService := feedback.NewFeedbackService(decisionRepo)
	historyService := history.NewHistoryService(decisionRepo)
	activityService := activity.NewActivityService(activityRepo)

	// Init handler
	timeout := cfg.Server.RequestTimeout
	recommendHandler := rest.NewRecommendHandler(recommendService, timeout)
	feedbackHandler := rest.NewFeedbackHandler(feedbackService, timeout)
	historyHandler := rest.NewHistoryHandler(historyService, timeout)
	activityHandler := rest.NewActivityHandler(activityService, timeout)
	healthHandler := rest.NewHealthHandler()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler(cfg.App.Environment == "production")

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendRoutes(api, recommendHandler, optionalAuth)
	router.SetupFeedbackRoutes(api, feedbackHandler, authRequired)
	router.SetupHistoryRoutes(api, historyHandler, authRequired)
	router.SetupActivityRoutes(api, activityHandler)
	router.SetupOpsRoutes(e, api, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
