package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/gstats/internal/handlers"
	"github.com/alimgiray/gstats/internal/middleware"
	"github.com/alimgiray/gstats/internal/repositories"
	"github.com/alimgiray/gstats/internal/services"
	"github.com/alimgiray/gstats/internal/themes"
	"github.com/alimgiray/gstats/pkg/config"
	"github.com/alimgiray/gstats/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init()

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Theme table, optionally extended from a TOML file
	var extraThemes map[string]themes.Theme
	if path := config.AppConfig.Themes.File; path != "" {
		loaded, err := themes.LoadFile(path)
		if err != nil {
			logger.Fatalf("Failed to load themes: %v", err)
		}
		extraThemes = loaded
		logger.Infof("Loaded %d themes from %s", len(loaded), path)
	}
	themeTable := themes.NewTable(extraThemes)

	// Initialize dependencies
	githubService, err := services.NewGitHubStatsService(config.AppConfig.GitHub.Token, config.AppConfig.GitHub.APIURL)
	if err != nil {
		logger.Fatalf("Failed to create GitHub client: %v", err)
	}
	if config.AppConfig.GitHub.Token == "" {
		logger.Warnf("GITHUB_TOKEN is not set, requests are subject to the unauthenticated rate limit")
	}
	statsCache := repositories.NewStatsCacheRepository(config.AppConfig.Cache.TTL, nil).
		WithComputeTimeout(config.AppConfig.Server.RequestTimeout)
	statsService := services.NewStatsService(githubService, statsCache)

	// Initialize router
	router := gin.New()

	// Apply middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// Setup routes
	setupRoutes(router, statsService, themeTable)

	// Setup server
	addr := ":" + config.AppConfig.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Infof("Server stopped")
}

func setupRoutes(router *gin.Engine, statsService *services.StatsService, themeTable *themes.Table) {
	// Initialize handlers
	cardHandler := handlers.NewCardHandler(statsService, themeTable, config.AppConfig.Server.RequestTimeout, config.AppConfig.Cache.TTL)
	healthHandler := handlers.NewHealthHandler(statsService)
	notFoundHandler := handlers.NewNotFoundHandler()

	// Card routes
	api := router.Group("/api")
	{
		api.GET("", cardHandler.StatsCard)
		api.GET("/top-langs", cardHandler.TopLanguagesCard)
		api.GET("/streak", cardHandler.StreakCard)
		api.GET("/additional-stats", cardHandler.AdditionalStatsCard)
		api.GET("/themes", cardHandler.Themes)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
