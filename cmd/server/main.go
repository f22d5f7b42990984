package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alimgiray/gitfolio/internal/handlers"
	"github.com/alimgiray/gitfolio/internal/middleware"
	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/internal/store"
	"github.com/alimgiray/gitfolio/pkg/config"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.GetLogger().Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize dependencies
	viewState := store.NewViewStateStore()
	githubService := services.NewGitHubService(config.AppConfig.GitHub.Token)
	portfolioService := services.NewPortfolioService(githubService)
	statsService := services.NewStatsService()
	projectService := services.NewProjectService(
		config.AppConfig.Portfolio.MaxProjects,
		config.AppConfig.Portfolio.StaggerDelayMS,
	)
	filterService := services.NewFilterService()
	exportService := services.NewExportService()
	resumeService := services.NewResumeService()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, portfolioService, statsService, projectService, filterService, exportService, resumeService, viewState)
	loadTemplates(router)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GetLogger().Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	logger.Info("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	portfolioService *services.PortfolioService,
	statsService *services.StatsService,
	projectService *services.ProjectService,
	filterService *services.FilterService,
	exportService *services.ExportService,
	resumeService *services.ResumeService,
	viewState *store.ViewStateStore,
) {
	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(
		portfolioService, statsService, projectService, filterService,
		viewState, config.AppConfig.GitHub.Username,
	)
	projectsHandler := handlers.NewProjectsHandler(projectService, filterService, exportService, viewState)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	healthHandler := handlers.NewHealthHandler()

	// Portfolio page and fragments
	router.GET("/", portfolioHandler.Index)
	router.GET("/portfolio", portfolioHandler.Load)

	// Project grid
	projects := router.Group("/projects")
	{
		projects.GET("", projectsHandler.Filter)
		projects.GET("/export", projectsHandler.Export)
	}

	// Resume upload and download
	router.POST("/resume", resumeHandler.Upload)
	router.GET("/resume/:id", resumeHandler.Download)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		logger.GetLogger().Fatalf("Couldn't get working directory: %v", err)
	}

	router.LoadHTMLGlob(filepath.Join(cwd, "web/templates/*.html"))
}
