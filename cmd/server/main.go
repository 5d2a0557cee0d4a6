package main

import (
	"log"
	"net/http"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/handlers"
	"law_office_app_go/middleware"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Client{}, &models.Case{}, &models.CaseDocument{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize document storage (R2 when configured, local otherwise)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files and UI pages
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	e.File("/clients", "static/clients.html")
	e.File("/cases", "static/cases.html")

	// Throttle mutating API calls per client IP
	writeLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 60,
		Window:   time.Minute,
	})

	api := e.Group("/api")
	{
		// Clients
		api.GET("/clients", handlers.GetClients)
		api.POST("/clients", handlers.CreateClient, writeLimiter.Middleware())
		api.PUT("/clients/:id", handlers.UpdateClient, writeLimiter.Middleware())
		api.DELETE("/clients/:id", handlers.DeleteClient, writeLimiter.Middleware())

		// Cases
		api.GET("/cases", handlers.GetCases)
		api.GET("/cases/export", handlers.ExportCases)
		api.POST("/cases", handlers.CreateCase, writeLimiter.Middleware())
		api.PUT("/cases/:id", handlers.UpdateCase, writeLimiter.Middleware())
		api.DELETE("/cases/:id", handlers.DeleteCase, writeLimiter.Middleware())
		api.GET("/cases/:id/report", handlers.CaseReport)

		// Case documents
		api.GET("/cases/:id/documents", handlers.ListCaseDocuments)
		api.POST("/cases/:id/documents", handlers.UploadCaseDocument, writeLimiter.Middleware())
		api.GET("/documents/:id", handlers.DownloadCaseDocument)
		api.DELETE("/documents/:id", handlers.DeleteCaseDocument, writeLimiter.Middleware())

		// Statistics
		api.GET("/stats", handlers.GetStats)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
