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

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jcoelho/carteira/config"
	_ "github.com/jcoelho/carteira/docs"
	"github.com/jcoelho/carteira/internal/cache"
	"github.com/jcoelho/carteira/internal/database"
	"github.com/jcoelho/carteira/internal/handlers"
	"github.com/jcoelho/carteira/internal/marketdata"
	"github.com/jcoelho/carteira/internal/middleware"
	"github.com/jcoelho/carteira/internal/repository"
	"github.com/jcoelho/carteira/internal/services"
)

//	@title			carteira API
//	@version		1.0
//	@description	Brokerage position reconciliation and valuation service.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize market-data gateway client
	mdClient := marketdata.NewClient(cfg.MarketDataURL)

	// Initialize caches
	memCache := cache.NewMemoryCache(5*time.Minute, 15*time.Minute)

	// Initialize repositories
	txRepo := repository.NewTransactionRepository(db.Pool)
	assetRepo := repository.NewAssetRepository(db.Pool)
	metricsRepo := repository.NewMetricsRepository(db.Pool)

	// Initialize services
	reconSvc := services.NewReconciliationService(txRepo, assetRepo, metricsRepo, mdClient, memCache)
	importSvc := services.NewImportService(txRepo, assetRepo)

	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(reconSvc)
	importHandler := handlers.NewImportHandler(importSvc)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.ValidateUser())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Portfolio routes
	router.GET("/portfolios/:id/positions", portfolioHandler.Positions)
	router.GET("/portfolios/:id/assets/:asset_id/history", portfolioHandler.History)
	router.POST("/portfolios/:id/transactions/import", middleware.RequireAuth(), importHandler.ImportTransactions)

	// API docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
