package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/database"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting budget-tracker",
		"environment", cfg.Server.Environment,
		"db_driver", cfg.Database.Driver)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	ledgerService := services.NewLedgerService(transactionRepo, metrics)
	statsService := services.NewStatsService(transactionRepo, metrics)
	evaluator := &services.AlertEvaluator{
		LargeExpenseThreshold: cfg.Alerts.LargeExpenseThreshold,
		MaxLargeExpenseAlerts: cfg.Alerts.MaxLargeExpenseAlerts,
	}
	alertService := services.NewAlertService(transactionRepo, budgetRepo, evaluator, metrics)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo)
	exportService := services.NewExportService(transactionRepo, metrics)
	importService := services.NewImportService(transactionRepo, metrics)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	alertHandler := handlers.NewAlertHandler(alertService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	exportHandler := handlers.NewExportHandler(exportService)
	importHandler := handlers.NewImportHandler(importService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitRPS, cfg.Server.RateBurst))
	e.Use(echomiddleware.Gzip())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/stats/monthly", statsHandler.MonthlyStats)
	api.GET("/stats/analysis", statsHandler.RangeAnalysis)
	api.GET("/alerts", alertHandler.CheckAlerts)
	api.PUT("/budgets", budgetHandler.SetBudget)
	api.GET("/budgets", budgetHandler.ListBudgets)
	api.GET("/budgets/overview", budgetHandler.BudgetOverview)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)
	api.POST("/import", importHandler.ImportCSV)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}

	logger.Info("budget-tracker shutdown complete")
}
