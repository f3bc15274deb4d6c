package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DukeRupert/gnosis/internal"
	"github.com/DukeRupert/gnosis/internal/handler"
	"github.com/DukeRupert/gnosis/internal/middleware"
	"github.com/DukeRupert/gnosis/internal/repository"
	"github.com/DukeRupert/gnosis/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database connection
	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Run migrations
	if err := internal.RunMigrations(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database ready")

	// Initialize repository and services
	repo := repository.New(db)
	paperService := service.NewPaperService(repo, logger)
	datasetService := service.NewDatasetService(repo, logger)

	// Initialize handlers and middleware
	catalogHandler := handler.NewCatalogHandler(paperService, datasetService, cfg.PerPage, logger)
	limitSearch, stopLimiter := middleware.NewSearchRateLimit(cfg.SearchRateLimit, logger, handler.ErrorResponder(logger))
	defer stopLimiter()

	router := newRouter(routerConfig{
		catalog:     catalogHandler,
		limitSearch: limitSearch,
		metricsAuth: middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword),
		security:    middleware.NewSecurityHeadersMiddleware(cfg.IsProduction()),
		logging:     middleware.NewRequestLoggingMiddleware(logger),
		logger:      logger,
		db:          db,
		staticDir:   cfg.StaticDir,
	})

	if cfg.MetricsUsername == "" && cfg.MetricsPassword == "" {
		logger.Warn("/metrics is unprotected; set METRICS_USERNAME and METRICS_PASSWORD")
	}

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "per_page", cfg.PerPage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-sigChan:
		logger.Info("Shutdown signal received, initiating graceful shutdown...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
