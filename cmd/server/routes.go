package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DukeRupert/gnosis/internal/handler"
	"github.com/DukeRupert/gnosis/internal/metrics"
	"github.com/DukeRupert/gnosis/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// pinger is satisfied by *sql.DB.
type pinger interface {
	PingContext(ctx context.Context) error
}

type routerConfig struct {
	catalog     *handler.CatalogHandler
	limitSearch func(http.Handler) http.Handler
	metricsAuth *middleware.MetricsAuthMiddleware
	security    *middleware.SecurityHeadersMiddleware
	logging     *middleware.RequestLoggingMiddleware
	logger      *slog.Logger
	db          pinger
	staticDir   string
}

func newRouter(cfg routerConfig) http.Handler {
	mux := http.NewServeMux()

	// Static files
	staticFS := http.FileServer(http.Dir(cfg.staticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticFS))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := cfg.db.PingContext(ctx); err != nil {
			cfg.logger.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus
	mux.Handle("GET /metrics", cfg.metricsAuth.Handler(promhttp.Handler()))

	// Catalog
	cfg.catalog.RegisterRoutes(mux, cfg.limitSearch)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog/papers", http.StatusSeeOther)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r, cfg.logger)
	})

	return middleware.Stack(
		cfg.logging.Handler,
		metrics.Middleware,
		cfg.security.Handler,
	)(mux)
}
