// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tsumitan/internal/config"
	"tsumitan/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Pinger はヘルスチェックで疎通を確認する対象 (*sql.DB など)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	Logger   *slog.Logger
	CORS     config.CORSConfig
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer // nil なら /metrics を公開しない
	DB       Pinger
	Timeout  time.Duration
}

// NewRouter はミドルウェアとAPIルートを組み立てます
func NewRouter(cfg RouterConfig, wordHandler *WordHandler, reviewHandler *ReviewHandler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Handler)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.UserContextMiddleware)

		r.Get("/search", wordHandler.Search)

		r.Route("/words", func(r chi.Router) {
			r.Get("/", wordHandler.GetWords)
			r.Get("/{word}", wordHandler.GetWord)
		})

		r.Route("/review", func(r chi.Router) {
			r.Patch("/", reviewHandler.SubmitReview)
			r.Get("/pending", reviewHandler.GetPendingReviews)
			r.Get("/history", reviewHandler.GetReviewHistory)
			r.Get("/stats", reviewHandler.GetStats)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.DB != nil {
			if err := cfg.DB.PingContext(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
