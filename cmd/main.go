// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tsumitan/internal/config"
	"tsumitan/internal/dictionary"
	"tsumitan/internal/handlers"
	"tsumitan/internal/logger"
	"tsumitan/internal/middleware"
	"tsumitan/internal/repository"
	"tsumitan/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// .env は無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	appLogger := logger.New(os.Stderr, os.Getenv("APP_ENV"), config.Cfg.Log.Level)
	slog.SetDefault(appLogger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database, appLogger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	policy, err := service.NewStatusPolicy(config.Cfg.App)
	if err != nil {
		slog.Error("Invalid app configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	dictClient := dictionary.NewClient(config.Cfg.Dictionary, dictionary.WithLookupObserver(metrics.ObserveDictionaryLookup))
	wordStore := service.NewWordStore(db, repository.NewGormWordRepository(), time.Now)
	reviewService := service.NewReviewService(wordStore, policy)
	searchService := service.NewSearchService(wordStore, dictClient)

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:   appLogger,
		CORS:     config.Cfg.CORS,
		Metrics:  metrics,
		Gatherer: reg,
		DB:       sqlDB,
	},
		handlers.NewWordHandler(searchService, reviewService, appLogger),
		handlers.NewReviewHandler(reviewService, appLogger),
	)

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
