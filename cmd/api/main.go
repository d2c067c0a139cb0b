package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AkshatRaj00/ai-companion-project/internal/adapter/http/router"
	"github.com/AkshatRaj00/ai-companion-project/internal/app"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/logger"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	m := metrics.New()

	// Classifier and cache failures leave the server running in degraded mode
	log.Info("Loading sentiment analysis model", zap.String("provider", cfg.Classifier.Provider))
	components := app.Build(context.Background(), cfg, log, m)
	defer components.Close()

	// Setup router
	r := router.Setup(router.Dependencies{
		PredictionUC:   components.PredictionUC,
		Classifier:     components.Classifier,
		Redis:          components.Redis,
		Metrics:        m,
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting AI Mental Health API server",
			zap.String("address", addr),
			zap.String("health_check", "http://"+addr+"/"),
			zap.String("prediction_endpoint", "http://"+addr+"/predict"),
			zap.Bool("model_loaded", components.Classifier != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
