// @title           Tourism Category Filter API
// @version         1.0
// @description     Filters and ranks tourism categories for a destination and trip.
// @BasePath        /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appLogger "github.com/FACorreiaa/go-tourism-filter/app/logger"
	"github.com/FACorreiaa/go-tourism-filter/app/observability/metrics"
	"github.com/FACorreiaa/go-tourism-filter/app/tracer"
	"github.com/FACorreiaa/go-tourism-filter/config"
	"github.com/FACorreiaa/go-tourism-filter/internal/container"
	"github.com/FACorreiaa/go-tourism-filter/internal/router"
)

const (
	serviceName    = "tourism-filter"
	serviceVersion = "1.0.0"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := appLogger.SetupLogger(cfg.Mode, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	providers, err := tracer.InitTracingAndMetrics(serviceName, serviceVersion)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	c, err := container.NewContainer(ctx, &cfg, logger, metrics.Get())
	if err != nil {
		logger.Error("Failed to initialize container", slog.Any("error", err))
		os.Exit(1)
	}
	defer c.Close()

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      otelhttp.NewHandler(newHTTPHandler(c, logger), serviceName),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		logger.Error("OpenTelemetry shutdown failed", slog.Any("error", err))
	}
	logger.Info("Application shut down complete.")
}

// newHTTPHandler wraps the API router in the server-wide middleware stack.
func newHTTPHandler(c *container.Container, logger *slog.Logger) http.Handler {
	timeout := c.Config.Server.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	mainRouter := router.SetupRouter(&router.Config{
		FilterHandler:      c.FilterHandler,
		DestinationHandler: c.DestinationHandler,
		CatalogHandler:     c.CatalogHandler,
		HealthHandler:      c.HealthHandler,
		Logger:             logger,
		AllowedOrigins:     c.Config.Server.AllowedOrigins,
		RateLimit:          c.Config.Server.RateLimit,
	})

	r := chi.NewMux()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5, "application/json"))
	r.Mount("/", mainRouter)
	return r
}
