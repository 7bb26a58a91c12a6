package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthfirst/portal-api/internal/api/router"
	"github.com/healthfirst/portal-api/internal/auth"
	"github.com/healthfirst/portal-api/internal/availability"
	appconfig "github.com/healthfirst/portal-api/internal/config"
	"github.com/healthfirst/portal-api/internal/observability/metrics"
	"github.com/healthfirst/portal-api/internal/patients"
	"github.com/healthfirst/portal-api/internal/providers"
	"github.com/healthfirst/portal-api/pkg/logging"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting portal API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry shared by the handlers and the /metrics endpoint
	registry := prometheus.NewRegistry()
	portalMetrics := metrics.NewPortalMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Initialize repositories and services
	patientsRepo := patients.NewInMemoryRepository()
	providersRepo := providers.NewInMemoryRepository()
	schedules := availability.NewStore()
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, cfg.LoginDelay)

	// Initialize handlers
	authHandler := auth.NewHandler(authService, logger, portalMetrics)
	patientsHandler := patients.NewHandler(patientsRepo, logger, portalMetrics)
	providersHandler := providers.NewHandler(providersRepo, logger, portalMetrics)
	availabilityHandler := availability.NewHandler(schedules, providersRepo, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:              logger,
		AuthHandler:         authHandler,
		PatientsHandler:     patientsHandler,
		ProvidersHandler:    providersHandler,
		AvailabilityHandler: availabilityHandler,
		MetricsHandler:      metricsHandler,
		JWTSecret:           cfg.JWTSecret,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
