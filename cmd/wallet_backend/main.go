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

	"github.com/SscSPs/wallet_api/internal/core/services"
	"github.com/SscSPs/wallet_api/internal/handlers"
	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/SscSPs/wallet_api/internal/platform/config"
	"github.com/SscSPs/wallet_api/internal/platform/jobs"
	"github.com/SscSPs/wallet_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/SscSPs/wallet_api/pkg/database"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Wallet API
// @version 1.0
// @description Personal finance backend: transactions, categories and income/expense totals.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := middleware.NewLogger(os.Getenv("LOG_LEVEL"), os.Stdout)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		logger = middleware.NewLogger(cfg.LogLevel, os.Stdout)
		slog.SetDefault(logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{}, logger)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool, logger)

	if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool, cfg.DBQueryTimeout)
	svc := services.NewServiceContainer(repos, cfg.Categories, services.TokenSettings{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTExpiryDuration,
	})

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	scheduler := jobs.NewScheduler(logger)
	if err := jobs.RegisterTokenCleanup(scheduler, cfg.TokenCleanupSchedule, svc.Token); err != nil {
		return err
	}
	scheduler.Start()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Recovery runs inside the logger so panics are still logged with a status.
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.PosthogMiddleware(analytics))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, svc, analytics, dbPool); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
