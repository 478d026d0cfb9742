package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/core/services"
	"github.com/SscSPs/bizbooks_app/internal/handlers"
	"github.com/SscSPs/bizbooks_app/internal/middleware"
	"github.com/SscSPs/bizbooks_app/internal/platform/config"
	"github.com/SscSPs/bizbooks_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizbooks_app/internal/utils"
	"github.com/SscSPs/bizbooks_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API. Pending database migrations are applied first unless
--skip-migrations is given.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Bool("skip-migrations", false, "Do not apply pending migrations on startup")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()
	skipMigrations, _ := cmd.Flags().GetBool("skip-migrations")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if !skipMigrations {
		if err := migrateUp(cfg, logger, 0); err != nil {
			return err
		}
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	var events portssvc.EventPublisher
	if posthogClient.IsInitialized() {
		events = posthogClient
	}
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), events)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	if err := handlers.RegisterRoutes(r, cfg, container, posthogClient); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
