package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/adapters/googletasks"
	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/schergr/interiordesign/internal/handlers"
	"github.com/schergr/interiordesign/internal/metrics"
	"github.com/schergr/interiordesign/internal/repositories/database/pgsql"
	"github.com/schergr/interiordesign/internal/utils"
	"github.com/schergr/interiordesign/migrations"
	"github.com/schergr/interiordesign/pkg/database"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate, seed and start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	cfg, pool, err := connect(ctx, logger)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool, logger)

	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(pool)
	if err := services.NewStaticDataService(repos.LookupRepo).InitializeStaticData(ctx); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}

	m := metrics.New(cfg.MetricsPrefix)

	syncer, err := googletasks.NewFromServiceAccountFile(ctx, cfg.GoogleServiceAccountFile, logger)
	if err != nil {
		logger.Warn("Google Tasks sync disabled", slog.String("error", err.Error()))
		syncer = googletasks.NoopSyncer{}
	}
	container := services.NewServiceContainer(cfg, repos, googletasks.WithMetrics(syncer, m))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, "", logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	if err := handlers.RegisterRoutes(r, cfg, container, m, posthogClient, logger); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
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
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
