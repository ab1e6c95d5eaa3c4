// Package cmd holds the command line entry points of the API server.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schergr/interiordesign/internal/platform/config"
	"github.com/schergr/interiordesign/pkg/database"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interiordesign",
	Short: "Interior design business API",
	Long: `interiordesign serves the REST API used to manage vendors, products,
clients, projects, leads, contracts, tasks and billing records.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger installs a JSON slog logger on stdout as the process default.
func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

// connect loads the configuration and opens the pool, retrying while the
// database is not yet reachable.
func connect(ctx context.Context, logger *slog.Logger) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	policy := database.RetryPolicy{Attempts: cfg.DBConnectRetries, Delay: cfg.DBConnectRetryDelay}
	pool, err := database.NewPgxPoolWithRetry(ctx, cfg.DatabaseURL, policy, logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}
