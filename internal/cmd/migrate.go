package cmd

import (
	"os/signal"
	"syscall"

	"github.com/schergr/interiordesign/migrations"
	"github.com/schergr/interiordesign/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := newLogger()
		cfg, pool, err := connect(ctx, logger)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(pool, logger)

		return database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
