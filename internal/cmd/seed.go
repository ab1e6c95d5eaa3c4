package cmd

import (
	"os/signal"
	"syscall"

	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/schergr/interiordesign/internal/repositories/database/pgsql"
	"github.com/schergr/interiordesign/pkg/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default lead stages, employees and contract statuses into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := newLogger()
		_, pool, err := connect(ctx, logger)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(pool, logger)

		repos := pgsql.NewRepositoryProvider(pool)
		return services.NewStaticDataService(repos.LookupRepo).InitializeStaticData(ctx)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
