package main

import (
	"fmt"

	"github.com/baristadrill/backend/internal/logger"
	"github.com/baristadrill/backend/internal/repositories"
	"github.com/baristadrill/backend/internal/services"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all practice history, progress and weak items",
	Long:  "Delete all practice history, progress and weak items. The drink catalog is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		_, db, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer db.Close()
		defer logger.Sync()

		svc := services.NewMaintenanceService(
			repositories.NewMaintenanceRepository(db, logger.Logger),
			logger.Logger,
		)
		if err := svc.ResetAll(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All trainee data has been reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all trainee data")
}
