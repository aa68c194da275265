package main

import (
	"fmt"

	"github.com/baristadrill/backend/internal/database"
	"github.com/baristadrill/backend/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and print the schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer db.Close()
		defer logger.Sync()

		version, dirty, err := database.MigrationVersion(db, cfg.Database.Driver)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
		return nil
	},
}
