package main

import (
	"database/sql"
	"fmt"

	"github.com/baristadrill/backend/internal/config"
	"github.com/baristadrill/backend/internal/database"
	"github.com/baristadrill/backend/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "trainer",
	Short:         "Barista drink recipe trainer",
	Long:          "Barista Drill: adaptive self-quiz backend for memorizing drink build steps.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command; serve is the default
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DB_PATH env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig reads the environment configuration and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if cfg.Database.Driver != config.DriverSQLite {
			return nil, fmt.Errorf("--db only applies to the %s driver", config.DriverSQLite)
		}
		cfg.Database.Path = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	return cfg, nil
}

// bootstrap loads configuration, initializes the logger and opens a migrated database.
// The caller closes the database and syncs the logger.
func bootstrap(cmd *cobra.Command) (*config.Config, *sql.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(db, cfg.Database.Driver); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Logger.Debug("database ready",
		zap.String("driver", cfg.Database.Driver),
		zap.String("path", cfg.Database.Path),
	)

	return cfg, db, nil
}
