package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/baristadrill/backend/internal/database"
	"github.com/baristadrill/backend/internal/logger"
	"github.com/baristadrill/backend/internal/scheduler"
	"github.com/baristadrill/backend/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, db, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	logger.Logger.Info("Starting Barista Drill API")

	srv := server.NewHTTPServer(cfg, server.NewRouter(cfg, db, logger.Logger))

	// Background database maintenance
	jobs := scheduler.New(logger.Logger)
	if cfg.Maintenance.Schedule != "" {
		err := jobs.Add("database-maintenance", cfg.Maintenance.Schedule, func(ctx context.Context) error {
			return database.Optimize(ctx, db, cfg.Database.Driver)
		})
		if err != nil {
			return err
		}
	}
	jobs.Start()

	serverErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		jobs.Stop(context.Background())
		if err != nil {
			logger.Logger.Error("Server failed to start", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jobs.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Logger.Info("Server exited")
	return nil
}

