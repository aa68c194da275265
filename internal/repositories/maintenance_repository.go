package repositories

import (
	"context"
	"database/sql"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// resetTables lists every table holding trainee data, children first.
// The seeded catalog is kept.
var resetTables = []string{"attempts", "session_orders", "practice_sessions", "weak_items", "progress"}

// maintenanceRepository performs store-wide maintenance operations
type maintenanceRepository struct {
	db     *sql.DB
	logger *zap.Logger
	tx     *Transactor
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *sql.DB, logger *zap.Logger) *maintenanceRepository {
	return &maintenanceRepository{
		db:     db,
		logger: logger,
		tx:     NewTransactor(db),
	}
}

// DeleteAllTraineeData removes sessions, attempts, progress and weak items in one transaction
func (r *maintenanceRepository) DeleteAllTraineeData(ctx context.Context) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context) error {
		q := conn(ctx, r.db)
		for _, table := range resetTables {
			if _, err := q.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				r.logger.Error("failed to clear table", zap.String("table", table), zap.Error(err))
				return models.NewStorageError("clear "+table, err)
			}
		}
		return nil
	})
}
