package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/baristadrill/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMaintenanceRepository_DeleteAllTraineeData(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, logger := setupTestDB(t)
		repo := NewMaintenanceRepository(db, logger)

		mock.ExpectBegin()
		for _, table := range resetTables {
			mock.ExpectExec(`DELETE FROM ` + table).WillReturnResult(sqlmock.NewResult(0, 3))
		}
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteAllTraineeData(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure rolls back everything", func(t *testing.T) {
		db, mock, logger := setupTestDB(t)
		repo := NewMaintenanceRepository(db, logger)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM attempts`).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM session_orders`).WillReturnError(errors.New("database locked"))
		mock.ExpectRollback()

		err := repo.DeleteAllTraineeData(context.Background())

		var storageErr *models.StorageError
		assert.ErrorAs(t, err, &storageErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
