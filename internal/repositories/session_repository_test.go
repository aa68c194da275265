package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/baristadrill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *models.PracticeSession {
	modifier := "ショット追加"
	return &models.PracticeSession{
		Difficulty:           models.DifficultyIntermediate,
		CategoryFilter:       models.CategoryFilterTea,
		StoredCategoryFilter: models.CategoryFilterAll,
		TotalCount:           2,
		StartedAt:            fixedTime,
		Orders: []models.Order{
			{Position: 0, DrinkID: 3, Size: models.SizeTall},
			{Position: 1, DrinkID: 9, Size: models.SizeGrande, Modifier: &modifier},
		},
	}
}

func TestSessionRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedID    int64
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO practice_sessions`).
					WithArgs("intermediate", "all", "tea", 0, 2, fixedTime).
					WillReturnResult(sqlmock.NewResult(42, 1))
				mock.ExpectExec(`INSERT INTO session_orders \(session_id, position, drink_id, size, modifier\) VALUES \(\?, \?, \?, \?, \?\), \(\?, \?, \?, \?, \?\)`).
					WithArgs(int64(42), 0, int64(3), "T", nil, int64(42), 1, int64(9), "G", "ショット追加").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
			expectedID: 42,
		},
		{
			name: "orders insert error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO practice_sessions`).WillReturnResult(sqlmock.NewResult(42, 1))
				mock.ExpectExec(`INSERT INTO session_orders`).WillReturnError(errors.New("constraint failed"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "session insert error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO practice_sessions`).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger := setupTestDB(t)
			repo := NewSessionRepository(db, logger)
			tt.setupMock(mock)

			id, err := repo.Create(context.Background(), newTestSession())

			if tt.expectedError {
				var storageErr *models.StorageError
				assert.ErrorAs(t, err, &storageErr)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_GetByID(t *testing.T) {
	sessionColumns := []string{"id", "difficulty", "category_filter", "requested_filter", "correct_count", "total_count", "duration_sec", "started_at", "finished_at"}
	orderColumns := []string{"position", "drink_id", "name", "short_code", "category", "size", "modifier"}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		validate      func(*testing.T, *models.PracticeSession)
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM practice_sessions WHERE id = \?`).
					WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(sessionColumns).
						AddRow(5, "advanced", "all", "espresso", 7, 10, 185, fixedTime, fixedTime))
				mock.ExpectQuery(`FROM session_orders o JOIN drinks d`).
					WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(orderColumns).
						AddRow(0, 3, "カフェラテ", "L", "hot", "T", nil).
						AddRow(1, 5, "カプチーノ", "CP", "hot", "V", "ショット追加"))
			},
			validate: func(t *testing.T, s *models.PracticeSession) {
				assert.Equal(t, int64(5), s.ID)
				assert.Equal(t, models.DifficultyAdvanced, s.Difficulty)
				assert.Equal(t, models.CategoryFilterAll, s.StoredCategoryFilter)
				assert.Equal(t, models.CategoryFilterEspresso, s.CategoryFilter)
				require.NotNil(t, s.DurationSec)
				assert.Equal(t, 185, *s.DurationSec)
				require.NotNil(t, s.FinishedAt)
				require.Len(t, s.Orders, 2)
				assert.False(t, s.Orders[0].HasModifier())
				assert.True(t, s.Orders[1].HasModifier())
				assert.Equal(t, models.SizeVenti, s.Orders[1].Size)
			},
		},
		{
			name: "unfinished session",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM practice_sessions`).
					WillReturnRows(sqlmock.NewRows(sessionColumns).
						AddRow(5, "beginner", "hot", "hot", 0, 10, nil, fixedTime, nil))
				mock.ExpectQuery(`FROM session_orders`).WillReturnRows(sqlmock.NewRows(orderColumns))
			},
			validate: func(t *testing.T, s *models.PracticeSession) {
				assert.Equal(t, models.CategoryFilterHot, s.CategoryFilter)
				assert.Nil(t, s.DurationSec)
				assert.Nil(t, s.FinishedAt)
				assert.Empty(t, s.Orders)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM practice_sessions`).WillReturnRows(sqlmock.NewRows(sessionColumns))
			},
			expectedError: models.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger := setupTestDB(t)
			repo := NewSessionRepository(db, logger)
			tt.setupMock(mock)

			session, err := repo.GetByID(context.Background(), 5)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				tt.validate(t, session)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_Exists(t *testing.T) {
	db, mock, logger := setupTestDB(t)
	repo := NewSessionRepository(db, logger)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM practice_sessions WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM practice_sessions WHERE id = \?`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Finish(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE practice_sessions SET correct_count = \?, duration_sec = \?, finished_at = \? WHERE id = \?`).
					WithArgs(8, 240, fixedTime, int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE practice_sessions`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: models.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger := setupTestDB(t)
			repo := NewSessionRepository(db, logger)
			tt.setupMock(mock)

			err := repo.Finish(context.Background(), 3, 8, 240, fixedTime)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
