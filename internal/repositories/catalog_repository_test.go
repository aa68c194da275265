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

func TestCatalogRepository_ListEligibleDrinks(t *testing.T) {
	columns := []string{"id", "name", "short_code", "category", "sub_category", "step_count", "required_step_count"}

	tests := []struct {
		name          string
		category      models.DrinkCategory
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:     "success all categories",
			category: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "ドリップコーヒー", "DRIP", "hot", "", 3, 3).
					AddRow(11, "コーヒーフラペチーノ", "CF", "frappuccino", "", 4, 4)
				mock.ExpectQuery(`FROM drinks d JOIN steps s ON s.drink_id = d.id WHERE d.practice_enabled = 1 GROUP BY`).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:     "success filtered by category",
			category: models.DrinkCategoryIce,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(7, "アイスコーヒー", "IC", "ice", "", 3, 3)
				mock.ExpectQuery(`WHERE d.practice_enabled = 1 AND d.category = \? GROUP BY`).
					WithArgs("ice").
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:     "empty result",
			category: models.DrinkCategoryFrappuccino,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM drinks d`).WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM drinks d`).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow("not-a-number", "x", "", "hot", "", 1, 1)
				mock.ExpectQuery(`FROM drinks d`).WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger := setupTestDB(t)
			repo := NewCatalogRepository(db, logger)
			tt.setupMock(mock)

			drinks, err := repo.ListEligibleDrinks(context.Background(), tt.category)

			if tt.expectedError {
				var storageErr *models.StorageError
				assert.ErrorAs(t, err, &storageErr)
				assert.Nil(t, drinks)
			} else {
				require.NoError(t, err)
				assert.Len(t, drinks, tt.expectedCount)
				for _, d := range drinks {
					assert.True(t, d.PracticeEnabled)
					assert.Positive(t, d.StepCount)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogRepository_ListSteps(t *testing.T) {
	db, mock, logger := setupTestDB(t)
	repo := NewCatalogRepository(db, logger)

	rows := sqlmock.NewRows([]string{"id", "drink_id", "step_order", "is_required", "description"}).
		AddRow(7, 3, 1, true, "エスプレッソを抽出").
		AddRow(8, 3, 2, true, "ミルクをスチーム").
		AddRow(9, 3, 3, false, "シロップを追加")
	mock.ExpectQuery(`SELECT id, drink_id, step_order, is_required, description FROM steps WHERE drink_id = \? ORDER BY step_order`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	steps, err := repo.ListSteps(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, 1, steps[0].CorrectOrder)
	assert.True(t, steps[1].IsRequired)
	assert.False(t, steps[2].IsRequired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_DrinkExists(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		dbErr         error
		expected      bool
		expectedError bool
	}{
		{name: "known drink", count: 1, expected: true},
		{name: "unknown drink", count: 0, expected: false},
		{name: "database error", dbErr: errors.New("database error"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger := setupTestDB(t)
			repo := NewCatalogRepository(db, logger)

			expect := mock.ExpectQuery(`SELECT COUNT\(\*\) FROM drinks WHERE id = \?`).WithArgs(int64(42))
			if tt.dbErr != nil {
				expect.WillReturnError(tt.dbErr)
			} else {
				expect.WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))
			}

			exists, err := repo.DrinkExists(context.Background(), 42)

			if tt.expectedError {
				var storageErr *models.StorageError
				assert.ErrorAs(t, err, &storageErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, exists)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogRepository_ListModifiers(t *testing.T) {
	tests := []struct {
		name          string
		catalog       models.ModifierCatalog
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:    "success",
			catalog: models.ModifierCatalogFrappuccino,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "modifier_type", "name", "applicable_catalog", "display_order"}).
					AddRow(5, "topping", "チョコチップ追加", "frappuccino", 1).
					AddRow(6, "milk", "豆乳変更", "frappuccino", 2)
				mock.ExpectQuery(`FROM modifiers WHERE applicable_catalog = \?`).
					WithArgs("frappuccino").
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:    "database error",
			catalog: models.ModifierCatalogHotIce,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM modifiers`).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, logger := setupTestDB(t)
			repo := NewCatalogRepository(db, logger)
			tt.setupMock(mock)

			modifiers, err := repo.ListModifiers(context.Background(), tt.catalog)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, modifiers, tt.expectedCount)
				assert.Equal(t, tt.catalog, modifiers[0].ApplicableCatalog)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
