package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// progressRepository stores per-drink progress records
type progressRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB, logger *zap.Logger) *progressRepository {
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

const progressColumns = `drink_id, status, practice_count, correct_rate, first_viewed_at, last_practiced_at`

// GetByDrinkID returns the progress of a drink, or models.ErrProgressNotFound
func (r *progressRepository) GetByDrinkID(ctx context.Context, drinkID int64) (*models.ProgressRecord, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+progressColumns+` FROM progress WHERE drink_id = ?`, drinkID)

	rec, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: drink %d", models.ErrProgressNotFound, drinkID)
	}
	if err != nil {
		r.logger.Error("failed to query progress", zap.Int64("drink_id", drinkID), zap.Error(err))
		return nil, models.NewStorageError("query progress", err)
	}
	return rec, nil
}

// List returns every progress record ordered by drink ID
func (r *progressRepository) List(ctx context.Context) ([]models.ProgressRecord, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT `+progressColumns+` FROM progress ORDER BY drink_id`)
	if err != nil {
		r.logger.Error("failed to query progress list", zap.Error(err))
		return nil, models.NewStorageError("query progress list", err)
	}
	defer rows.Close()

	records := []models.ProgressRecord{}
	for rows.Next() {
		rec, err := scanProgress(rows)
		if err != nil {
			return nil, models.NewStorageError("scan progress", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate progress", err)
	}

	return records, nil
}

// Insert creates the progress record of a drink
func (r *progressRepository) Insert(ctx context.Context, rec *models.ProgressRecord) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO progress (`+progressColumns+`) VALUES (`+placeholders(6)+`)`,
		rec.DrinkID, string(rec.Status), rec.PracticeCount, rec.CorrectRate, nullTime(rec.FirstViewedAt), nullTime(rec.LastPracticedAt),
	)
	if err != nil {
		r.logger.Error("failed to insert progress", zap.Int64("drink_id", rec.DrinkID), zap.Error(err))
		return models.NewStorageError("insert progress", err)
	}
	return nil
}

// Update overwrites the progress record of a drink
func (r *progressRepository) Update(ctx context.Context, rec *models.ProgressRecord) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE progress SET status = ?, practice_count = ?, correct_rate = ?, first_viewed_at = ?, last_practiced_at = ?
		WHERE drink_id = ?`,
		string(rec.Status), rec.PracticeCount, rec.CorrectRate, nullTime(rec.FirstViewedAt), nullTime(rec.LastPracticedAt), rec.DrinkID,
	)
	if err != nil {
		r.logger.Error("failed to update progress", zap.Int64("drink_id", rec.DrinkID), zap.Error(err))
		return models.NewStorageError("update progress", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(row rowScanner) (*models.ProgressRecord, error) {
	var (
		rec                        models.ProgressRecord
		firstViewed, lastPracticed sql.NullTime
	)
	if err := row.Scan(&rec.DrinkID, &rec.Status, &rec.PracticeCount, &rec.CorrectRate, &firstViewed, &lastPracticed); err != nil {
		return nil, err
	}
	rec.FirstViewedAt = timePtr(firstViewed)
	rec.LastPracticedAt = timePtr(lastPracticed)
	return &rec, nil
}
