package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// weakItemRepository stores drinks the trainee got wrong
type weakItemRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWeakItemRepository creates a new weak item repository
func NewWeakItemRepository(db *sql.DB, logger *zap.Logger) *weakItemRepository {
	return &weakItemRepository{
		db:     db,
		logger: logger,
	}
}

const weakItemSelect = `SELECT w.drink_id, d.name, COALESCE(d.short_code, ''), d.category,
	w.wrong_count, w.last_wrong_at, w.last_correct_at, w.resolved
	FROM weak_items w
	JOIN drinks d ON d.id = w.drink_id`

// GetByDrinkID returns the weak item of a drink, or models.ErrWeakItemNotFound
func (r *weakItemRepository) GetByDrinkID(ctx context.Context, drinkID int64) (*models.WeakItemRecord, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, weakItemSelect+` WHERE w.drink_id = ?`, drinkID)

	rec, err := scanWeakItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: drink %d", models.ErrWeakItemNotFound, drinkID)
	}
	if err != nil {
		r.logger.Error("failed to query weak item", zap.Int64("drink_id", drinkID), zap.Error(err))
		return nil, models.NewStorageError("query weak item", err)
	}
	return rec, nil
}

// ListUnresolved returns unresolved weak items in the requested order
func (r *weakItemRepository) ListUnresolved(ctx context.Context, sort models.WeakItemSort) ([]models.WeakItemRecord, error) {
	query := weakItemSelect + ` WHERE w.resolved = 0`
	switch sort {
	case models.WeakItemSortLastWrongDesc:
		query += ` ORDER BY w.last_wrong_at DESC, w.drink_id`
	default:
		query += ` ORDER BY w.wrong_count DESC, w.last_wrong_at DESC, w.drink_id`
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query weak items", zap.Error(err))
		return nil, models.NewStorageError("query weak items", err)
	}
	defer rows.Close()

	items := []models.WeakItemRecord{}
	for rows.Next() {
		rec, err := scanWeakItem(rows)
		if err != nil {
			return nil, models.NewStorageError("scan weak item", err)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate weak items", err)
	}

	return items, nil
}

// UnresolvedDrinkIDs returns the IDs of drinks with an unresolved weak item
func (r *weakItemRepository) UnresolvedDrinkIDs(ctx context.Context) ([]int64, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT drink_id FROM weak_items WHERE resolved = 0 ORDER BY drink_id`)
	if err != nil {
		r.logger.Error("failed to query unresolved weak items", zap.Error(err))
		return nil, models.NewStorageError("query unresolved weak items", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, models.NewStorageError("scan weak item id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate weak item ids", err)
	}

	return ids, nil
}

// Insert creates the weak item of a drink
func (r *weakItemRepository) Insert(ctx context.Context, rec *models.WeakItemRecord) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO weak_items (drink_id, wrong_count, last_wrong_at, last_correct_at, resolved) VALUES (?, ?, ?, ?, ?)`,
		rec.DrinkID, rec.WrongCount, rec.LastWrongAt, nullTime(rec.LastCorrectAt), rec.Resolved,
	)
	if err != nil {
		r.logger.Error("failed to insert weak item", zap.Int64("drink_id", rec.DrinkID), zap.Error(err))
		return models.NewStorageError("insert weak item", err)
	}
	return nil
}

// Update overwrites the weak item of a drink
func (r *weakItemRepository) Update(ctx context.Context, rec *models.WeakItemRecord) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE weak_items SET wrong_count = ?, last_wrong_at = ?, last_correct_at = ?, resolved = ? WHERE drink_id = ?`,
		rec.WrongCount, rec.LastWrongAt, nullTime(rec.LastCorrectAt), rec.Resolved, rec.DrinkID,
	)
	if err != nil {
		r.logger.Error("failed to update weak item", zap.Int64("drink_id", rec.DrinkID), zap.Error(err))
		return models.NewStorageError("update weak item", err)
	}
	return nil
}

// MarkCorrect stamps the last correct answer of a drink. Drinks without a weak item are left untouched.
func (r *weakItemRepository) MarkCorrect(ctx context.Context, drinkID int64, at time.Time) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE weak_items SET last_correct_at = ? WHERE drink_id = ?`, at, drinkID)
	if err != nil {
		r.logger.Error("failed to mark weak item correct", zap.Int64("drink_id", drinkID), zap.Error(err))
		return models.NewStorageError("mark weak item correct", err)
	}
	return nil
}

// Resolve marks the weak item of a drink as resolved, or returns models.ErrWeakItemNotFound
func (r *weakItemRepository) Resolve(ctx context.Context, drinkID int64, at time.Time) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE weak_items SET resolved = 1, last_correct_at = ? WHERE drink_id = ?`, at, drinkID,
	)
	if err != nil {
		r.logger.Error("failed to resolve weak item", zap.Int64("drink_id", drinkID), zap.Error(err))
		return models.NewStorageError("resolve weak item", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStorageError("get affected rows", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: drink %d", models.ErrWeakItemNotFound, drinkID)
	}
	return nil
}

func scanWeakItem(row rowScanner) (*models.WeakItemRecord, error) {
	var (
		rec         models.WeakItemRecord
		lastCorrect sql.NullTime
	)
	if err := row.Scan(&rec.DrinkID, &rec.DrinkName, &rec.ShortCode, &rec.Category,
		&rec.WrongCount, &rec.LastWrongAt, &lastCorrect, &rec.Resolved); err != nil {
		return nil, err
	}
	rec.LastCorrectAt = timePtr(lastCorrect)
	return &rec, nil
}
