package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// catalogRepository reads drinks, steps and modifiers.
//
// The catalog is seeded by migrations and never written by the trainer.
type catalogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB, logger *zap.Logger) *catalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// ListEligibleDrinks returns practice-enabled drinks that own at least one step, ordered by id.
// When category is empty drinks of every category are returned.
func (r *catalogRepository) ListEligibleDrinks(ctx context.Context, category models.DrinkCategory) ([]models.Drink, error) {
	query := `SELECT d.id, d.name, COALESCE(d.short_code, ''), d.category, COALESCE(d.sub_category, ''),
		COUNT(s.id), COALESCE(SUM(CASE WHEN s.is_required = 1 THEN 1 ELSE 0 END), 0)
		FROM drinks d
		JOIN steps s ON s.drink_id = d.id
		WHERE d.practice_enabled = 1`
	var args []any
	if category != "" {
		query += ` AND d.category = ?`
		args = append(args, string(category))
	}
	query += ` GROUP BY d.id, d.name, d.short_code, d.category, d.sub_category ORDER BY d.id`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query eligible drinks", zap.Error(err))
		return nil, models.NewStorageError("query eligible drinks", err)
	}
	defer rows.Close()

	var drinks []models.Drink
	for rows.Next() {
		d := models.Drink{PracticeEnabled: true}
		if err := rows.Scan(&d.ID, &d.Name, &d.ShortCode, &d.Category, &d.SubCategory, &d.StepCount, &d.RequiredStepCount); err != nil {
			return nil, models.NewStorageError("scan drink", err)
		}
		drinks = append(drinks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate drinks", err)
	}

	return drinks, nil
}

// DrinkExists reports whether a drink with the given id is in the catalog
func (r *catalogRepository) DrinkExists(ctx context.Context, drinkID int64) (bool, error) {
	var count int
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM drinks WHERE id = ?`, drinkID).Scan(&count)
	if err != nil {
		r.logger.Error("failed to check drink", zap.Int64("drink_id", drinkID), zap.Error(err))
		return false, models.NewStorageError("check drink", err)
	}
	return count > 0, nil
}

// ListSteps returns the steps of a drink in their correct order
func (r *catalogRepository) ListSteps(ctx context.Context, drinkID int64) ([]models.Step, error) {
	query := `SELECT id, drink_id, step_order, is_required, description FROM steps WHERE drink_id = ? ORDER BY step_order`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, drinkID)
	if err != nil {
		r.logger.Error("failed to query steps", zap.Int64("drink_id", drinkID), zap.Error(err))
		return nil, models.NewStorageError(fmt.Sprintf("query steps of drink %d", drinkID), err)
	}
	defer rows.Close()

	var steps []models.Step
	for rows.Next() {
		var s models.Step
		if err := rows.Scan(&s.ID, &s.DrinkID, &s.CorrectOrder, &s.IsRequired, &s.Description); err != nil {
			return nil, models.NewStorageError("scan step", err)
		}
		steps = append(steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate steps", err)
	}

	return steps, nil
}

// ListModifiers returns the modifiers of a catalog ordered for display
func (r *catalogRepository) ListModifiers(ctx context.Context, catalog models.ModifierCatalog) ([]models.Modifier, error) {
	query := `SELECT id, modifier_type, name, applicable_catalog, display_order FROM modifiers
		WHERE applicable_catalog = ? ORDER BY display_order, id`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, string(catalog))
	if err != nil {
		r.logger.Error("failed to query modifiers", zap.String("catalog", string(catalog)), zap.Error(err))
		return nil, models.NewStorageError("query modifiers", err)
	}
	defer rows.Close()

	var modifiers []models.Modifier
	for rows.Next() {
		var m models.Modifier
		if err := rows.Scan(&m.ID, &m.Type, &m.Name, &m.ApplicableCatalog, &m.DisplayOrder); err != nil {
			return nil, models.NewStorageError("scan modifier", err)
		}
		modifiers = append(modifiers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate modifiers", err)
	}

	return modifiers, nil
}
