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

// sessionRepository stores practice sessions and their orders
type sessionRepository struct {
	db     *sql.DB
	logger *zap.Logger
	tx     *Transactor
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB, logger *zap.Logger) *sessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
		tx:     NewTransactor(db),
	}
}

// Create inserts a session together with its orders in one transaction and returns the new session ID
func (r *sessionRepository) Create(ctx context.Context, session *models.PracticeSession) (int64, error) {
	var id int64
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		q := conn(ctx, r.db)

		result, err := q.ExecContext(ctx,
			`INSERT INTO practice_sessions (difficulty, category_filter, requested_filter, correct_count, total_count, started_at) VALUES (?, ?, ?, ?, ?, ?)`,
			string(session.Difficulty), string(session.StoredCategoryFilter), string(session.CategoryFilter),
			session.CorrectCount, session.TotalCount, session.StartedAt,
		)
		if err != nil {
			r.logger.Error("failed to insert session", zap.Error(err))
			return models.NewStorageError("insert session", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return models.NewStorageError("get session id", err)
		}

		if len(session.Orders) == 0 {
			return nil
		}

		query := `INSERT INTO session_orders (session_id, position, drink_id, size, modifier) VALUES `
		args := make([]any, 0, len(session.Orders)*5)
		for i, o := range session.Orders {
			if i > 0 {
				query += ", "
			}
			query += "(" + placeholders(5) + ")"
			args = append(args, id, o.Position, o.DrinkID, string(o.Size), nullString(o.Modifier))
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			r.logger.Error("failed to insert session orders", zap.Int64("session_id", id), zap.Error(err))
			return models.NewStorageError("insert session orders", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID returns a session with its orders, or models.ErrSessionNotFound.
// Sessions created before requested_filter existed read back their stored filter as the requested one.
func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*models.PracticeSession, error) {
	q := conn(ctx, r.db)

	var (
		s           models.PracticeSession
		durationSec sql.NullInt64
		finishedAt  sql.NullTime
	)
	err := q.QueryRowContext(ctx,
		`SELECT id, difficulty, category_filter, COALESCE(requested_filter, category_filter), correct_count, total_count, duration_sec, started_at, finished_at
		FROM practice_sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.Difficulty, &s.StoredCategoryFilter, &s.CategoryFilter, &s.CorrectCount, &s.TotalCount, &durationSec, &s.StartedAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", models.ErrSessionNotFound, id)
	}
	if err != nil {
		r.logger.Error("failed to query session", zap.Int64("session_id", id), zap.Error(err))
		return nil, models.NewStorageError("query session", err)
	}
	if durationSec.Valid {
		d := int(durationSec.Int64)
		s.DurationSec = &d
	}
	s.FinishedAt = timePtr(finishedAt)

	rows, err := q.QueryContext(ctx,
		`SELECT o.position, o.drink_id, d.name, COALESCE(d.short_code, ''), d.category, o.size, o.modifier
		FROM session_orders o
		JOIN drinks d ON d.id = o.drink_id
		WHERE o.session_id = ?
		ORDER BY o.position`, id,
	)
	if err != nil {
		r.logger.Error("failed to query session orders", zap.Int64("session_id", id), zap.Error(err))
		return nil, models.NewStorageError("query session orders", err)
	}
	defer rows.Close()

	s.Orders = make([]models.Order, 0, s.TotalCount)
	for rows.Next() {
		var (
			o        models.Order
			modifier sql.NullString
		)
		if err := rows.Scan(&o.Position, &o.DrinkID, &o.DrinkName, &o.ShortCode, &o.Category, &o.Size, &modifier); err != nil {
			return nil, models.NewStorageError("scan session order", err)
		}
		if modifier.Valid {
			o.Modifier = &modifier.String
		}
		s.Orders = append(s.Orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate session orders", err)
	}

	return &s, nil
}

// Exists reports whether a session with the given ID exists
func (r *sessionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM practice_sessions WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, models.NewStorageError("check session", err)
	}
	return n > 0, nil
}

// Finish records the final result of a session, or returns models.ErrSessionNotFound
func (r *sessionRepository) Finish(ctx context.Context, id int64, correctCount, durationSec int, finishedAt time.Time) error {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE practice_sessions SET correct_count = ?, duration_sec = ?, finished_at = ? WHERE id = ?`,
		correctCount, durationSec, finishedAt, id,
	)
	if err != nil {
		r.logger.Error("failed to finish session", zap.Int64("session_id", id), zap.Error(err))
		return models.NewStorageError("finish session", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStorageError("get affected rows", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", models.ErrSessionNotFound, id)
	}
	return nil
}
