package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// attemptRepository stores scored attempts
type attemptRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *sql.DB, logger *zap.Logger) *attemptRepository {
	return &attemptRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts an attempt and returns its ID.
// Answers are stored as JSON arrays of step IDs.
func (r *attemptRepository) Create(ctx context.Context, attempt *models.Attempt) (int64, error) {
	userAnswer, err := json.Marshal(orEmpty(attempt.UserAnswer))
	if err != nil {
		return 0, models.NewStorageError("encode user answer", err)
	}
	correctAnswer, err := json.Marshal(orEmpty(attempt.CorrectAnswer))
	if err != nil {
		return 0, models.NewStorageError("encode correct answer", err)
	}

	result, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO attempts (session_id, drink_id, size, modifier, is_correct, user_answer_json, correct_answer_json, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		attempt.SessionID, attempt.DrinkID, string(attempt.Size), nullString(attempt.Modifier), attempt.IsCorrect,
		string(userAnswer), string(correctAnswer), attempt.AnsweredAt,
	)
	if err != nil {
		r.logger.Error("failed to insert attempt",
			zap.Int64("session_id", attempt.SessionID),
			zap.Int64("drink_id", attempt.DrinkID),
			zap.Error(err),
		)
		return 0, models.NewStorageError("insert attempt", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, models.NewStorageError("get attempt id", err)
	}
	return id, nil
}

// ListBySession returns the attempts of a session in answering order, each with its drink's category
func (r *attemptRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.Attempt, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		`SELECT a.id, a.session_id, a.drink_id, d.category, a.size, a.modifier, a.is_correct,
		a.user_answer_json, a.correct_answer_json, a.answered_at
		FROM attempts a
		JOIN drinks d ON d.id = a.drink_id
		WHERE a.session_id = ?
		ORDER BY a.id`, sessionID,
	)
	if err != nil {
		r.logger.Error("failed to query attempts", zap.Int64("session_id", sessionID), zap.Error(err))
		return nil, models.NewStorageError("query attempts", err)
	}
	defer rows.Close()

	attempts := []models.Attempt{}
	for rows.Next() {
		var (
			a                         models.Attempt
			modifier                  sql.NullString
			userAnswer, correctAnswer string
		)
		if err := rows.Scan(&a.ID, &a.SessionID, &a.DrinkID, &a.Category, &a.Size, &modifier, &a.IsCorrect,
			&userAnswer, &correctAnswer, &a.AnsweredAt); err != nil {
			return nil, models.NewStorageError("scan attempt", err)
		}
		if modifier.Valid {
			a.Modifier = &modifier.String
		}
		if err := json.Unmarshal([]byte(userAnswer), &a.UserAnswer); err != nil {
			return nil, models.NewStorageError("decode user answer", err)
		}
		if err := json.Unmarshal([]byte(correctAnswer), &a.CorrectAnswer); err != nil {
			return nil, models.NewStorageError("decode correct answer", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("iterate attempts", err)
	}

	return attempts, nil
}

func orEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
