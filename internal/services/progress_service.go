package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressRepository is the interface that wraps methods for progress table data access
type ProgressRepository interface {
	// GetByDrinkID returns the progress record of a drink.
	//
	// models.ErrProgressNotFound is returned when the drink has no record yet.
	GetByDrinkID(ctx context.Context, drinkID int64) (*models.ProgressRecord, error)
	// List returns every stored progress record.
	List(ctx context.Context) ([]models.ProgressRecord, error)
	// Insert creates a progress record. The drink must not have one yet.
	Insert(ctx context.Context, rec *models.ProgressRecord) error
	// Update overwrites an existing progress record.
	Update(ctx context.Context, rec *models.ProgressRecord) error
}

type progressService struct {
	repo   ProgressRepository
	tx     Transactor
	logger *zap.Logger
	now    func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(repo ProgressRepository, tx Transactor, logger *zap.Logger) *progressService {
	return &progressService{
		repo:   repo,
		tx:     tx,
		logger: logger,
		now:    utcNow,
	}
}

// NextProgress computes the progress of a drink after one more attempt.
//
// The correct rate is the exact mean of every recorded result. A missing record and a
// placeholder created when the drink was first viewed both count as no previous attempt.
func NextProgress(drinkID int64, prev *models.ProgressRecord, isCorrect bool, now time.Time) models.ProgressRecord {
	value := 0.0
	if isCorrect {
		value = 1
	}

	next := models.ProgressRecord{
		DrinkID:         drinkID,
		PracticeCount:   1,
		CorrectRate:     value,
		LastPracticedAt: &now,
	}
	if prev != nil {
		next.FirstViewedAt = prev.FirstViewedAt
		if prev.PracticeCount > 0 {
			next.PracticeCount = prev.PracticeCount + 1
			next.CorrectRate = (prev.CorrectRate*float64(prev.PracticeCount) + value) / float64(next.PracticeCount)
		}
	}

	next.Status = models.ProgressStatusLearning
	if next.PracticeCount >= models.MasteryMinAttempts && next.CorrectRate >= models.MasteryMinRate-rateEpsilon {
		next.Status = models.ProgressStatusMastered
	}
	return next
}

// rateEpsilon absorbs floating point error of the running mean
const rateEpsilon = 1e-9

// RecordAttempt folds an attempt result into the drink's progress and returns the new record
func (s *progressService) RecordAttempt(ctx context.Context, drinkID int64, isCorrect bool) (*models.ProgressRecord, error) {
	var next models.ProgressRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		prev, err := s.repo.GetByDrinkID(ctx, drinkID)
		if err != nil && !errors.Is(err, models.ErrProgressNotFound) {
			return err
		}

		next = NextProgress(drinkID, prev, isCorrect, s.now())
		if prev == nil {
			return s.repo.Insert(ctx, &next)
		}
		return s.repo.Update(ctx, &next)
	})
	if err != nil {
		s.logger.Error("failed to record progress", zap.Int64("drink_id", drinkID), zap.Error(err))
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	return &next, nil
}

// RecordFirstViewed stores when the trainee first opened a drink.
// Drinks that already have a record are left untouched.
func (s *progressService) RecordFirstViewed(ctx context.Context, drinkID int64) error {
	if drinkID <= 0 {
		return fmt.Errorf("%w: invalid drink id %d", models.ErrValidation, drinkID)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.repo.GetByDrinkID(ctx, drinkID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, models.ErrProgressNotFound) {
			return err
		}

		now := s.now()
		return s.repo.Insert(ctx, &models.ProgressRecord{
			DrinkID:       drinkID,
			Status:        models.ProgressStatusLearning,
			FirstViewedAt: &now,
		})
	})
	if err != nil {
		s.logger.Error("failed to record first view", zap.Int64("drink_id", drinkID), zap.Error(err))
		return fmt.Errorf("failed to record first view: %w", err)
	}

	return nil
}

// GetProgress returns the progress of a drink; a drink never practiced or viewed is not_started
func (s *progressService) GetProgress(ctx context.Context, drinkID int64) (*models.ProgressRecord, error) {
	if drinkID <= 0 {
		return nil, fmt.Errorf("%w: invalid drink id %d", models.ErrValidation, drinkID)
	}

	rec, err := s.repo.GetByDrinkID(ctx, drinkID)
	if errors.Is(err, models.ErrProgressNotFound) {
		return &models.ProgressRecord{DrinkID: drinkID, Status: models.ProgressStatusNotStarted}, nil
	}
	if err != nil {
		s.logger.Error("failed to get progress", zap.Int64("drink_id", drinkID), zap.Error(err))
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return rec, nil
}

// ListProgress returns every stored progress record
func (s *progressService) ListProgress(ctx context.Context) ([]models.ProgressRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list progress", zap.Error(err))
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return records, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
