package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// WeakItemRepository is the interface that wraps methods for weak_items table data access
type WeakItemRepository interface {
	// GetByDrinkID returns the weak item of a drink, or models.ErrWeakItemNotFound.
	GetByDrinkID(ctx context.Context, drinkID int64) (*models.WeakItemRecord, error)
	// ListUnresolved returns unresolved weak items ordered by the given sort key.
	ListUnresolved(ctx context.Context, sort models.WeakItemSort) ([]models.WeakItemRecord, error)
	// UnresolvedDrinkIDs returns the drink IDs of every unresolved weak item.
	UnresolvedDrinkIDs(ctx context.Context) ([]int64, error)
	// Insert creates a weak item. The drink must not have one yet.
	Insert(ctx context.Context, rec *models.WeakItemRecord) error
	// Update overwrites an existing weak item.
	Update(ctx context.Context, rec *models.WeakItemRecord) error
	// MarkCorrect stamps the last correct answer of an existing weak item and ignores unknown drinks.
	MarkCorrect(ctx context.Context, drinkID int64, at time.Time) error
	// Resolve marks a weak item as resolved, or returns models.ErrWeakItemNotFound.
	Resolve(ctx context.Context, drinkID int64, at time.Time) error
}

type weakItemService struct {
	repo   WeakItemRepository
	tx     Transactor
	logger *zap.Logger
	now    func() time.Time
}

// NewWeakItemService creates a new weak item service
func NewWeakItemService(repo WeakItemRepository, tx Transactor, logger *zap.Logger) *weakItemService {
	return &weakItemService{
		repo:   repo,
		tx:     tx,
		logger: logger,
		now:    utcNow,
	}
}

// OnAttempt updates the weak item of a drink after a scored attempt.
//
// A wrong answer creates the weak item or counts one more mistake and reopens it.
// A right answer only stamps last_correct_at; resolving stays a manual action.
func (s *weakItemService) OnAttempt(ctx context.Context, drinkID int64, isCorrect bool) error {
	now := s.now()

	if isCorrect {
		if err := s.repo.MarkCorrect(ctx, drinkID, now); err != nil {
			s.logger.Error("failed to mark weak item correct", zap.Int64("drink_id", drinkID), zap.Error(err))
			return fmt.Errorf("failed to update weak item: %w", err)
		}
		return nil
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.repo.GetByDrinkID(ctx, drinkID)
		if errors.Is(err, models.ErrWeakItemNotFound) {
			return s.repo.Insert(ctx, &models.WeakItemRecord{
				DrinkID:     drinkID,
				WrongCount:  1,
				LastWrongAt: now,
			})
		}
		if err != nil {
			return err
		}

		rec.WrongCount++
		rec.LastWrongAt = now
		rec.Resolved = false
		return s.repo.Update(ctx, rec)
	})
	if err != nil {
		s.logger.Error("failed to record wrong answer", zap.Int64("drink_id", drinkID), zap.Error(err))
		return fmt.Errorf("failed to update weak item: %w", err)
	}

	return nil
}

// Resolve marks the weak item of a drink as resolved
func (s *weakItemService) Resolve(ctx context.Context, drinkID int64) error {
	if drinkID <= 0 {
		return fmt.Errorf("%w: invalid drink id %d", models.ErrValidation, drinkID)
	}

	if err := s.repo.Resolve(ctx, drinkID, s.now()); err != nil {
		if !errors.Is(err, models.ErrWeakItemNotFound) {
			s.logger.Error("failed to resolve weak item", zap.Int64("drink_id", drinkID), zap.Error(err))
		}
		return fmt.Errorf("failed to resolve weak item: %w", err)
	}

	s.logger.Info("weak item resolved", zap.Int64("drink_id", drinkID))
	return nil
}

// List returns unresolved weak items.
//
// sortParam must be "wrong_count_desc" (default when empty) or "last_wrong_at_desc".
func (s *weakItemService) List(ctx context.Context, sortParam string) ([]models.WeakItemRecord, error) {
	sort, err := models.ParseWeakItemSort(sortParam)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListUnresolved(ctx, sort)
	if err != nil {
		s.logger.Error("failed to list weak items", zap.Error(err))
		return nil, fmt.Errorf("failed to list weak items: %w", err)
	}

	return items, nil
}

// UnresolvedDrinkIDs returns the drinks the trainee still struggles with
func (s *weakItemService) UnresolvedDrinkIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.repo.UnresolvedDrinkIDs(ctx)
	if err != nil {
		s.logger.Error("failed to list unresolved weak items", zap.Error(err))
		return nil, fmt.Errorf("failed to list unresolved weak items: %w", err)
	}
	return ids, nil
}
