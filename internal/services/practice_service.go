package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/baristadrill/backend/internal/category"
	"github.com/baristadrill/backend/internal/models"
	"go.uber.org/zap"
)

// CatalogRepository is the interface that wraps read access to drinks, steps and modifiers
type CatalogRepository interface {
	// ListEligibleDrinks returns practice-enabled drinks owning at least one step.
	//
	// An empty category returns drinks of every category. Drinks come in a stable discovery order.
	ListEligibleDrinks(ctx context.Context, category models.DrinkCategory) ([]models.Drink, error)
	// DrinkExists reports whether a drink is in the catalog.
	DrinkExists(ctx context.Context, drinkID int64) (bool, error)
	// ListSteps returns the steps of a drink sorted by their correct order.
	ListSteps(ctx context.Context, drinkID int64) ([]models.Step, error)
	// ListModifiers returns the modifiers of a catalog.
	ListModifiers(ctx context.Context, catalog models.ModifierCatalog) ([]models.Modifier, error)
}

// SessionRepository is the interface that wraps methods for practice session data access
type SessionRepository interface {
	// Create stores a session and its orders atomically and returns the new session ID.
	Create(ctx context.Context, session *models.PracticeSession) (int64, error)
	// GetByID returns a session with its orders, or models.ErrSessionNotFound.
	GetByID(ctx context.Context, id int64) (*models.PracticeSession, error)
	// Exists reports whether a session exists.
	Exists(ctx context.Context, id int64) (bool, error)
	// Finish stores the final result of a session, or returns models.ErrSessionNotFound.
	Finish(ctx context.Context, id int64, correctCount, durationSec int, finishedAt time.Time) error
}

// AttemptRepository is the interface that wraps methods for attempt data access
type AttemptRepository interface {
	// Create stores a scored attempt and returns its ID.
	Create(ctx context.Context, attempt *models.Attempt) (int64, error)
	// ListBySession returns the attempts of a session in answering order.
	ListBySession(ctx context.Context, sessionID int64) ([]models.Attempt, error)
}

// ProgressRecorder folds attempt results into per-drink progress
type ProgressRecorder interface {
	RecordAttempt(ctx context.Context, drinkID int64, isCorrect bool) (*models.ProgressRecord, error)
}

// WeakItemTracker keeps the list of drinks the trainee gets wrong
type WeakItemTracker interface {
	OnAttempt(ctx context.Context, drinkID int64, isCorrect bool) error
	UnresolvedDrinkIDs(ctx context.Context) ([]int64, error)
}

// maxRedraws bounds how often one order slot is redrawn when it has no step to quiz
const maxRedraws = 20

type practiceService struct {
	catalog   CatalogRepository
	sessions  SessionRepository
	attempts  AttemptRepository
	progress  ProgressRecorder
	weakItems WeakItemTracker
	tx        Transactor
	rng       RandomSource
	logger    *zap.Logger
	now       func() time.Time
}

// NewPracticeService creates a new practice service
func NewPracticeService(
	catalog CatalogRepository,
	sessions SessionRepository,
	attempts AttemptRepository,
	progress ProgressRecorder,
	weakItems WeakItemTracker,
	tx Transactor,
	rng RandomSource,
	logger *zap.Logger,
) *practiceService {
	return &practiceService{
		catalog:   catalog,
		sessions:  sessions,
		attempts:  attempts,
		progress:  progress,
		weakItems: weakItems,
		tx:        tx,
		rng:       rng,
		logger:    logger,
		now:       utcNow,
	}
}

// CreateSession generates and stores a session of ten orders.
//
// difficultyParam must be "beginner", "intermediate" or "advanced".
// filterParam is "all" (default when empty), a storage category ("hot", "ice", "frappuccino")
// or a UI category ("coffee", "espresso", "tea", "other").
// models.ErrNoEligibleDrinks is returned when the filter leaves nothing to practice.
func (s *practiceService) CreateSession(ctx context.Context, difficultyParam, filterParam string) (*models.PracticeSession, error) {
	difficulty, err := models.ParseDifficulty(difficultyParam)
	if err != nil {
		return nil, err
	}
	filter, err := models.ParseCategoryFilter(filterParam)
	if err != nil {
		return nil, err
	}

	drinks, err := s.catalog.ListEligibleDrinks(ctx, filter.StorageCategory())
	if err != nil {
		s.logger.Error("failed to list eligible drinks", zap.String("filter", string(filter)), zap.Error(err))
		return nil, fmt.Errorf("failed to list eligible drinks: %w", err)
	}
	if !filter.IsNative() && filter != models.CategoryFilterAll {
		drinks = slices.DeleteFunc(drinks, func(d models.Drink) bool {
			return !category.Matches(d, filter)
		})
	}
	if len(drinks) == 0 {
		return nil, fmt.Errorf("%w: category filter %q", models.ErrNoEligibleDrinks, filter)
	}

	partitions := [][]models.Drink{drinks}
	if difficulty == models.DifficultyAdvanced {
		weakIDs, err := s.weakItems.UnresolvedDrinkIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		if len(weakIDs) >= models.WeakItemThreshold {
			partitions = partitionWeak(drinks, weakIDs)
		}
	}

	modifiers, err := s.loadModifiers(ctx, difficulty)
	if err != nil {
		return nil, err
	}

	orders, err := s.drawOrders(partitions, difficulty, modifiers)
	if err != nil {
		return nil, err
	}

	session := &models.PracticeSession{
		Difficulty:           difficulty,
		CategoryFilter:       filter,
		StoredCategoryFilter: filter.Stored(),
		Orders:               orders,
		TotalCount:           len(orders),
		StartedAt:            s.now(),
	}
	id, err := s.sessions.Create(ctx, session)
	if err != nil {
		s.logger.Error("failed to store session", zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.ID = id

	s.logger.Info("practice session created",
		zap.Int64("session_id", id),
		zap.String("difficulty", string(difficulty)),
		zap.String("filter", string(filter)),
	)
	return session, nil
}

// loadModifiers fetches both modifier catalogs unless the difficulty never assigns modifiers
func (s *practiceService) loadModifiers(ctx context.Context, difficulty models.Difficulty) (map[models.ModifierCatalog][]models.Modifier, error) {
	modifiers := make(map[models.ModifierCatalog][]models.Modifier, 2)
	if difficulty.ModifierProbability() == 0 {
		return modifiers, nil
	}

	for _, c := range []models.ModifierCatalog{models.ModifierCatalogHotIce, models.ModifierCatalogFrappuccino} {
		list, err := s.catalog.ListModifiers(ctx, c)
		if err != nil {
			s.logger.Error("failed to list modifiers", zap.String("catalog", string(c)), zap.Error(err))
			return nil, fmt.Errorf("failed to list modifiers: %w", err)
		}
		modifiers[c] = list
	}
	return modifiers, nil
}

// drawOrders picks the session's drinks and dresses each with a size and possibly a modifier.
// A slot that would leave nothing to quiz is redrawn from the whole pool.
func (s *practiceService) drawOrders(
	partitions [][]models.Drink,
	difficulty models.Difficulty,
	modifiers map[models.ModifierCatalog][]models.Modifier,
) ([]models.Order, error) {
	pool := slices.Concat(partitions...)
	picks := drawDrinks(pool, models.SessionLength, s.rng)

	orders := make([]models.Order, 0, len(picks))
	for i, drink := range picks {
		order, ok := s.newOrder(i, drink, difficulty, modifiers)
		if !ok {
			s.logger.Warn("order has no steps to quiz, redrawing", zap.Int64("drink_id", drink.ID), zap.Int("position", i))
		}
		for redraw := 0; !ok && redraw < maxRedraws; redraw++ {
			order, ok = s.newOrder(i, pool[s.rng.IntN(len(pool))], difficulty, modifiers)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no drink with steps to quiz", models.ErrNoEligibleDrinks)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// newOrder builds the order at position; ok is false when the order would have no step to quiz
func (s *practiceService) newOrder(
	position int,
	drink models.Drink,
	difficulty models.Difficulty,
	modifiers map[models.ModifierCatalog][]models.Modifier,
) (order models.Order, ok bool) {
	order = models.Order{
		Position:  position,
		DrinkID:   drink.ID,
		DrinkName: drink.Name,
		ShortCode: drink.ShortCode,
		Category:  drink.Category,
		Size:      models.Sizes[s.rng.IntN(len(models.Sizes))],
	}

	if s.rng.Float64() < difficulty.ModifierProbability() {
		if candidates := modifiers[models.ModifierCatalogFor(drink.Category)]; len(candidates) > 0 {
			name := candidates[s.rng.IntN(len(candidates))].Name
			order.Modifier = &name
		}
	}

	return order, order.HasModifier() || drink.RequiredStepCount > 0
}

// partitionWeak splits the pool into weak drinks and the rest, keeping discovery order in both.
// The partitions are concatenated weak-first before the draw shuffles them together.
func partitionWeak(pool []models.Drink, weakIDs []int64) [][]models.Drink {
	weak := make(map[int64]struct{}, len(weakIDs))
	for _, id := range weakIDs {
		weak[id] = struct{}{}
	}

	var weakDrinks, others []models.Drink
	for _, d := range pool {
		if _, ok := weak[d.ID]; ok {
			weakDrinks = append(weakDrinks, d)
		} else {
			others = append(others, d)
		}
	}
	return [][]models.Drink{weakDrinks, others}
}

// drawDrinks returns exactly n drinks.
//
// Each round shuffles the whole pool and appends it; rounds repeat until n drinks are
// collected, so every drink appears at least once when the pool is smaller than n.
func drawDrinks(pool []models.Drink, n int, rng RandomSource) []models.Drink {
	if len(pool) == 0 {
		return nil
	}

	picks := make([]models.Drink, 0, n+len(pool))
	for len(picks) < n {
		round := slices.Clone(pool)
		shuffle(round, rng)
		picks = append(picks, round...)
	}
	return picks[:n]
}

// GetSession returns a stored session with its orders
func (s *practiceService) GetSession(ctx context.Context, sessionID int64) (*models.PracticeSession, error) {
	if sessionID <= 0 {
		return nil, fmt.Errorf("%w: invalid session id %d", models.ErrValidation, sessionID)
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// GetQuizSteps returns the steps the trainee has to order for a drink, sorted by correct order.
// Callers shuffle them for display.
func (s *practiceService) GetQuizSteps(ctx context.Context, drinkID int64, hasModifier bool) ([]models.StepForQuiz, error) {
	if drinkID <= 0 {
		return nil, fmt.Errorf("%w: invalid drink id %d", models.ErrValidation, drinkID)
	}

	steps, err := s.catalog.ListSteps(ctx, drinkID)
	if err != nil {
		s.logger.Error("failed to list steps", zap.Int64("drink_id", drinkID), zap.Error(err))
		return nil, fmt.Errorf("failed to get quiz steps: %w", err)
	}

	quiz := QuizSteps(steps, hasModifier)
	if len(quiz) == 0 {
		return nil, fmt.Errorf("%w: drink %d", models.ErrNoQuizSteps, drinkID)
	}
	return quiz, nil
}

// SubmitAttempt scores an answer and records it together with its progress and weak item updates.
//
// When req.CorrectAnswer is empty the canonical order is derived from the catalog.
// Either everything is recorded or nothing is.
func (s *practiceService) SubmitAttempt(ctx context.Context, sessionID int64, req models.SubmitAttemptRequest) (*models.SubmitAttemptResult, error) {
	if sessionID <= 0 {
		return nil, fmt.Errorf("%w: invalid session id %d", models.ErrValidation, sessionID)
	}
	if req.DrinkID <= 0 {
		return nil, fmt.Errorf("%w: invalid drink id %d", models.ErrValidation, req.DrinkID)
	}
	size, err := models.ParseSize(req.Size)
	if err != nil {
		return nil, err
	}

	canonical := req.CorrectAnswer
	if len(canonical) > 0 {
		exists, err := s.catalog.DrinkExists(ctx, req.DrinkID)
		if err != nil {
			return nil, fmt.Errorf("failed to submit attempt: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: unknown drink %d", models.ErrValidation, req.DrinkID)
		}
	} else {
		hasModifier := req.Modifier != nil && *req.Modifier != ""
		quiz, err := s.GetQuizSteps(ctx, req.DrinkID, hasModifier)
		if err != nil {
			return nil, err
		}
		canonical = CanonicalOrder(quiz)
	}

	attempt := &models.Attempt{
		SessionID:     sessionID,
		DrinkID:       req.DrinkID,
		Size:          size,
		Modifier:      req.Modifier,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: canonical,
		IsCorrect:     ScoreAttempt(req.UserAnswer, canonical),
		AnsweredAt:    s.now(),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.sessions.Exists(ctx, sessionID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %d", models.ErrSessionNotFound, sessionID)
		}

		if attempt.ID, err = s.attempts.Create(ctx, attempt); err != nil {
			return err
		}
		if _, err := s.progress.RecordAttempt(ctx, attempt.DrinkID, attempt.IsCorrect); err != nil {
			return err
		}
		return s.weakItems.OnAttempt(ctx, attempt.DrinkID, attempt.IsCorrect)
	})
	if err != nil {
		s.logger.Error("failed to submit attempt",
			zap.Int64("session_id", sessionID),
			zap.Int64("drink_id", req.DrinkID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to submit attempt: %w", err)
	}

	return &models.SubmitAttemptResult{IsCorrect: attempt.IsCorrect}, nil
}

// FinishSession stores the final score and duration of a session
func (s *practiceService) FinishSession(ctx context.Context, sessionID int64, req models.FinishSessionRequest) error {
	if sessionID <= 0 {
		return fmt.Errorf("%w: invalid session id %d", models.ErrValidation, sessionID)
	}
	if req.DurationSec < 0 {
		return fmt.Errorf("%w: duration must not be negative", models.ErrValidation)
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	if req.CorrectCount < 0 || req.CorrectCount > session.TotalCount {
		return fmt.Errorf("%w: correct count %d out of range [0, %d]", models.ErrValidation, req.CorrectCount, session.TotalCount)
	}

	if err := s.sessions.Finish(ctx, sessionID, req.CorrectCount, req.DurationSec, s.now()); err != nil {
		s.logger.Error("failed to finish session", zap.Int64("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("failed to finish session: %w", err)
	}

	s.logger.Info("practice session finished",
		zap.Int64("session_id", sessionID),
		zap.Int("correct_count", req.CorrectCount),
		zap.Int("duration_sec", req.DurationSec),
	)
	return nil
}

// GetSessionSummary aggregates a session's result and its attempts per drink category
func (s *practiceService) GetSessionSummary(ctx context.Context, sessionID int64) (*models.SessionSummary, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.attempts.ListBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to list attempts", zap.Int64("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to get session summary: %w", err)
	}

	summary := &models.SessionSummary{
		SessionID:     session.ID,
		CorrectCount:  session.CorrectCount,
		TotalCount:    session.TotalCount,
		Attempts:      attempts,
		CategoryStats: make(map[models.DrinkCategory]models.CategoryStat),
	}
	if session.TotalCount > 0 {
		summary.CorrectRate = float64(session.CorrectCount) / float64(session.TotalCount)
	}
	if session.DurationSec != nil {
		summary.DurationSec = *session.DurationSec
	}

	for _, a := range attempts {
		stat := summary.CategoryStats[a.Category]
		stat.Total++
		if a.IsCorrect {
			stat.Correct++
		}
		summary.CategoryStats[a.Category] = stat
	}
	for c, stat := range summary.CategoryStats {
		stat.Rate = float64(stat.Correct) / float64(stat.Total)
		summary.CategoryStats[c] = stat
	}

	return summary, nil
}
