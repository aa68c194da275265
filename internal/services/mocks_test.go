package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/baristadrill/backend/internal/models"
)

// fakeTransactor runs fn directly and counts the transactions it was asked for
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// mockCatalogRepository is a mock implementation of CatalogRepository
type mockCatalogRepository struct {
	drinks    []models.Drink
	steps     map[int64][]models.Step
	modifiers map[models.ModifierCatalog][]models.Modifier
	err       error

	requestedCategory models.DrinkCategory
}

func (m *mockCatalogRepository) ListEligibleDrinks(ctx context.Context, category models.DrinkCategory) ([]models.Drink, error) {
	m.requestedCategory = category
	if m.err != nil {
		return nil, m.err
	}
	var drinks []models.Drink
	for _, d := range m.drinks {
		if category == "" || d.Category == category {
			drinks = append(drinks, d)
		}
	}
	return drinks, nil
}

func (m *mockCatalogRepository) DrinkExists(ctx context.Context, drinkID int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, d := range m.drinks {
		if d.ID == drinkID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCatalogRepository) ListSteps(ctx context.Context, drinkID int64) ([]models.Step, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.steps[drinkID], nil
}

func (m *mockCatalogRepository) ListModifiers(ctx context.Context, catalog models.ModifierCatalog) ([]models.Modifier, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.modifiers[catalog], nil
}

// mockSessionRepository is an in-memory implementation of SessionRepository
type mockSessionRepository struct {
	sessions map[int64]*models.PracticeSession
	nextID   int64
	err      error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[int64]*models.PracticeSession)}
}

func (m *mockSessionRepository) Create(ctx context.Context, session *models.PracticeSession) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	stored := *session
	stored.ID = m.nextID
	m.sessions[m.nextID] = &stored
	return m.nextID, nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id int64) (*models.PracticeSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrSessionNotFound, id)
	}
	cp := *s
	return &cp, nil
}

func (m *mockSessionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.sessions[id]
	return ok, nil
}

func (m *mockSessionRepository) Finish(ctx context.Context, id int64, correctCount, durationSec int, finishedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	s, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %d", models.ErrSessionNotFound, id)
	}
	s.CorrectCount = correctCount
	s.DurationSec = &durationSec
	s.FinishedAt = &finishedAt
	return nil
}

// mockAttemptRepository is an in-memory implementation of AttemptRepository
type mockAttemptRepository struct {
	attempts []models.Attempt
	err      error
}

func (m *mockAttemptRepository) Create(ctx context.Context, attempt *models.Attempt) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	a := *attempt
	a.ID = int64(len(m.attempts) + 1)
	m.attempts = append(m.attempts, a)
	return a.ID, nil
}

func (m *mockAttemptRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.Attempt, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Attempt
	for _, a := range m.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

// mockProgressRepository is an in-memory implementation of ProgressRepository
type mockProgressRepository struct {
	records   map[int64]models.ProgressRecord
	err       error
	insertErr error
}

func newMockProgressRepository() *mockProgressRepository {
	return &mockProgressRepository{records: make(map[int64]models.ProgressRecord)}
}

func (m *mockProgressRepository) GetByDrinkID(ctx context.Context, drinkID int64) (*models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[drinkID]
	if !ok {
		return nil, fmt.Errorf("%w: drink %d", models.ErrProgressNotFound, drinkID)
	}
	return &rec, nil
}

func (m *mockProgressRepository) List(ctx context.Context) ([]models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.ProgressRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DrinkID < out[j].DrinkID })
	return out, nil
}

func (m *mockProgressRepository) Insert(ctx context.Context, rec *models.ProgressRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.records[rec.DrinkID]; ok {
		return fmt.Errorf("duplicate progress for drink %d", rec.DrinkID)
	}
	m.records[rec.DrinkID] = *rec
	return nil
}

func (m *mockProgressRepository) Update(ctx context.Context, rec *models.ProgressRecord) error {
	if _, ok := m.records[rec.DrinkID]; !ok {
		return fmt.Errorf("no progress for drink %d", rec.DrinkID)
	}
	m.records[rec.DrinkID] = *rec
	return nil
}

// mockWeakItemRepository is an in-memory implementation of WeakItemRepository
type mockWeakItemRepository struct {
	items map[int64]models.WeakItemRecord
	err   error
}

func newMockWeakItemRepository() *mockWeakItemRepository {
	return &mockWeakItemRepository{items: make(map[int64]models.WeakItemRecord)}
}

func (m *mockWeakItemRepository) GetByDrinkID(ctx context.Context, drinkID int64) (*models.WeakItemRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.items[drinkID]
	if !ok {
		return nil, fmt.Errorf("%w: drink %d", models.ErrWeakItemNotFound, drinkID)
	}
	return &rec, nil
}

func (m *mockWeakItemRepository) ListUnresolved(ctx context.Context, sortKey models.WeakItemSort) ([]models.WeakItemRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.WeakItemRecord
	for _, rec := range m.items {
		if !rec.Resolved {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if sortKey == models.WeakItemSortWrongCountDesc && out[i].WrongCount != out[j].WrongCount {
			return out[i].WrongCount > out[j].WrongCount
		}
		return out[i].LastWrongAt.After(out[j].LastWrongAt)
	})
	return out, nil
}

func (m *mockWeakItemRepository) UnresolvedDrinkIDs(ctx context.Context) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []int64
	for id, rec := range m.items {
		if !rec.Resolved {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *mockWeakItemRepository) Insert(ctx context.Context, rec *models.WeakItemRecord) error {
	if m.err != nil {
		return m.err
	}
	m.items[rec.DrinkID] = *rec
	return nil
}

func (m *mockWeakItemRepository) Update(ctx context.Context, rec *models.WeakItemRecord) error {
	if m.err != nil {
		return m.err
	}
	m.items[rec.DrinkID] = *rec
	return nil
}

func (m *mockWeakItemRepository) MarkCorrect(ctx context.Context, drinkID int64, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	if rec, ok := m.items[drinkID]; ok {
		rec.LastCorrectAt = &at
		m.items[drinkID] = rec
	}
	return nil
}

func (m *mockWeakItemRepository) Resolve(ctx context.Context, drinkID int64, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	rec, ok := m.items[drinkID]
	if !ok {
		return fmt.Errorf("%w: drink %d", models.ErrWeakItemNotFound, drinkID)
	}
	rec.Resolved = true
	rec.LastCorrectAt = &at
	m.items[drinkID] = rec
	return nil
}

// mockMaintenanceRepository is a mock implementation of MaintenanceRepository
type mockMaintenanceRepository struct {
	calls int
	err   error
}

func (m *mockMaintenanceRepository) DeleteAllTraineeData(ctx context.Context) error {
	m.calls++
	return m.err
}

// fixedClock returns a clock that advances one second per call
func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}
