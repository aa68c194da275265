package handlers

import (
	"context"

	"github.com/baristadrill/backend/internal/models"
)

type mockPracticeService struct {
	createSession     func(ctx context.Context, difficulty, categoryFilter string) (*models.PracticeSession, error)
	getSession        func(ctx context.Context, sessionID int64) (*models.PracticeSession, error)
	getQuizSteps      func(ctx context.Context, drinkID int64, hasModifier bool) ([]models.StepForQuiz, error)
	submitAttempt     func(ctx context.Context, sessionID int64, req models.SubmitAttemptRequest) (*models.SubmitAttemptResult, error)
	finishSession     func(ctx context.Context, sessionID int64, req models.FinishSessionRequest) error
	getSessionSummary func(ctx context.Context, sessionID int64) (*models.SessionSummary, error)
}

func (m *mockPracticeService) CreateSession(ctx context.Context, difficulty, categoryFilter string) (*models.PracticeSession, error) {
	return m.createSession(ctx, difficulty, categoryFilter)
}

func (m *mockPracticeService) GetSession(ctx context.Context, sessionID int64) (*models.PracticeSession, error) {
	return m.getSession(ctx, sessionID)
}

func (m *mockPracticeService) GetQuizSteps(ctx context.Context, drinkID int64, hasModifier bool) ([]models.StepForQuiz, error) {
	return m.getQuizSteps(ctx, drinkID, hasModifier)
}

func (m *mockPracticeService) SubmitAttempt(ctx context.Context, sessionID int64, req models.SubmitAttemptRequest) (*models.SubmitAttemptResult, error) {
	return m.submitAttempt(ctx, sessionID, req)
}

func (m *mockPracticeService) FinishSession(ctx context.Context, sessionID int64, req models.FinishSessionRequest) error {
	return m.finishSession(ctx, sessionID, req)
}

func (m *mockPracticeService) GetSessionSummary(ctx context.Context, sessionID int64) (*models.SessionSummary, error) {
	return m.getSessionSummary(ctx, sessionID)
}

type mockWeakItemService struct {
	items      []models.WeakItemRecord
	err        error
	lastSort   string
	resolvedID int64
}

func (m *mockWeakItemService) List(ctx context.Context, sort string) ([]models.WeakItemRecord, error) {
	m.lastSort = sort
	return m.items, m.err
}

func (m *mockWeakItemService) Resolve(ctx context.Context, drinkID int64) error {
	m.resolvedID = drinkID
	return m.err
}

type mockProgressService struct {
	records  []models.ProgressRecord
	err      error
	viewedID int64
}

func (m *mockProgressService) ListProgress(ctx context.Context) ([]models.ProgressRecord, error) {
	return m.records, m.err
}

func (m *mockProgressService) GetProgress(ctx context.Context, drinkID int64) (*models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].DrinkID == drinkID {
			return &m.records[i], nil
		}
	}
	return &models.ProgressRecord{DrinkID: drinkID, Status: models.ProgressStatusNotStarted}, nil
}

func (m *mockProgressService) RecordFirstViewed(ctx context.Context, drinkID int64) error {
	m.viewedID = drinkID
	return m.err
}
