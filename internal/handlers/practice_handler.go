package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/baristadrill/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PracticeService is the interface that wraps methods for practice session business logic.
type PracticeService interface {
	// CreateSession generates and stores a session of ten orders.
	//
	// "difficulty" must be beginner, intermediate or advanced; "categoryFilter" is all (default),
	// hot, ice, frappuccino, coffee, espresso, tea or other.
	// models.ErrNoEligibleDrinks is returned when the filter leaves nothing to practice.
	CreateSession(ctx context.Context, difficulty, categoryFilter string) (*models.PracticeSession, error)
	// GetSession returns a stored session with its orders.
	GetSession(ctx context.Context, sessionID int64) (*models.PracticeSession, error)
	// GetQuizSteps returns the steps to order for a drink, required-only unless the order carries a modifier.
	GetQuizSteps(ctx context.Context, drinkID int64, hasModifier bool) ([]models.StepForQuiz, error)
	// SubmitAttempt scores and records one answer of a session.
	SubmitAttempt(ctx context.Context, sessionID int64, req models.SubmitAttemptRequest) (*models.SubmitAttemptResult, error)
	// FinishSession stores the final score and duration of a session.
	FinishSession(ctx context.Context, sessionID int64, req models.FinishSessionRequest) error
	// GetSessionSummary aggregates the results of a session.
	GetSessionSummary(ctx context.Context, sessionID int64) (*models.SessionSummary, error)
}

// PracticeHandler handles HTTP requests for practice sessions
type PracticeHandler struct {
	BaseHandler
	service PracticeService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(svc PracticeService, logger *zap.Logger) *PracticeHandler {
	return &PracticeHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all practice handler routes on a router scoped to /api/v1
func (h *PracticeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/practice", func(r chi.Router) {
		r.Post("/sessions", h.CreateSession)
		r.Get("/sessions/{id}", h.GetSession)
		r.Post("/sessions/{id}/attempts", h.SubmitAttempt)
		r.Post("/sessions/{id}/finish", h.FinishSession)
		r.Get("/sessions/{id}/summary", h.GetSessionSummary)
		r.Get("/drinks/{drinkId}/steps", h.GetQuizSteps)
	})
}

// CreateSession handles POST /api/v1/practice/sessions
// @Summary Create practice session
// @Description Generate a session of ten drink orders for the given difficulty and category filter
// @Tags practice
// @Accept json
// @Produce json
// @Param request body models.CreateSessionRequest true "Session settings"
// @Success 201 {object} models.PracticeSession
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice/sessions [post]
func (h *PracticeHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.CreateSession(r.Context(), req.Difficulty, req.CategoryFilter)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to create session")
		return
	}

	h.respondJSON(w, http.StatusCreated, session)
}

// GetSession handles GET /api/v1/practice/sessions/{id}
// @Summary Get practice session
// @Description Get a practice session with its orders
// @Tags practice
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} models.PracticeSession
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice/sessions/{id} [get]
func (h *PracticeHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get session")
		return
	}

	h.respondJSON(w, http.StatusOK, session)
}

// GetQuizSteps handles GET /api/v1/practice/drinks/{drinkId}/steps
// @Summary Get quiz steps
// @Description Get the steps to put in order for a drink, sorted by correct order. Optional steps are included only for orders with a modifier.
// @Tags practice
// @Produce json
// @Param drinkId path int true "Drink ID"
// @Param modifier query bool false "Order carries a modifier, default: false"
// @Success 200 {array} models.StepForQuiz
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice/drinks/{drinkId}/steps [get]
func (h *PracticeHandler) GetQuizSteps(w http.ResponseWriter, r *http.Request) {
	drinkID, err := idParam(r, "drinkId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hasModifier := false
	if v := r.URL.Query().Get("modifier"); v != "" {
		hasModifier, err = strconv.ParseBool(v)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid modifier parameter")
			return
		}
	}

	steps, err := h.service.GetQuizSteps(r.Context(), drinkID, hasModifier)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get quiz steps")
		return
	}

	h.respondJSON(w, http.StatusOK, steps)
}

// SubmitAttempt handles POST /api/v1/practice/sessions/{id}/attempts
// @Summary Submit attempt
// @Description Score the trainee's step order for one order of a session and record the result
// @Tags practice
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body models.SubmitAttemptRequest true "Answer"
// @Success 200 {object} models.SubmitAttemptResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice/sessions/{id}/attempts [post]
func (h *PracticeHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.SubmitAttemptRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.SubmitAttempt(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to submit attempt")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// FinishSession handles POST /api/v1/practice/sessions/{id}/finish
// @Summary Finish session
// @Description Store the final score and duration of a session
// @Tags practice
// @Accept json
// @Param id path int true "Session ID"
// @Param request body models.FinishSessionRequest true "Final result"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice/sessions/{id}/finish [post]
func (h *PracticeHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.FinishSessionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.FinishSession(r.Context(), id, req); err != nil {
		h.respondServiceError(w, r, err, "failed to finish session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSessionSummary handles GET /api/v1/practice/sessions/{id}/summary
// @Summary Get session summary
// @Description Get the score of a session with its attempts and per-category statistics
// @Tags practice
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} models.SessionSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice/sessions/{id}/summary [get]
func (h *PracticeHandler) GetSessionSummary(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.GetSessionSummary(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get session summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
