package handlers

import (
	"context"
	"net/http"

	"github.com/baristadrill/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for learning progress business logic.
type ProgressService interface {
	// ListProgress returns every stored progress record.
	ListProgress(ctx context.Context) ([]models.ProgressRecord, error)
	// GetProgress returns the progress of a drink; drinks without a record are not_started.
	GetProgress(ctx context.Context, drinkID int64) (*models.ProgressRecord, error)
	// RecordFirstViewed stores when the trainee first opened a drink.
	RecordFirstViewed(ctx context.Context, drinkID int64) error
}

// ProgressHandler handles HTTP requests for learning progress
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes on a router scoped to /api/v1
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/progress", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{drinkId}", h.Get)
		r.Post("/{drinkId}/viewed", h.RecordViewed)
	})
}

// List handles GET /api/v1/progress
// @Summary List progress
// @Description Get the progress of every drink the trainee has viewed or practiced
// @Tags progress
// @Produce json
// @Success 200 {array} models.ProgressRecord
// @Failure 500 {object} ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListProgress(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "failed to list progress")
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}

// Get handles GET /api/v1/progress/{drinkId}
// @Summary Get drink progress
// @Description Get the progress of one drink
// @Tags progress
// @Produce json
// @Param drinkId path int true "Drink ID"
// @Success 200 {object} models.ProgressRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progress/{drinkId} [get]
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	drinkID, err := idParam(r, "drinkId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.GetProgress(r.Context(), drinkID)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get progress")
		return
	}

	h.respondJSON(w, http.StatusOK, record)
}

// RecordViewed handles POST /api/v1/progress/{drinkId}/viewed
// @Summary Record first view
// @Description Remember when the trainee first opened a drink's recipe
// @Tags progress
// @Param drinkId path int true "Drink ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progress/{drinkId}/viewed [post]
func (h *ProgressHandler) RecordViewed(w http.ResponseWriter, r *http.Request) {
	drinkID, err := idParam(r, "drinkId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RecordFirstViewed(r.Context(), drinkID); err != nil {
		h.respondServiceError(w, r, err, "failed to record view")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
