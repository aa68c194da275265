package handlers

import (
	"context"
	"net/http"

	"github.com/baristadrill/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WeakItemService is the interface that wraps methods for weak item business logic.
type WeakItemService interface {
	// List returns unresolved weak items sorted by "wrong_count_desc" (default) or "last_wrong_at_desc".
	List(ctx context.Context, sort string) ([]models.WeakItemRecord, error)
	// Resolve marks the weak item of a drink as resolved, or returns models.ErrWeakItemNotFound.
	Resolve(ctx context.Context, drinkID int64) error
}

// WeakItemHandler handles HTTP requests for weak items
type WeakItemHandler struct {
	BaseHandler
	service WeakItemService
}

// NewWeakItemHandler creates a new weak item handler
func NewWeakItemHandler(svc WeakItemService, logger *zap.Logger) *WeakItemHandler {
	return &WeakItemHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all weak item handler routes on a router scoped to /api/v1
func (h *WeakItemHandler) RegisterRoutes(r chi.Router) {
	r.Route("/weak-items", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/{drinkId}/resolve", h.Resolve)
	})
}

// List handles GET /api/v1/weak-items
// @Summary List weak items
// @Description Get the unresolved drinks the trainee got wrong
// @Tags weak-items
// @Produce json
// @Param sort query string false "Sort key: wrong_count_desc or last_wrong_at_desc, default: wrong_count_desc"
// @Success 200 {array} models.WeakItemRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /weak-items [get]
func (h *WeakItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to list weak items")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Resolve handles POST /api/v1/weak-items/{drinkId}/resolve
// @Summary Resolve weak item
// @Description Mark a weak drink as resolved; it comes back on the next wrong answer
// @Tags weak-items
// @Param drinkId path int true "Drink ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /weak-items/{drinkId}/resolve [post]
func (h *WeakItemHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	drinkID, err := idParam(r, "drinkId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Resolve(r.Context(), drinkID); err != nil {
		h.respondServiceError(w, r, err, "failed to resolve weak item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
