package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/baristadrill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWeakItemHandler_List(t *testing.T) {
	svc := &mockWeakItemService{
		items: []models.WeakItemRecord{
			{DrinkID: 3, DrinkName: "Caramel Macchiato", WrongCount: 4, LastWrongAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
			{DrinkID: 1, DrinkName: "Drip Coffee", WrongCount: 1, LastWrongAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		},
	}
	r := newTestRouter(NewWeakItemHandler(svc, zap.NewNop()))

	w := serve(r, http.MethodGet, "/api/v1/weak-items?sort=last_wrong_at_desc", "")

	require.Equal(t, http.StatusOK, w.Code)
	var items []models.WeakItemRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.Equal(t, "last_wrong_at_desc", svc.lastSort)
}

func TestWeakItemHandler_List_InvalidSort(t *testing.T) {
	svc := &mockWeakItemService{err: fmt.Errorf("%w: invalid sort %q", models.ErrValidation, "name")}
	r := newTestRouter(NewWeakItemHandler(svc, zap.NewNop()))

	w := serve(r, http.MethodGet, "/api/v1/weak-items?sort=name", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeakItemHandler_Resolve(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		serviceErr     error
		expectedStatus int
	}{
		{"success", "/api/v1/weak-items/3/resolve", nil, http.StatusNoContent},
		{"not found", "/api/v1/weak-items/8/resolve", models.ErrWeakItemNotFound, http.StatusNotFound},
		{"invalid id", "/api/v1/weak-items/x/resolve", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWeakItemService{err: tt.serviceErr}
			r := newTestRouter(NewWeakItemHandler(svc, zap.NewNop()))

			w := serve(r, http.MethodPost, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Equal(t, int64(3), svc.resolvedID)
			}
		})
	}
}
