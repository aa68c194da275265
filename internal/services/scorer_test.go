package services

import (
	"testing"

	"github.com/baristadrill/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestScoreAttempt(t *testing.T) {
	tests := []struct {
		name      string
		user      []int64
		canonical []int64
		expected  bool
	}{
		{name: "exact order", user: []int64{1, 2, 3, 4}, canonical: []int64{1, 2, 3, 4}, expected: true},
		{name: "adjacent swap", user: []int64{1, 3, 2, 4}, canonical: []int64{1, 2, 3, 4}, expected: false},
		{name: "first and last swapped", user: []int64{4, 2, 3, 1}, canonical: []int64{1, 2, 3, 4}, expected: false},
		{name: "missing step", user: []int64{1, 2, 3}, canonical: []int64{1, 2, 3, 4}, expected: false},
		{name: "extra step", user: []int64{1, 2, 3, 4, 5}, canonical: []int64{1, 2, 3, 4}, expected: false},
		{name: "single step", user: []int64{9}, canonical: []int64{9}, expected: true},
		{name: "empty answer", user: nil, canonical: []int64{1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreAttempt(tt.user, tt.canonical))
		})
	}
}

func TestQuizSteps(t *testing.T) {
	steps := []models.Step{
		{ID: 12, DrinkID: 3, CorrectOrder: 3, IsRequired: true, Description: "ミルクを注ぐ"},
		{ID: 10, DrinkID: 3, CorrectOrder: 1, IsRequired: true, Description: "エスプレッソを抽出"},
		{ID: 13, DrinkID: 3, CorrectOrder: 4, IsRequired: false, Description: "シロップを追加"},
		{ID: 11, DrinkID: 3, CorrectOrder: 2, IsRequired: true, Description: "ミルクをスチーム"},
	}

	tests := []struct {
		name        string
		hasModifier bool
		expectedIDs []int64
		customIDs   []int64
	}{
		{
			name:        "without modifier only required steps",
			hasModifier: false,
			expectedIDs: []int64{10, 11, 12},
		},
		{
			name:        "with modifier every step",
			hasModifier: true,
			expectedIDs: []int64{10, 11, 12, 13},
			customIDs:   []int64{13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := QuizSteps(steps, tt.hasModifier)

			var ids, custom []int64
			for _, s := range quiz {
				ids = append(ids, s.ID)
				if s.IsCustom {
					custom = append(custom, s.ID)
				}
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.customIDs, custom)
		})
	}
}

func TestQuizSteps_OnlyOptionalSteps(t *testing.T) {
	steps := []models.Step{{ID: 1, CorrectOrder: 1, IsRequired: false}}

	assert.Empty(t, QuizSteps(steps, false))
	assert.Len(t, QuizSteps(steps, true), 1)
}

func TestCanonicalOrder(t *testing.T) {
	quiz := []models.StepForQuiz{
		{ID: 30, CorrectOrder: 3},
		{ID: 10, CorrectOrder: 1},
		{ID: 20, CorrectOrder: 2},
	}

	assert.Equal(t, []int64{10, 20, 30}, CanonicalOrder(quiz))
	assert.Equal(t, int64(30), quiz[0].ID, "input must not be reordered")
	assert.Empty(t, CanonicalOrder(nil))
}
