package services

import (
	"sort"

	"github.com/baristadrill/backend/internal/models"
)

// ScoreAttempt reports whether the trainee ordered the steps exactly as the canonical sequence.
// There is no partial credit: any difference in length or position is wrong.
func ScoreAttempt(userStepIDs, canonicalStepIDs []int64) bool {
	if len(userStepIDs) != len(canonicalStepIDs) {
		return false
	}
	for i := range userStepIDs {
		if userStepIDs[i] != canonicalStepIDs[i] {
			return false
		}
	}
	return true
}

// QuizSteps selects the steps presented for an order, sorted by their correct order.
//
// Without a modifier only required steps are quizzed. With a modifier every step is quizzed
// and optional steps are flagged as custom.
func QuizSteps(steps []models.Step, hasModifier bool) []models.StepForQuiz {
	quiz := make([]models.StepForQuiz, 0, len(steps))
	for _, s := range steps {
		if !hasModifier && !s.IsRequired {
			continue
		}
		quiz = append(quiz, models.StepForQuiz{
			ID:           s.ID,
			CorrectOrder: s.CorrectOrder,
			Description:  s.Description,
			IsRequired:   s.IsRequired,
			IsCustom:     !s.IsRequired,
		})
	}
	sort.SliceStable(quiz, func(i, j int) bool {
		return quiz[i].CorrectOrder < quiz[j].CorrectOrder
	})
	return quiz
}

// CanonicalOrder returns the step IDs sorted by their correct order
func CanonicalOrder(steps []models.StepForQuiz) []int64 {
	sorted := make([]models.StepForQuiz, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CorrectOrder < sorted[j].CorrectOrder
	})

	ids := make([]int64, len(sorted))
	for i, s := range sorted {
		ids[i] = s.ID
	}
	return ids
}
