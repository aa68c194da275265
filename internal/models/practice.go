package models

import (
	"fmt"
	"time"
)

// SessionLength is the fixed number of orders in every practice session
const SessionLength = 10

// Difficulty represents the difficulty level of a practice session
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty validates a difficulty value received from a caller
func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(value); d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d, nil
	}
	return "", fmt.Errorf("%w: invalid difficulty %q, must be 'beginner', 'intermediate' or 'advanced'", ErrValidation, value)
}

// ModifierProbability returns the chance that a generated order carries a modifier
func (d Difficulty) ModifierProbability() float64 {
	switch d {
	case DifficultyIntermediate:
		return 0.3
	case DifficultyAdvanced:
		return 0.6
	default:
		return 0
	}
}

// Size represents a cup size of an order
type Size string

const (
	SizeShort  Size = "S"
	SizeTall   Size = "T"
	SizeGrande Size = "G"
	SizeVenti  Size = "V"
)

// Sizes lists every size in menu order
var Sizes = []Size{SizeShort, SizeTall, SizeGrande, SizeVenti}

// ParseSize validates a size value received from a caller
func ParseSize(value string) (Size, error) {
	for _, s := range Sizes {
		if string(s) == value {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: invalid size %q, must be one of S, T, G, V", ErrValidation, value)
}

// UICategory is the user-facing drink category derived from a drink's name and labels
type UICategory string

const (
	UICategoryCoffee      UICategory = "coffee"
	UICategoryEspresso    UICategory = "espresso"
	UICategoryFrappuccino UICategory = "frappuccino"
	UICategoryTea         UICategory = "tea"
	UICategoryOther       UICategory = "other"
)

// CategoryFilter restricts the drinks a session is generated from.
//
// "hot", "ice" and "frappuccino" are applied on the storage category,
// "coffee", "espresso", "tea" and "other" on the derived UI category.
type CategoryFilter string

const (
	CategoryFilterAll         CategoryFilter = "all"
	CategoryFilterHot         CategoryFilter = "hot"
	CategoryFilterIce         CategoryFilter = "ice"
	CategoryFilterFrappuccino CategoryFilter = "frappuccino"
	CategoryFilterCoffee      CategoryFilter = "coffee"
	CategoryFilterEspresso    CategoryFilter = "espresso"
	CategoryFilterTea         CategoryFilter = "tea"
	CategoryFilterOther       CategoryFilter = "other"
)

// ParseCategoryFilter validates a category filter received from a caller.
// An empty value means "all".
func ParseCategoryFilter(value string) (CategoryFilter, error) {
	if value == "" {
		return CategoryFilterAll, nil
	}
	switch f := CategoryFilter(value); f {
	case CategoryFilterAll, CategoryFilterHot, CategoryFilterIce, CategoryFilterFrappuccino,
		CategoryFilterCoffee, CategoryFilterEspresso, CategoryFilterTea, CategoryFilterOther:
		return f, nil
	}
	return "", fmt.Errorf("%w: invalid category filter %q", ErrValidation, value)
}

// IsNative reports whether the filter is applied on the storage category
func (f CategoryFilter) IsNative() bool {
	return f == CategoryFilterHot || f == CategoryFilterIce || f == CategoryFilterFrappuccino
}

// StorageCategory returns the storage category the filter selects, or "" when the storage query is unfiltered
func (f CategoryFilter) StorageCategory() DrinkCategory {
	if f.IsNative() {
		return DrinkCategory(f)
	}
	return ""
}

// Stored returns the value persisted with a session: native filters are kept, UI filters are stored as "all"
func (f CategoryFilter) Stored() CategoryFilter {
	if f.IsNative() {
		return f
	}
	return CategoryFilterAll
}

// Order represents one drink to be prepared within a session
type Order struct {
	Position  int           `json:"position"` // zero-based index within the session
	DrinkID   int64         `json:"drinkId"`
	DrinkName string        `json:"drinkName"`
	ShortCode string        `json:"shortCode,omitempty"`
	Category  DrinkCategory `json:"category"`
	Size      Size          `json:"size"`
	Modifier  *string       `json:"modifier,omitempty"`
}

// HasModifier reports whether the order carries a modifier
func (o Order) HasModifier() bool {
	return o.Modifier != nil && *o.Modifier != ""
}

// PracticeSession represents a generated practice session with its orders
type PracticeSession struct {
	ID                   int64          `json:"id"`
	Difficulty           Difficulty     `json:"difficulty"`
	CategoryFilter       CategoryFilter `json:"categoryFilter"`
	StoredCategoryFilter CategoryFilter `json:"storedCategoryFilter"`
	Orders               []Order        `json:"orders"`
	CorrectCount         int            `json:"correctCount"`
	TotalCount           int            `json:"totalCount"`
	DurationSec          *int           `json:"durationSec,omitempty"`
	StartedAt            time.Time      `json:"startedAt"`
	FinishedAt           *time.Time     `json:"finishedAt,omitempty"`
}

// StepForQuiz represents a step presented to the trainee for ordering
type StepForQuiz struct {
	ID           int64  `json:"id"`
	CorrectOrder int    `json:"correctOrder"`
	Description  string `json:"description"`
	IsRequired   bool   `json:"isRequired"`
	IsCustom     bool   `json:"isCustom"` // step belongs to a modifier customization
}

// Attempt represents one scored resolution of an order
type Attempt struct {
	ID            int64         `json:"id"`
	SessionID     int64         `json:"sessionId"`
	DrinkID       int64         `json:"drinkId"`
	Category      DrinkCategory `json:"category,omitempty"` // filled when read back joined with drinks
	Size          Size          `json:"size"`
	Modifier      *string       `json:"modifier,omitempty"`
	UserAnswer    []int64       `json:"userAnswer"`
	CorrectAnswer []int64       `json:"correctAnswer"`
	IsCorrect     bool          `json:"isCorrect"`
	AnsweredAt    time.Time     `json:"answeredAt"`
}

// CreateSessionRequest represents a request to generate a practice session
type CreateSessionRequest struct {
	Difficulty     string `json:"difficulty"`
	CategoryFilter string `json:"categoryFilter"`
}

// SubmitAttemptRequest represents a trainee's answer for one order
type SubmitAttemptRequest struct {
	DrinkID       int64   `json:"drinkId"`
	Size          string  `json:"size"`
	Modifier      *string `json:"modifier,omitempty"`
	UserAnswer    []int64 `json:"userAnswer"`    // step IDs in the order chosen by the trainee
	CorrectAnswer []int64 `json:"correctAnswer"` // step IDs in canonical order
}

// SubmitAttemptResult represents the outcome of a submitted attempt
type SubmitAttemptResult struct {
	IsCorrect bool `json:"isCorrect"`
}

// FinishSessionRequest represents a request to close a practice session
type FinishSessionRequest struct {
	CorrectCount int `json:"correctCount"`
	DurationSec  int `json:"durationSec"`
}

// CategoryStat holds aggregated results for one drink category
type CategoryStat struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Rate    float64 `json:"rate"`
}

// SessionSummary represents the aggregated results of a practice session
type SessionSummary struct {
	SessionID     int64                          `json:"sessionId"`
	CorrectCount  int                            `json:"correctCount"`
	TotalCount    int                            `json:"totalCount"`
	CorrectRate   float64                        `json:"correctRate"`
	DurationSec   int                            `json:"durationSec"`
	Attempts      []Attempt                      `json:"attempts"`
	CategoryStats map[DrinkCategory]CategoryStat `json:"categoryStats"`
}
