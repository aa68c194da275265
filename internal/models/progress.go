package models

import "time"

// ProgressStatus represents the mastery state of a drink
type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "not_started"
	ProgressStatusLearning   ProgressStatus = "learning"
	ProgressStatusMastered   ProgressStatus = "mastered"
)

const (
	// MasteryMinAttempts is the number of attempts required before a drink can be mastered
	MasteryMinAttempts = 5
	// MasteryMinRate is the running accuracy required for mastery
	MasteryMinRate = 0.8
)

// ProgressRecord represents the learning progress of a single drink
type ProgressRecord struct {
	DrinkID         int64          `json:"drinkId"`
	Status          ProgressStatus `json:"status"`
	PracticeCount   int            `json:"practiceCount"`
	CorrectRate     float64        `json:"correctRate"` // exact mean of all recorded correctness values
	FirstViewedAt   *time.Time     `json:"firstViewedAt,omitempty"`
	LastPracticedAt *time.Time     `json:"lastPracticedAt,omitempty"`
}
