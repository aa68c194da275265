package models

import (
	"fmt"
	"time"
)

// WeakItemThreshold is the number of unresolved weak drinks from which advanced sessions prioritize them
const WeakItemThreshold = 5

// WeakItemRecord represents a drink the trainee repeatedly gets wrong
type WeakItemRecord struct {
	DrinkID       int64         `json:"drinkId"`
	DrinkName     string        `json:"drinkName"`
	ShortCode     string        `json:"shortCode,omitempty"`
	Category      DrinkCategory `json:"category"`
	WrongCount    int           `json:"wrongCount"`
	LastWrongAt   time.Time     `json:"lastWrongAt"`
	LastCorrectAt *time.Time    `json:"lastCorrectAt,omitempty"`
	Resolved      bool          `json:"resolved"`
}

// WeakItemSort represents the ordering of the weak item list
type WeakItemSort string

const (
	WeakItemSortWrongCountDesc WeakItemSort = "wrong_count_desc"
	WeakItemSortLastWrongDesc  WeakItemSort = "last_wrong_at_desc"
)

// ParseWeakItemSort validates a sort key received from a caller.
// An empty value means "wrong_count_desc".
func ParseWeakItemSort(value string) (WeakItemSort, error) {
	switch s := WeakItemSort(value); s {
	case "":
		return WeakItemSortWrongCountDesc, nil
	case WeakItemSortWrongCountDesc, WeakItemSortLastWrongDesc:
		return s, nil
	}
	return "", fmt.Errorf("%w: invalid sort %q, must be 'wrong_count_desc' or 'last_wrong_at_desc'", ErrValidation, value)
}
