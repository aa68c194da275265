package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEligibleDrinks is returned when the category filter leaves no drink to practice
	ErrNoEligibleDrinks = errors.New("no eligible drinks")
	// ErrValidation is wrapped by every error caused by invalid caller input
	ErrValidation = errors.New("validation error")
	// ErrSessionNotFound is returned when a practice session does not exist
	ErrSessionNotFound = errors.New("session not found")
	// ErrWeakItemNotFound is returned when a drink has no weak item record
	ErrWeakItemNotFound = errors.New("weak item not found")
	// ErrProgressNotFound is returned when a drink has no progress record
	ErrProgressNotFound = errors.New("progress not found")
	// ErrNoQuizSteps is returned when a drink has no step left to quiz
	ErrNoQuizSteps = errors.New("no steps to quiz")
)

// StorageError wraps a failure of the underlying store.
//
// Callers must assume that the operation did not happen.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError creates a StorageError for the given operation
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
