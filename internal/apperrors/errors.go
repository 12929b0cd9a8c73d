package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrPersistence indicates a lower-level storage failure (connectivity,
// constraint violation) encountered while reading or writing state.
var ErrPersistence = errors.New("persistence failure")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// NewNotFound wraps ErrNotFound with the entity kind and identifier so callers
// can log or surface which lookup missed.
func NewNotFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// NewPersistence wraps a storage error into the stable ErrPersistence kind,
// keeping the underlying message for diagnostics.
func NewPersistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
