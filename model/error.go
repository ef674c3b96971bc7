// Package model defines the domain entities of tasktrack and the rules that
// govern them.
package model

import (
	"errors"
	"fmt"
)

// Sentinel errors. Entity specific not-found errors wrap ErrNotFound so that
// callers can match either.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConflict        = errors.New("conflict")

	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrSessionNotFound      = fmt.Errorf("session %w", ErrNotFound)
	ErrProjectNotFound      = fmt.Errorf("project %w", ErrNotFound)
	ErrModuleNotFound       = fmt.Errorf("module %w", ErrNotFound)
	ErrTaskNotFound         = fmt.Errorf("task %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a *ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// Error kinds exposed to API clients.
const (
	KindUnauthenticated = "Unauthenticated"
	KindForbidden       = "Forbidden"
	KindNotFound        = "NotFound"
	KindValidation      = "Validation"
	KindConflict        = "Conflict"
	KindInternal        = "Internal"
)

// KindOf classifies err into one of the Kind constants.
func KindOf(err error) string {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}
