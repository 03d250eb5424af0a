// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Shift lifecycle errors.
	ErrShiftAlreadyOpen = errors.New("shift already open")
	ErrShiftNotOpen     = errors.New("no open shift")
	ErrNoTrips          = errors.New("no trips recorded")

	// Validation errors.
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrMissingPlatform   = errors.New("platform is required")
	ErrMissingPayment    = errors.New("payment method is required")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrInvalidCategory   = errors.New("unknown expense category")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrDuplicatePlatform = errors.New("platform already exists")
	ErrInvalidDateRange  = errors.New("invalid date range")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user. The
// operation it came from aborted with no partial state change.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsUserError reports whether err carries a user-visible message, and
// returns that message when it does.
func IsUserError(err error) (string, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage, true
	}
	return "", false
}
