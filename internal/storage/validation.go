package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rutaapp/rutaapp/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidTrip  = errors.New("invalid trip")
	ErrInvalidEntry = errors.New("invalid history entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateShift validates a shift before persisting it.
func validateShift(shift *model.Shift) error {
	if shift == nil {
		return fmt.Errorf("%w: shift", ErrNilParameter)
	}
	for i := range shift.Trips {
		trip := &shift.Trips[i]
		if trip.ID == 0 {
			return fmt.Errorf("%w: trip at index %d has no id", ErrInvalidTrip, i)
		}
		if !trip.PaymentMethod.Valid() {
			return fmt.Errorf("%w: trip %d has payment method %q", ErrInvalidTrip, trip.ID, trip.PaymentMethod)
		}
	}
	for i := range shift.Expenses {
		if shift.Expenses[i].ID == "" {
			return fmt.Errorf("expense at index %d has no id", i)
		}
	}
	return nil
}

// validateHistoryEntry validates an archive entry before persisting it.
func validateHistoryEntry(entry *model.HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if entry.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidEntry)
	}
	if entry.ClosedAt.IsZero() {
		return fmt.Errorf("%w: missing close time", ErrInvalidEntry)
	}
	return nil
}
