package model

import "time"

// Shift ("jornada") is a single work session: a start time plus the trips
// and expenses accumulated since it opened. Trips and expenses are
// insertion-ordered; views that want most-recent-first iterate in reverse
// without mutating the stored order.
type Shift struct {
	StartedAt *time.Time
	Trips     []Trip
	Expenses  []Expense
	Started   bool
}

// Open reports whether the shift is accumulating.
func (s *Shift) Open() bool {
	return s.Started
}

// TripByID returns the trip with the given id, or nil if absent.
func (s *Shift) TripByID(id int64) *Trip {
	for i := range s.Trips {
		if s.Trips[i].ID == id {
			return &s.Trips[i]
		}
	}
	return nil
}

// NewestFirst returns a reversed copy of an insertion-ordered slice for
// display. The stored order never changes.
func NewestFirst[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// ExpenseByID returns the expense with the given id, or nil if absent.
func (s *Shift) ExpenseByID(id string) *Expense {
	for i := range s.Expenses {
		if s.Expenses[i].ID == id {
			return &s.Expenses[i]
		}
	}
	return nil
}
