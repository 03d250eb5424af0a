// Package history implements time-window filtering and aggregate
// statistics over the archive of closed-shift summaries.
package history

import (
	"fmt"
	"time"

	"github.com/rutaapp/rutaapp/internal/common"
	"github.com/rutaapp/rutaapp/internal/model"
)

// Period selects the time window a history query covers.
type Period string

const (
	// PeriodDay covers the same calendar date as now.
	PeriodDay Period = "day"
	// PeriodWeek covers Sunday of the current week through now.
	PeriodWeek Period = "week"
	// PeriodMonth covers the same calendar month and year as now.
	PeriodMonth Period = "month"
	// PeriodYear covers the same calendar year as now.
	PeriodYear Period = "year"
	// PeriodRange covers an explicit [from, to] window, inclusive of the
	// whole final day.
	PeriodRange Period = "range"
)

// Valid reports whether the period is one of the recognized values.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodRange:
		return true
	}
	return false
}

// Filter returns the entries whose close time falls inside the selected
// window. Entries keep their stored order. PeriodRange requires both
// bounds and rejects from > to; other periods ignore the bounds.
func Filter(entries []model.HistoryEntry, period Period, now time.Time, from, to *time.Time) ([]model.HistoryEntry, error) {
	if !period.Valid() {
		return nil, common.NewUserError(fmt.Sprintf("unknown period %q", period), nil)
	}

	var inWindow func(time.Time) bool
	switch period {
	case PeriodDay:
		y, m, d := now.Date()
		inWindow = func(t time.Time) bool {
			ty, tm, td := t.Date()
			return ty == y && tm == m && td == d
		}
	case PeriodWeek:
		y, m, d := now.Date()
		sunday := time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
		inWindow = func(t time.Time) bool {
			return !t.Before(sunday) && !t.After(now)
		}
	case PeriodMonth:
		inWindow = func(t time.Time) bool {
			return t.Month() == now.Month() && t.Year() == now.Year()
		}
	case PeriodYear:
		inWindow = func(t time.Time) bool {
			return t.Year() == now.Year()
		}
	case PeriodRange:
		if from == nil || to == nil {
			return nil, common.NewUserError("select both dates", common.ErrInvalidDateRange)
		}
		if from.After(*to) {
			return nil, common.NewUserError("the start date cannot be after the end date", common.ErrInvalidDateRange)
		}
		y, m, d := to.Date()
		end := time.Date(y, m, d, 23, 59, 59, 0, to.Location())
		start := *from
		inWindow = func(t time.Time) bool {
			return !t.Before(start) && !t.After(end)
		}
	}

	var filtered []model.HistoryEntry
	for _, entry := range entries {
		if inWindow(entry.ClosedAt) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// Summary aggregates a filtered set of archive entries.
type Summary struct {
	Count           int
	TotalTrips      int
	TotalGross      float64
	TotalEarnings   float64
	AverageEarnings float64
}

// Summarize computes aggregate statistics over filtered entries. The
// average is zero for an empty set, never a division by zero.
func Summarize(entries []model.HistoryEntry) Summary {
	var s Summary
	s.Count = len(entries)
	for _, entry := range entries {
		s.TotalTrips += entry.TripCount
		s.TotalGross += entry.GrossTotal
		s.TotalEarnings += entry.Earnings
	}
	if s.Count > 0 {
		s.AverageEarnings = s.TotalEarnings / float64(s.Count)
	}
	return s
}
