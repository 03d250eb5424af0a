package reconcile

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rutaapp/rutaapp/internal/model"
)

// CloseSummary builds the immutable snapshot archived when a shift closes.
// The headline Earnings figure is the trip-net total; expenses are not
// deducted from it. The per-platform stats use gross amounts. These are two
// different aggregations and must not be conflated.
func CloseSummary(shift *model.Shift, closedAt time.Time) *model.HistoryEntry {
	totals := ShiftTotals(shift)

	var duration float64
	if shift.StartedAt != nil {
		hours := closedAt.Sub(*shift.StartedAt).Hours()
		duration = math.Round(hours*100) / 100
	}

	trips := make([]model.Trip, len(shift.Trips))
	copy(trips, shift.Trips)

	return &model.HistoryEntry{
		ID:            uuid.NewString(),
		ClosedAt:      closedAt,
		TripCount:     len(shift.Trips),
		GrossTotal:    totals.GrossTotal,
		NetTotal:      totals.NetFromTrips,
		Earnings:      totals.NetFromTrips,
		DurationHours: duration,
		PerPlatform:   ClosingStats(shift.Trips),
		Trips:         trips,
	}
}
