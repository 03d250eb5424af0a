package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutaapp/rutaapp/internal/model"
)

func TestCloseSummary(t *testing.T) {
	startedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	closedAt := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	shift := &model.Shift{
		StartedAt: &startedAt,
		Started:   true,
		Trips: []model.Trip{
			model.NewTrip(startedAt.Add(time.Hour), "uber", model.PaymentCash, 15000),
			model.NewTrip(startedAt.Add(2*time.Hour), "uber", model.PaymentCard, 20000),
			model.NewTrip(startedAt.Add(3*time.Hour), "didi", model.PaymentCash, 12000),
		},
		Expenses: []model.Expense{
			model.NewExpense(startedAt.Add(time.Hour), model.ExpenseFuel, 5000),
		},
	}

	entry := CloseSummary(shift, closedAt)

	require.NotEmpty(t, entry.ID)
	assert.Equal(t, closedAt, entry.ClosedAt)
	assert.Equal(t, 3, entry.TripCount)
	assert.InDelta(t, 47000, entry.GrossTotal, 0.001)
	assert.InDelta(t, 8.0, entry.DurationHours, 0.001)

	// Earnings come from trips alone; the fuel expense does not reduce them.
	assert.InDelta(t, 47000, entry.Earnings, 0.001)
	assert.InDelta(t, 47000, entry.NetTotal, 0.001)

	uber := entry.PerPlatform["uber"]
	assert.Equal(t, 2, uber.Count)
	assert.InDelta(t, 35000, uber.Total, 0.001)
	assert.InDelta(t, 15000, uber.ByMethod[model.PaymentCash], 0.001)
	assert.InDelta(t, 20000, uber.ByMethod[model.PaymentCard], 0.001)

	didi := entry.PerPlatform["didi"]
	assert.Equal(t, 1, didi.Count)
	assert.InDelta(t, 12000, didi.Total, 0.001)

	// The trip snapshot is a copy, not an alias.
	require.Len(t, entry.Trips, 3)
	shift.Trips[0].GrossAmount = 99999
	assert.InDelta(t, 15000, entry.Trips[0].GrossAmount, 0.001)
}

func TestCloseSummaryDurationRounding(t *testing.T) {
	startedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	closedAt := startedAt.Add(7*time.Hour + 50*time.Minute)

	shift := &model.Shift{
		StartedAt: &startedAt,
		Started:   true,
		Trips: []model.Trip{
			model.NewTrip(startedAt.Add(time.Hour), "uber", model.PaymentCash, 10000),
		},
	}

	entry := CloseSummary(shift, closedAt)
	assert.InDelta(t, 7.83, entry.DurationHours, 0.001)
}

func TestCloseSummaryMissingStart(t *testing.T) {
	shift := &model.Shift{
		Started: true,
		Trips: []model.Trip{
			model.NewTrip(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), "uber", model.PaymentCash, 10000),
		},
	}

	entry := CloseSummary(shift, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	assert.Zero(t, entry.DurationHours)
}
