package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rutaapp/rutaapp/internal/model"
)

func tripWithNet(ts time.Time, platform string, method model.PaymentMethod, gross, toll float64) model.Trip {
	trip := model.NewTrip(ts, platform, method, gross)
	trip.TollAmount = toll
	trip.NetAmount = gross - toll
	return trip
}

func TestPlatformBreakdownUsesNet(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	trips := []model.Trip{
		tripWithNet(now, "coop", model.PaymentCash, 20000, 3000),
		tripWithNet(now.Add(time.Minute), "coop", model.PaymentCard, 10000, 0),
	}

	groups := PlatformBreakdown(trips)
	coop := groups["coop"]
	assert.Equal(t, 2, coop.Count)
	assert.InDelta(t, 27000, coop.Total, 0.001)
	assert.InDelta(t, 17000, coop.ByMethod[model.PaymentCash], 0.001)
}

func TestClosingStatsUsesGross(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	trips := []model.Trip{
		tripWithNet(now, "coop", model.PaymentCash, 20000, 3000),
		tripWithNet(now.Add(time.Minute), "coop", model.PaymentCard, 10000, 0),
	}

	stats := ClosingStats(trips)
	coop := stats["coop"]
	assert.Equal(t, 2, coop.Count)
	assert.InDelta(t, 30000, coop.Total, 0.001)
	assert.InDelta(t, 20000, coop.ByMethod[model.PaymentCash], 0.001)
}

func TestSortedPlatformIDsFirstSeenOrder(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	trips := []model.Trip{
		model.NewTrip(now, "didi", model.PaymentCash, 10000),
		model.NewTrip(now.Add(time.Minute), "uber", model.PaymentCash, 10000),
		model.NewTrip(now.Add(2*time.Minute), "didi", model.PaymentCard, 10000),
		model.NewTrip(now.Add(3*time.Minute), "mano", model.PaymentCash, 10000),
	}

	groups := PlatformBreakdown(trips)
	assert.Equal(t, []string{"didi", "uber", "mano"}, SortedPlatformIDs(trips, groups))
}
