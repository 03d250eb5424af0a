package reconcile

import (
	"sort"

	"github.com/rutaapp/rutaapp/internal/model"
)

// PlatformAgg aggregates the trips of one platform for the live view.
// Total and ByMethod sum net amounts, unlike the closing snapshot which
// sums gross.
type PlatformAgg struct {
	ByMethod map[model.PaymentMethod]float64
	Count    int
	Total    float64
}

// PlatformBreakdown groups trips by platform id and aggregates net amounts
// per platform and per payment method.
func PlatformBreakdown(trips []model.Trip) map[string]PlatformAgg {
	out := make(map[string]PlatformAgg)
	for _, trip := range trips {
		agg, ok := out[trip.PlatformID]
		if !ok {
			agg = PlatformAgg{ByMethod: make(map[model.PaymentMethod]float64)}
		}
		agg.Count++
		agg.Total += trip.NetAmount
		agg.ByMethod[trip.PaymentMethod] += trip.NetAmount
		out[trip.PlatformID] = agg
	}
	return out
}

// ClosingStats groups trips by platform id for the closing summary. These
// figures use gross amounts; the user-facing summary reports what each
// platform paid before deductions.
func ClosingStats(trips []model.Trip) map[string]model.PlatformStats {
	out := make(map[string]model.PlatformStats)
	for _, trip := range trips {
		stats, ok := out[trip.PlatformID]
		if !ok {
			stats = model.PlatformStats{ByMethod: make(map[model.PaymentMethod]float64)}
		}
		stats.Count++
		stats.Total += trip.GrossAmount
		stats.ByMethod[trip.PaymentMethod] += trip.GrossAmount
		out[trip.PlatformID] = stats
	}
	return out
}

// SortedPlatformIDs returns the platform ids of a breakdown in first-seen
// trip order, so listings are stable across recomputations.
func SortedPlatformIDs[T any](trips []model.Trip, groups map[string]T) []string {
	seen := make(map[string]int, len(groups))
	for i, trip := range trips {
		if _, ok := seen[trip.PlatformID]; !ok {
			seen[trip.PlatformID] = i
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return seen[ids[a]] < seen[ids[b]] })
	return ids
}
