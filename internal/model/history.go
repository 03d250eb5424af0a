package model

import "time"

// RemoteHistoryLimit caps how many archive entries are pulled from the
// remote collaborator, most recent first. Purely local entries are not
// capped.
const RemoteHistoryLimit = 90

// PlatformStats aggregates the trips of one platform inside a closed-shift
// snapshot. Total and the per-method figures are gross amounts; the live
// per-platform view aggregates net instead (see reconcile.PlatformBreakdown).
type PlatformStats struct {
	ByMethod map[PaymentMethod]float64
	Count    int
	Total    float64
}

// HistoryEntry is the immutable snapshot archived when a shift closes.
// It carries no reference back to the live shift.
type HistoryEntry struct {
	ClosedAt      time.Time
	ID            string
	PerPlatform   map[string]PlatformStats
	Trips         []Trip
	TripCount     int
	GrossTotal    float64
	NetTotal      float64
	Earnings      float64
	DurationHours float64
}
