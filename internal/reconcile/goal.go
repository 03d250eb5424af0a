package reconcile

import "math"

// Band is the progress-bar color band for a given goal percentage.
type Band string

const (
	// BandExceeded means the goal is met or exceeded (>=100%).
	BandExceeded Band = "exceeded"
	// BandHigh covers 91-99%.
	BandHigh Band = "high"
	// BandMedium covers 61-90%.
	BandMedium Band = "medium"
	// BandMediumLow covers 31-60%.
	BandMediumLow Band = "medium-low"
	// BandLow covers 0-30%.
	BandLow Band = "low"
)

// GoalProgress describes how the shift net stacks up against the daily goal.
// Shortfall and Surplus are mutually exclusive: at most one is nonzero.
type GoalProgress struct {
	Band           Band
	Percent        int
	DisplayPercent int
	Shortfall      float64
	Surplus        float64
}

// ProgressTowardGoal computes goal progress for a net total. DisplayPercent
// is clamped to [0,100]; the raw Percent is not. A non-positive goal counts
// as 0% progress rather than a division error.
func ProgressTowardGoal(netTotal, dailyGoal float64) GoalProgress {
	var percent int
	if dailyGoal > 0 {
		percent = int(math.Round(netTotal / dailyGoal * 100))
	}

	display := percent
	if display > 100 {
		display = 100
	}
	if display < 0 {
		display = 0
	}

	return GoalProgress{
		Percent:        percent,
		DisplayPercent: display,
		Shortfall:      math.Max(0, dailyGoal-netTotal),
		Surplus:        math.Max(0, netTotal-dailyGoal),
		Band:           bandFor(percent),
	}
}

func bandFor(percent int) Band {
	switch {
	case percent >= 100:
		return BandExceeded
	case percent >= 91:
		return BandHigh
	case percent >= 61:
		return BandMedium
	case percent >= 31:
		return BandMediumLow
	default:
		return BandLow
	}
}
