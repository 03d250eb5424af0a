package cli

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/rutaapp/rutaapp/internal/reconcile"
)

// RenderGoalBar writes a one-shot progress bar showing how far the shift
// net has come toward the daily goal. The bar shows the clamped display
// percent; the raw figures go alongside it in the status output.
func RenderGoalBar(w io.Writer, progress reconcile.GoalProgress) {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Meta"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "░",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
	_ = bar.Set(progress.DisplayPercent)
}

// BandStyle returns the style for a goal band, mirroring the progress-bar
// color banding.
func BandStyle(band reconcile.Band) func(...string) string {
	switch band {
	case reconcile.BandExceeded:
		return SuccessStyle.Render
	case reconcile.BandHigh, reconcile.BandMedium:
		return BoldStyle.Render
	case reconcile.BandMediumLow:
		return WarningStyle.Render
	default:
		return ErrorStyle.Render
	}
}
