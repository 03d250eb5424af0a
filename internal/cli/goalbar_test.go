package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutaapp/rutaapp/internal/reconcile"
)

func TestBandStyleRendersEveryBand(t *testing.T) {
	bands := []reconcile.Band{
		reconcile.BandExceeded,
		reconcile.BandHigh,
		reconcile.BandMedium,
		reconcile.BandMediumLow,
		reconcile.BandLow,
	}

	for _, band := range bands {
		render := BandStyle(band)
		require.NotNil(t, render, "band %s", band)
		assert.Contains(t, render("97% de $ 270.000"), "97% de $ 270.000")
	}
}

func TestRenderGoalBar(t *testing.T) {
	var out bytes.Buffer
	RenderGoalBar(&out, reconcile.ProgressTowardGoal(135000, 270000))

	assert.Contains(t, out.String(), "Meta")
}
