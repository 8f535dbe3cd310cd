package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	require.NoError(t, err)
	require.InDelta(t, 0.1, d, 1e-15)
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	require.Error(t, err)
}

func TestRequireHelpersPass(t *testing.T) {
	data := []float64{-1, 0, 1}
	RequireSliceNearlyEqual(t, data, []float64{-1, 1e-12, 1}, 1e-9)
	RequireFinite(t, data)
	RequireBounded(t, data, -1, 1, 0)
}

func TestPiecewiseTriangleHalfDuty(t *testing.T) {
	time := []float64{0, 0.25, 0.5, 0.75, 1}
	got := PiecewiseTriangle(time, 100, 0, 0.5)
	RequireSliceNearlyEqual(t, got, []float64{0, 100, 0, -100, 0}, 1e-12)
}

func TestPiecewiseTrapezoidRegimes(t *testing.T) {
	time := make([]float64, 257)
	for i := range time {
		time[i] = float64(i) / 256
	}

	// Phases chosen so the seam lands in each of the four segments.
	for _, phase := range []float64{0, 60, 150, 250, 330} {
		got := PiecewiseTrapezoid(time, 50, phase, 0.3, 0.2)
		RequireFinite(t, got)
		RequireBounded(t, got, -50, 50, 1e-9)
		require.InDelta(t, got[0], got[len(got)-1], 1e-9, "phase %v", phase)
		require.InDelta(t, 50, maxOf(got), 1e-9)
		require.InDelta(t, -50, -maxOf(negate(got)), 1e-9)
	}
}

func maxOf(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		m = math.Max(m, v)
	}
	return m
}

func negate(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = -v
	}
	return out
}
