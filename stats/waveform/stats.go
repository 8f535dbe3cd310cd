package waveform

import "math"

// Summary holds per-cycle statistics of a sampled waveform.
type Summary struct {
	Length        int
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	PeakToPeak    float64 // max - min
	Mean          float64
	RMS           float64
	ZeroCrossings int
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Summary {
	n := len(signal)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Length: n,
		Max:    signal[0],
		Min:    signal[0],
	}

	var sumSq float64
	for i, x := range signal {
		if x > s.Max {
			s.Max, s.MaxPos = x, i
		}
		if x < s.Min {
			s.Min, s.MinPos = x, i
		}
		sumSq += x * x
	}

	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.PeakToPeak = s.Max - s.Min
	s.Mean = Mean(signal)
	s.RMS = math.Sqrt(sumSq / float64(n))
	s.ZeroCrossings = ZeroCrossings(signal)
	return s
}

// Mean returns the average of the signal.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Kahan summation.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}
	return peak
}

// ZeroCrossings counts sign changes between consecutive samples.
// Samples that are exactly zero do not count as a crossing on their own.
func ZeroCrossings(signal []float64) int {
	var count int
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}

// LoopArea returns ∮ h db over the closed loop formed by the paired samples,
// using the trapezoidal rule and closing from the last sample back to the
// first. With b in tesla and h in A/m the result is the energy dissipated per
// cycle in J/m³; it is positive for a counter-clockwise B-H trajectory.
// Returns 0 when the lengths differ or fewer than 3 points are given.
func LoopArea(b, h []float64) float64 {
	n := len(b)
	if n != len(h) || n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += 0.5 * (h[i] + h[j]) * (b[j] - b[i])
	}
	return area
}
