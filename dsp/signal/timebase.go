package signal

import "fmt"

// Linspace returns n evenly spaced fractions of a cycle from 0 to 1 inclusive.
// The last sample repeats the seam, so a plotted waveform closes on itself.
func Linspace(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace samples must be > 0: %d", n)
	}
	out := make([]float64, n)
	if n == 1 {
		return out, nil
	}
	step := 1 / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = 1
	return out, nil
}

// CycleTime returns n evenly spaced fractions of a cycle covering [0, 1).
// Sample i sits at i/n, so the grid is exactly periodic.
func CycleTime(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cycle samples must be > 0: %d", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n)
	}
	return out, nil
}
