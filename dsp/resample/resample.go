package resample

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooShort indicates the input holds too few samples to resample.
var ErrTooShort = errors.New("resample: input too short")

// Decimate picks n samples from row at indices int(k·(len-1)/n), k = 0..n-1.
//
// The last input sample is never selected; uploads are expected to repeat
// the first sample there. When row is shorter than n, samples repeat.
func Decimate(row []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("resample samples must be > 0: %d", n)
	}
	if len(row) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrTooShort, len(row))
	}

	step := float64(len(row)-1) / float64(n)
	out := make([]float64, n)
	for k := range out {
		idx := int(float64(k) * step)
		if idx > len(row)-2 {
			idx = len(row) - 2
		}
		out[k] = row[idx]
	}
	return out, nil
}

// Linear resamples src to n points by linear interpolation.
//
// With periodic set, src is treated as one cycle on a grid that excludes the
// seam: output j sits at source position j·len(src)/n and the segment after
// the last sample interpolates back to src[0]. Otherwise both endpoints are
// kept and output j sits at j·(len(src)-1)/(n-1).
func Linear(src []float64, n int, periodic bool) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("resample samples must be > 0: %d", n)
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrTooShort)
	}

	out := make([]float64, n)
	if len(src) == 1 {
		for i := range out {
			out[i] = src[0]
		}
		return out, nil
	}

	var ratio float64
	switch {
	case periodic:
		ratio = float64(len(src)) / float64(n)
	case n > 1:
		ratio = float64(len(src)-1) / float64(n-1)
	}

	last := len(src) - 1
	for j := range out {
		pos := float64(j) * ratio
		i0 := int(math.Floor(pos))
		frac := pos - float64(i0)

		var x0, x1 float64
		if periodic {
			i0 %= len(src)
			x0, x1 = src[i0], src[(i0+1)%len(src)]
		} else {
			if i0 >= last {
				out[j] = src[last]
				continue
			}
			x0, x1 = src[i0], src[i0+1]
		}
		out[j] = x0 + frac*(x1-x0)
	}
	return out, nil
}
