package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// WrapDegrees reduces an angle into [0, 360) with floor semantics, so
// negative angles wrap from the top of the range.
func WrapDegrees(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	// -tiny + 360 rounds to 360.
	if w >= 360 {
		w = 0
	}

	return w
}

// Frac returns x - floor(x), the position of x inside its unit cycle.
// The result is in [0, 1).
func Frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}

	return f
}

// IsFinite reports whether x is neither NaN nor Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
