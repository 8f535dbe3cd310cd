// Package plot maps data series onto pixel rectangles for the desktop
// viewer. It has no graphics dependency.
package plot

import (
	"image"
	"math"
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Range is a closed data interval.
type Range struct {
	Min, Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Bounds returns the range of data widened by pad·span on both sides. An
// empty or flat series gets a unit range around its value.
func Bounds(data []float64, pad float64) Range {
	if len(data) == 0 {
		return Range{Min: -1, Max: 1}
	}
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	if r.Min > r.Max {
		return Range{Min: -1, Max: 1}
	}
	if r.Span() == 0 {
		return Range{Min: r.Min - 1, Max: r.Max + 1}
	}
	p := r.Span() * pad
	return Range{Min: r.Min - p, Max: r.Max + p}
}

// Symmetric returns the range ±max(|Min|,|Max|) of r.
func Symmetric(r Range) Range {
	m := math.Max(math.Abs(r.Min), math.Abs(r.Max))
	return Range{Min: -m, Max: m}
}

// Project maps (x,y) pairs into rect. y grows upward in data space and
// downward on screen. Pairs beyond the shorter slice are ignored.
func Project(xs, ys []float64, xr, yr Range, rect image.Rectangle) []Point {
	n := min(len(xs), len(ys))
	if n == 0 || rect.Empty() {
		return nil
	}

	w := float64(rect.Dx() - 1)
	h := float64(rect.Dy() - 1)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{
			X: float64(rect.Min.X) + scale(xs[i], xr)*w,
			Y: float64(rect.Max.Y-1) - scale(ys[i], yr)*h,
		}
	}
	return pts
}

// Index returns 0..n-1 as float64, the x axis of a series plotted by
// sample index.
func Index(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func scale(v float64, r Range) float64 {
	if r.Span() == 0 || math.IsNaN(v) {
		return 0.5
	}
	t := (v - r.Min) / r.Span()
	return math.Max(0, math.Min(1, t))
}
