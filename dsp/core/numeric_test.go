package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 90, want: 90},
		{in: 360, want: 0},
		{in: 450, want: 90},
		{in: -90, want: 270},
		{in: -360, want: 0},
		{in: -720.5, want: 359.5},
		{in: -1e-14, want: 0},
	}

	for _, tt := range tests {
		got := WrapDegrees(tt.in)
		if !NearlyEqual(got, tt.want, 1e-9) {
			t.Fatalf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("WrapDegrees(%v) = %v outside [0,360)", tt.in, got)
		}
	}
}

func TestFrac(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 0.25, want: 0.25},
		{in: 1, want: 0},
		{in: -0.25, want: 0.75},
		{in: 2.5, want: 0.5},
		{in: -1e-18, want: 0},
	}

	for _, tt := range tests {
		got := Frac(tt.in)
		if got != tt.want {
			t.Fatalf("Frac(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) {
		t.Fatal("1 should be finite")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatalf("%v should not be finite", v)
		}
	}
}
