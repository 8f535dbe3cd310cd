package core

import "testing"

func TestAllZero(t *testing.T) {
	tests := []struct {
		name string
		buf  []float64
		want bool
	}{
		{name: "empty", buf: nil, want: true},
		{name: "zeros", buf: []float64{0, 0, 0}, want: true},
		{name: "negative zero", buf: []float64{0, -0.0}, want: true},
		{name: "tiny", buf: []float64{0, 1e-300}, want: false},
		{name: "cancelling", buf: []float64{1, -1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllZero(tt.buf); got != tt.want {
				t.Fatalf("AllZero() = %v, want %v", got, tt.want)
			}
		})
	}
}
