package signal_test

import (
	"fmt"

	"github.com/cwbudde/magnet-engine/dsp/signal"
)

func ExampleTriangular() {
	t, err := signal.Linspace(5)
	if err != nil {
		panic(err)
	}
	b, err := signal.Triangular(t, 100, 0, 0.5)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", b[0], b[1], b[2], b[3], b[4])

	// Output:
	// 0 100 0 -100 0
}

func ExampleTrapezoidal() {
	t, err := signal.CycleTime(8)
	if err != nil {
		panic(err)
	}
	// Quarter-cycle rise, dwell, fall and dwell.
	b, err := signal.Trapezoidal(t, 1, 0, 0.25, 0.25)
	if err != nil {
		panic(err)
	}

	for _, v := range b {
		fmt.Printf("%.0f ", v)
	}
	fmt.Println()

	// Output:
	// 0 1 1 1 0 -1 -1 -1
}
