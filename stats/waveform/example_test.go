package waveform_test

import (
	"fmt"

	"github.com/cwbudde/magnet-engine/stats/waveform"
)

func ExampleCalculate() {
	s := waveform.Calculate([]float64{0, 100, 0, -100})
	fmt.Printf("max=%.0f@%d min=%.0f@%d p2p=%.0f rms=%.2f\n", s.Max, s.MaxPos, s.Min, s.MinPos, s.PeakToPeak, s.RMS)

	// Output:
	// max=100@1 min=-100@3 p2p=200 rms=70.71
}
