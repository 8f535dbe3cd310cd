package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/magnet-engine/dsp/signal"
	"github.com/cwbudde/magnet-engine/predict"
)

// Operating ranges offered by the front-ends.
const (
	MinAmplitude   = 10.0  // mT
	MaxAmplitude   = 300.0 // mT
	MinFrequency   = 10.0  // kHz
	MaxFrequency   = 450.0 // kHz
	MinTemperature = 25.0  // °C
	MaxTemperature = 90.0  // °C
)

// ErrOutOfRange reports an operating point outside the supported ranges.
var ErrOutOfRange = errors.New("engine: parameter out of range")

// Params is one operating point as entered by the user.
type Params struct {
	Model    string
	Material string

	Shape     signal.Shape
	Amplitude float64 // mT
	Phase     float64 // degrees
	Duty      float64 // triangular duty, trapezoidal rising duty
	Duty2     float64 // trapezoidal falling duty

	Frequency   float64 // kHz
	Temperature float64 // °C

	// Upload is the custom cycle in tesla, used when Shape is ShapeCustom.
	Upload []float64
}

// DefaultParams returns the operating point the front-ends start with.
func DefaultParams() Params {
	return Params{
		Model:       predict.DefaultModel().Name,
		Material:    predict.DefaultMaterial(),
		Shape:       signal.ShapeSinusoidal,
		Amplitude:   100,
		Phase:       0,
		Duty:        0.4,
		Duty2:       0.3,
		Frequency:   100,
		Temperature: 25,
	}
}

func inRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %s must be in [%g,%g]: %g", ErrOutOfRange, name, lo, hi, v)
	}
	return nil
}

// Validate checks the operating ranges. Waveform shape parameters are
// checked by the synthesizer.
func (p Params) Validate() error {
	if err := inRange("frequency", p.Frequency, MinFrequency, MaxFrequency); err != nil {
		return err
	}
	if err := inRange("temperature", p.Temperature, MinTemperature, MaxTemperature); err != nil {
		return err
	}
	switch p.Shape {
	case signal.ShapeSinusoidal, signal.ShapeTriangular, signal.ShapeTrapezoidal:
		return inRange("amplitude", p.Amplitude, MinAmplitude, MaxAmplitude)
	case signal.ShapeCustom:
		// A missing upload renders as a degenerate cycle.
		return nil
	default:
		return fmt.Errorf("%w: shape %v", ErrOutOfRange, p.Shape)
	}
}

// Gauge maps v onto a 0..100 percentage of [lo,hi], rounded to the nearest
// integer. The remainder 100-Gauge fills the rest of a donut chart.
func Gauge(v, lo, hi float64) int {
	if hi <= lo {
		return 0
	}
	r := int(math.Round((v - lo) / (hi - lo) * 100))
	switch {
	case r < 0:
		return 0
	case r > 100:
		return 100
	}
	return r
}

// FrequencyGauge is the donut ratio of the frequency.
func (p Params) FrequencyGauge() int {
	return Gauge(p.Frequency, MinFrequency, MaxFrequency)
}

// TemperatureGauge is the donut ratio of the temperature.
func (p Params) TemperatureGauge() int {
	return Gauge(p.Temperature, MinTemperature, MaxTemperature)
}

// Patch is a partial update of Params. Nil fields are left unchanged.
type Patch struct {
	Model       *string
	Material    *string
	Shape       *string
	Amplitude   *float64
	Phase       *float64
	Duty        *float64
	Duty2       *float64
	Frequency   *float64
	Temperature *float64
}

// Apply returns p with patch applied. On error p is returned unchanged.
func (p Params) Apply(patch Patch) (Params, error) {
	next := p
	if patch.Shape != nil {
		s, err := signal.ParseShape(*patch.Shape)
		if err != nil {
			return p, err
		}
		next.Shape = s
	}

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setNum := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&next.Model, patch.Model)
	setStr(&next.Material, patch.Material)
	setNum(&next.Amplitude, patch.Amplitude)
	setNum(&next.Phase, patch.Phase)
	setNum(&next.Duty, patch.Duty)
	setNum(&next.Duty2, patch.Duty2)
	setNum(&next.Frequency, patch.Frequency)
	setNum(&next.Temperature, patch.Temperature)
	return next, nil
}
