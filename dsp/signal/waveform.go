package signal

import (
	"math"

	"github.com/cwbudde/magnet-engine/dsp/core"
)

// Waveform is one cycle of a periodic excitation defined over the
// fractional cycle position.
type Waveform interface {
	// Validate reports whether the parameters can be evaluated.
	Validate() error
	// At evaluates the waveform at fractional cycle position t.
	// Callers must validate first.
	At(t float64) float64
}

// Sample evaluates w at every point of time.
func Sample(w Waveform, time []float64) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := validateTime(time); err != nil {
		return nil, err
	}
	out := make([]float64, len(time))
	for i, t := range time {
		out[i] = w.At(t)
	}
	return out, nil
}

// SineShape is a sinusoid starting at phase degrees.
type SineShape struct {
	Amplitude float64
	Phase     float64 // degrees
}

// Validate checks amplitude and phase.
func (s SineShape) Validate() error {
	if err := validateAmplitude(s.Amplitude); err != nil {
		return err
	}
	return validatePhase(s.Phase)
}

// At returns Amplitude·sin((360·t + Phase)·π/180).
func (s SineShape) At(t float64) float64 {
	return s.Amplitude * math.Sin((360*t+s.Phase)*math.Pi/180)
}

// TriangleShape rises from -Amplitude to +Amplitude over Duty of the cycle
// and falls back over the remaining 1-Duty.
type TriangleShape struct {
	Amplitude float64
	Phase     float64 // degrees
	Duty      float64 // rising fraction, (0,1)
}

// Validate checks amplitude, phase and duty.
func (s TriangleShape) Validate() error {
	if err := validateAmplitude(s.Amplitude); err != nil {
		return err
	}
	if err := validatePhase(s.Phase); err != nil {
		return err
	}
	return validateDuty("duty", s.Duty)
}

// TroughOffset is the fractional cycle position of the trough.
func (s TriangleShape) TroughOffset() float64 {
	return core.WrapDegrees(-s.Phase-s.Duty*180) / 360
}

// At evaluates the triangle at fractional cycle position t.
func (s TriangleShape) At(t float64) float64 {
	return s.canonical(core.Frac(t - s.TroughOffset()))
}

// canonical is the trough-anchored shape: rise on [0, Duty], fall on (Duty, 1).
// The clamp keeps rounding at the corners from overshooting ±Amplitude.
func (s TriangleShape) canonical(x float64) float64 {
	a, d := s.Amplitude, s.Duty
	if x <= d {
		return core.Clamp(-a+x*(2*a)/d, -a, a)
	}
	return core.Clamp(a-(x-d)*(2*a)/(1-d), -a, a)
}

// TrapezoidShape rises over Duty1, dwells at +Amplitude, falls over Duty2 and
// dwells at -Amplitude. Both dwells last (1-Duty1-Duty2)/2.
type TrapezoidShape struct {
	Amplitude float64
	Phase     float64 // degrees
	Duty1     float64 // rising fraction
	Duty2     float64 // falling fraction
}

// Validate checks amplitude, phase, both duties and that the transitions
// leave room for the dwell segments.
func (s TrapezoidShape) Validate() error {
	if err := validateAmplitude(s.Amplitude); err != nil {
		return err
	}
	if err := validatePhase(s.Phase); err != nil {
		return err
	}
	if err := validateDuty("duty1", s.Duty1); err != nil {
		return err
	}
	if err := validateDuty("duty2", s.Duty2); err != nil {
		return err
	}
	if s.Duty1+s.Duty2 >= 1 {
		return invalidf("duty1+duty2 must be < 1: %f", s.Duty1+s.Duty2)
	}
	return nil
}

// Dwell is the duration of each flat segment.
func (s TrapezoidShape) Dwell() float64 {
	return (1 - s.Duty1 - s.Duty2) / 2
}

// TroughOffset is the fractional cycle position where the rising edge
// leaves the trough.
func (s TrapezoidShape) TroughOffset() float64 {
	return core.WrapDegrees(-s.Phase-s.Duty1*180) / 360
}

// At evaluates the trapezoid at fractional cycle position t.
func (s TrapezoidShape) At(t float64) float64 {
	return s.canonical(core.Frac(t - s.TroughOffset()))
}

// canonical is the trough-anchored shape: rise, peak dwell, fall, trough dwell.
func (s TrapezoidShape) canonical(x float64) float64 {
	a, d1, d2 := s.Amplitude, s.Duty1, s.Duty2
	dw := s.Dwell()
	switch {
	case x <= d1:
		return core.Clamp(-a+x*(2*a)/d1, -a, a)
	case x <= d1+dw:
		return a
	case x <= d1+dw+d2:
		return core.Clamp(a-(x-(d1+dw))*(2*a)/d2, -a, a)
	default:
		return -a
	}
}

// Sinusoidal samples a sine wave over time.
func Sinusoidal(time []float64, amplitude, phase float64) ([]float64, error) {
	return Sample(SineShape{Amplitude: amplitude, Phase: phase}, time)
}

// Triangular samples a triangular wave over time. Duty is the rising
// fraction of the cycle and must lie in (0, 1).
func Triangular(time []float64, amplitude, phase, duty float64) ([]float64, error) {
	return Sample(TriangleShape{Amplitude: amplitude, Phase: phase, Duty: duty}, time)
}

// Trapezoidal samples a trapezoidal wave over time. duty1 and duty2 are the
// rising and falling fractions; their sum must be < 1.
func Trapezoidal(time []float64, amplitude, phase, duty1, duty2 float64) ([]float64, error) {
	return Sample(TrapezoidShape{Amplitude: amplitude, Phase: phase, Duty1: duty1, Duty2: duty2}, time)
}
