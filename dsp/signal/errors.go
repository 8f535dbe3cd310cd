package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/magnet-engine/dsp/core"
)

var (
	// ErrInvalidParameter reports a parameter set the synthesizer cannot
	// evaluate, such as a duty cycle outside (0, 1).
	ErrInvalidParameter = errors.New("invalid waveform parameter")

	// ErrDegenerateWaveform marks an all-zero excitation. No prediction
	// should be run for it.
	ErrDegenerateWaveform = errors.New("degenerate waveform")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

func validateAmplitude(amplitude float64) error {
	if !core.IsFinite(amplitude) || amplitude <= 0 {
		return invalidf("amplitude must be > 0: %f", amplitude)
	}
	return nil
}

func validatePhase(phase float64) error {
	if !core.IsFinite(phase) {
		return invalidf("phase must be finite: %f", phase)
	}
	return nil
}

func validateDuty(name string, duty float64) error {
	if !core.IsFinite(duty) || duty <= 0 || duty >= 1 {
		return invalidf("%s must be in (0,1): %f", name, duty)
	}
	return nil
}

func validateTime(time []float64) error {
	if len(time) == 0 {
		return invalidf("time base must not be empty")
	}
	for i, t := range time {
		if !core.IsFinite(t) {
			return invalidf("time[%d] is not finite: %f", i, t)
		}
	}
	return nil
}

// IsDegenerate reports whether b carries no excitation at all.
// Empty and all-zero sequences are degenerate.
func IsDegenerate(b []float64) bool {
	return core.AllZero(b)
}

// CheckDegenerate returns [ErrDegenerateWaveform] when b is degenerate.
func CheckDegenerate(b []float64) error {
	if IsDegenerate(b) {
		return fmt.Errorf("%w: %d samples are all zero", ErrDegenerateWaveform, len(b))
	}
	return nil
}
