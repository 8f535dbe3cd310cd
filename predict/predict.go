package predict

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownModel reports a model name that is not in the catalog.
	ErrUnknownModel = errors.New("predict: unknown model")
	// ErrUnknownMaterial reports a material name that is not in the catalog.
	ErrUnknownMaterial = errors.New("predict: unknown material")
	// ErrBadResponse reports a prediction that cannot be used downstream.
	ErrBadResponse = errors.New("predict: bad response")
)

// Prediction is the model output for one excitation cycle.
type Prediction struct {
	LossDensity float64   // W/m³
	H           []float64 // A/m, one value per B sample
}

// Predictor runs a loss model.
type Predictor interface {
	Predict(ctx context.Context, bTesla []float64, freqHz, tempC float64) (Prediction, error)
}

// Func adapts a plain function to [Predictor].
type Func func(ctx context.Context, bTesla []float64, freqHz, tempC float64) (Prediction, error)

// Predict calls f.
func (f Func) Predict(ctx context.Context, bTesla []float64, freqHz, tempC float64) (Prediction, error) {
	return f(ctx, bTesla, freqHz, tempC)
}

// Validate checks that p pairs with an input of n samples and holds only
// finite values.
func (p Prediction) Validate(n int) error {
	if len(p.H) != n {
		return fmt.Errorf("%w: H has %d samples, want %d", ErrBadResponse, len(p.H), n)
	}
	if math.IsNaN(p.LossDensity) || math.IsInf(p.LossDensity, 0) || p.LossDensity < 0 {
		return fmt.Errorf("%w: loss density %v", ErrBadResponse, p.LossDensity)
	}
	for i, h := range p.H {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("%w: H[%d] is %v", ErrBadResponse, i, h)
		}
	}
	return nil
}
