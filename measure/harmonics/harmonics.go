package harmonics

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const defaultMaxHarmonics = 15

// Result holds the harmonic decomposition of one period.
//
//nolint:revive
type Result struct {
	DC          float64
	Fundamental float64   // peak amplitude of the first harmonic
	Harmonics   []float64 // peak amplitudes; index 0 is the fundamental
	Phases      []float64 // degrees, sine convention, same indexing as Harmonics
	THD         float64   // sqrt(sum of squared harmonics 2..N) / fundamental
	THD_dB      float64
	OddHD       float64 // same as THD restricted to odd harmonics >= 3
	EvenHD      float64 // same as THD restricted to even harmonics
}

// Analyze decomposes one period into its first maxHarmonics harmonics.
// maxHarmonics <= 0 selects a default; it is capped below the Nyquist bin.
//
//nolint:funlen
func Analyze(period []float64, maxHarmonics int) (Result, error) {
	n := len(period)
	if n < 4 || n&(n-1) != 0 {
		return Result{}, fmt.Errorf("harmonics period length must be a power of two >= 4: %d", n)
	}
	if maxHarmonics <= 0 {
		maxHarmonics = defaultMaxHarmonics
	}
	if maxHarmonics > n/2-1 {
		maxHarmonics = n/2 - 1
	}

	in := make([]complex128, n)
	for i, v := range period {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("harmonics fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("harmonics fft: %w", err)
	}

	re := make([]float64, maxHarmonics)
	im := make([]float64, maxHarmonics)
	for k := 1; k <= maxHarmonics; k++ {
		re[k-1] = real(out[k])
		im[k-1] = imag(out[k])
	}

	amps := make([]float64, maxHarmonics)
	vecmath.Magnitude(amps, re, im)

	scale := 2 / float64(n)
	phases := make([]float64, maxHarmonics)
	for i := range amps {
		amps[i] *= scale
		// X[k] = -j·N/2·A·e^{jφ} for A·sin(kθ+φ).
		phases[i] = math.Atan2(re[i], -im[i]) * 180 / math.Pi
	}

	res := Result{
		DC:        real(out[0]) / float64(n),
		Harmonics: amps,
		Phases:    phases,
		THD_dB:    math.Inf(-1),
	}
	res.Fundamental = amps[0]
	if res.Fundamental == 0 {
		return res, nil
	}

	var odd, even float64
	for i := 1; i < len(amps); i++ {
		p := amps[i] * amps[i]
		if (i+1)%2 == 0 {
			even += p
		} else {
			odd += p
		}
	}

	res.THD = math.Sqrt(odd+even) / res.Fundamental
	res.OddHD = math.Sqrt(odd) / res.Fundamental
	res.EvenHD = math.Sqrt(even) / res.Fundamental
	if res.THD > 0 {
		res.THD_dB = 20 * math.Log10(res.THD)
	}
	return res, nil
}
