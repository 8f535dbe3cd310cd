package testutil

import "math"

// floorMod matches the sign convention of a floored modulo: the result takes
// the sign of the divisor.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// PiecewiseTriangle is the branch-per-regime triangular generator used as a
// test oracle. It classifies each sample against the segment boundaries with
// <= comparisons, earlier segments winning ties.
func PiecewiseTriangle(time []float64, amplitude, phase, duty float64) []float64 {
	out := make([]float64, len(time))
	p := floorMod(-phase-duty*180, 360) / 360
	a2 := 2 * amplitude

	for i, t := range time {
		if duty+p <= 1 {
			switch {
			case t <= p:
				out[i] = -amplitude + (p-t)*a2/(1-duty)
			case t <= p+duty:
				out[i] = -amplitude + (t-p)*a2/duty
			default:
				out[i] = amplitude - (t-p-duty)*a2/(1-duty)
			}
			continue
		}

		peak := p - (1 - duty)
		switch {
		case t <= peak:
			out[i] = amplitude - (peak-t)*a2/duty
		case t <= p:
			out[i] = amplitude - (t-peak)*a2/(1-duty)
		default:
			out[i] = -amplitude + (t-p)*a2/duty
		}
	}
	return out
}

// PiecewiseTrapezoid is the four-regime trapezoidal generator used as a test
// oracle. The regime is picked by where the t=0/t=1 seam falls.
//
//nolint:cyclop
func PiecewiseTrapezoid(time []float64, amplitude, phase, duty1, duty2 float64) []float64 {
	out := make([]float64, len(time))
	p := floorMod(-phase-duty1*180, 360) / 360
	dw := (1 - duty1 - duty2) / 2
	a2 := 2 * amplitude

	for i, t := range time {
		switch {
		case p <= dw:
			switch {
			case t <= p:
				out[i] = -amplitude
			case t <= p+duty1:
				out[i] = -amplitude + (t-p)*a2/duty1
			case t <= p+duty1+dw:
				out[i] = amplitude
			case t <= p+duty1+dw+duty2:
				out[i] = amplitude - (t-(p+duty1+dw))*a2/duty2
			default:
				out[i] = -amplitude
			}
		case p <= dw+duty2:
			switch {
			case t <= p-dw:
				out[i] = -amplitude + ((p-dw)-t)*a2/duty2
			case t <= p:
				out[i] = -amplitude
			case t <= p+duty1:
				out[i] = -amplitude + (t-p)*a2/duty1
			case t <= p+duty1+dw:
				out[i] = amplitude
			default:
				out[i] = amplitude - (t-(p+duty1+dw))*a2/duty2
			}
		case p <= 2*dw+duty2:
			switch {
			case t <= p-dw-duty2:
				out[i] = amplitude
			case t <= p-dw:
				out[i] = amplitude - (t-(p-dw-duty2))*a2/duty2
			case t <= p:
				out[i] = -amplitude
			case t <= p+duty1:
				out[i] = -amplitude + (t-p)*a2/duty1
			default:
				out[i] = amplitude
			}
		default:
			switch {
			case t <= p-2*dw-duty2:
				out[i] = amplitude - ((p-2*dw-duty2)-t)*a2/duty1
			case t <= p-dw-duty2:
				out[i] = amplitude
			case t <= p-dw:
				out[i] = amplitude - (t-(p-dw-duty2))*a2/duty2
			case t <= p:
				out[i] = -amplitude
			default:
				out[i] = -amplitude + (t-p)*a2/duty1
			}
		}
	}
	return out
}
