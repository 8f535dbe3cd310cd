// Package signal synthesizes one cycle of the periodic flux-density
// excitations fed to the core-loss models.
//
// Three families are available:
//
//   - [SineShape]:      B(t) = A·sin(360°·t + φ)
//   - [TriangleShape]:  rising edge over Duty of the cycle, falling edge over the rest
//   - [TrapezoidShape]: rising edge (Duty1), peak dwell, falling edge (Duty2), trough dwell
//
// Every family is defined by a canonical zero-phase shape over the fractional
// cycle position x in [0, 1). Sampling a time base evaluates the canonical
// shape at (t - offset) mod 1, where offset is derived from the user-facing
// phase. For the piecewise-linear families the offset places the trough:
//
//	offset = ((-φ - Duty·180) mod 360) / 360
//
// so φ = 0 aligns the rising zero crossing with t = 0, matching the sine.
//
// # Usage
//
//	t, _ := signal.Linspace(1024)
//	b, err := signal.Triangular(t, 100, 0, 0.4)
//	if errors.Is(err, signal.ErrInvalidParameter) {
//	    // duty outside (0, 1)
//	}
//
// Invalid parameters are rejected with [ErrInvalidParameter] instead of
// producing NaN or Inf samples. Generated values are always finite.
package signal
