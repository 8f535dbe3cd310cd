// Package harmonics measures the harmonic content of one excitation cycle.
//
// Core losses grow with the harmonic content of the flux waveform, so the
// engine reports the per-harmonic amplitudes and total harmonic distortion
// of every synthesized or uploaded B(t) next to the predicted loss.
//
// The input must hold exactly one period on a periodic grid (no repeated
// seam sample) with a power-of-two length:
//
//	t, _ := signal.CycleTime(1024)
//	b, _ := signal.Triangular(t, 100, 0, 0.5)
//	res, _ := harmonics.Analyze(b, 9)
//	// res.Harmonics[0] ≈ 8·100/π², res.Harmonics[2] ≈ res.Harmonics[0]/9
package harmonics
