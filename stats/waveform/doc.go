// Package waveform summarizes one sampled excitation or response cycle:
// extrema and their positions, mean, RMS, zero crossings, and the enclosed
// area of a closed B-H loop.
package waveform
