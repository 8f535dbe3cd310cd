package core

// SamplingConfig defines how one excitation cycle is sampled.
type SamplingConfig struct {
	// Resolution is the number of samples per cycle.
	Resolution int
	// Endpoint includes t=1 as the last sample (linspace convention).
	// When false the grid is periodic and ends at 1-1/Resolution.
	Endpoint bool
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns the 1024-point linspace grid used by the
// high-resolution loss models.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Resolution: 1024,
		Endpoint:   true,
	}
}

// WithResolution sets the samples per cycle.
func WithResolution(n int) SamplingOption {
	return func(cfg *SamplingConfig) {
		if n > 0 {
			cfg.Resolution = n
		}
	}
}

// WithEndpoint selects between the linspace grid (true) and the periodic grid (false).
func WithEndpoint(endpoint bool) SamplingOption {
	return func(cfg *SamplingConfig) {
		cfg.Endpoint = endpoint
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
