package signal

import "github.com/cwbudde/magnet-engine/dsp/core"

// Generator samples waveforms on a shared time base.
type Generator struct {
	cfg core.SamplingConfig
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...core.SamplingOption) *Generator {
	return &Generator{cfg: core.ApplySamplingOptions(opts...)}
}

// Config returns the generator sampling configuration.
func (g *Generator) Config() core.SamplingConfig {
	return g.cfg
}

// TimeBase returns the configured sample positions.
func (g *Generator) TimeBase() ([]float64, error) {
	if g.cfg.Endpoint {
		return Linspace(g.cfg.Resolution)
	}
	return CycleTime(g.cfg.Resolution)
}

// Generate samples w on the configured time base and returns both.
func (g *Generator) Generate(w Waveform) (time, b []float64, err error) {
	time, err = g.TimeBase()
	if err != nil {
		return nil, nil, err
	}
	b, err = Sample(w, time)
	if err != nil {
		return nil, nil, err
	}
	return time, b, nil
}
