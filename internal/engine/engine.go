package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/magnet-engine/dsp/core"
	"github.com/cwbudde/magnet-engine/dsp/resample"
	"github.com/cwbudde/magnet-engine/dsp/signal"
	"github.com/cwbudde/magnet-engine/measure/harmonics"
	"github.com/cwbudde/magnet-engine/predict"
	"github.com/cwbudde/magnet-engine/stats/waveform"
)

// ErrNoPredictor reports a render that needs a prediction but has no
// predictor configured.
var ErrNoPredictor = errors.New("engine: no predictor configured")

const (
	defaultHarmonics = 15
	seamTolerance    = 1e-9
)

// Engine turns an operating point into a rendered prediction. It holds no
// per-render state and is safe for concurrent use when its predictors are.
type Engine struct {
	fixed     predict.Predictor
	cache     *predict.Cache
	logger    *slog.Logger
	harmonics int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPredictor uses p for every model and material.
func WithPredictor(p predict.Predictor) Option {
	return func(e *Engine) {
		e.fixed = p
	}
}

// WithCache resolves predictors per model and material through c.
// A predictor set with WithPredictor takes precedence.
func WithCache(c *predict.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHarmonics sets how many harmonics of B are analyzed.
func WithHarmonics(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.harmonics = n
		}
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		harmonics: defaultHarmonics,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Engine) predictor(ctx context.Context, model predict.Model, material string) (predict.Predictor, error) {
	if e.fixed != nil {
		return e.fixed, nil
	}
	if e.cache != nil {
		return e.cache.Get(ctx, model.Name, material)
	}
	return nil, ErrNoPredictor
}

// Synthesize returns the time base and the B waveform in mT for p on the
// sample grid of model.
func Synthesize(p Params, model predict.Model) (time, b []float64, err error) {
	gen := signal.NewGenerator(core.WithResolution(model.Resolution))
	time, err = gen.TimeBase()
	if err != nil {
		return nil, nil, err
	}

	switch p.Shape {
	case signal.ShapeSinusoidal:
		b, err = signal.Sinusoidal(time, p.Amplitude, p.Phase)
	case signal.ShapeTriangular:
		b, err = signal.Triangular(time, p.Amplitude, p.Phase, p.Duty)
	case signal.ShapeTrapezoidal:
		b, err = signal.Trapezoidal(time, p.Amplitude, p.Phase, p.Duty, p.Duty2)
	case signal.ShapeCustom:
		b, err = uploadCycle(p.Upload, len(time))
	default:
		err = fmt.Errorf("engine: unsupported shape %v", p.Shape)
	}
	if err != nil {
		return nil, nil, err
	}
	return time, b, nil
}

// uploadCycle decimates an uploaded cycle in tesla onto n samples in mT.
// A missing or single-sample upload yields an all-zero cycle.
func uploadCycle(upload []float64, n int) ([]float64, error) {
	for i, v := range upload {
		if !core.IsFinite(v) {
			return nil, fmt.Errorf("%w: upload[%d] is not finite: %v", signal.ErrInvalidParameter, i, v)
		}
	}
	if len(upload) < 2 {
		return make([]float64, n), nil
	}

	b, err := resample.Decimate(upload, n)
	if err != nil {
		return nil, err
	}
	for i := range b {
		b[i] *= 1000
	}
	return b, nil
}

// Render synthesizes B, runs the prediction and derives the loop, the
// statistics and the B spectrum. An all-zero B skips the predictor and
// yields an unknown loss with H all zero.
func (e *Engine) Render(ctx context.Context, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	model, err := predict.LookupModel(p.Model)
	if err != nil {
		return Result{}, err
	}
	material, err := predict.LookupMaterial(p.Material)
	if err != nil {
		return Result{}, err
	}
	p.Model, p.Material = model.Name, material

	time, b, err := Synthesize(p, model)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Params: p,
		Time:   time,
		B:      b,
	}

	if err := signal.CheckDegenerate(b); err != nil {
		e.logger.Info("prediction skipped", "shape", p.Shape, "err", err)
		res.Skipped = err
		res.H = make([]float64, len(b))
		return e.finish(res)
	}

	pred, err := e.predictor(ctx, model, material)
	if err != nil {
		return Result{}, err
	}

	bT := toTesla(b)
	freqHz := p.Frequency * 1000
	e.logger.Debug("predict",
		"model", model.Name, "material", material,
		"samples", len(bT), "freq_hz", freqHz, "temp_c", p.Temperature)

	out, err := pred.Predict(ctx, bT, freqHz, p.Temperature)
	if err != nil {
		return Result{}, fmt.Errorf("engine: predict: %w", err)
	}
	if err := out.Validate(len(bT)); err != nil {
		return Result{}, err
	}

	res.H = out.H
	res.LossDensity = out.LossDensity
	res.LossKnown = true
	res.LoopLoss = freqHz * waveform.LoopArea(bT, out.H)
	return e.finish(res)
}

func (e *Engine) finish(res Result) (Result, error) {
	res.LoopB = closeLoop(res.B)
	res.LoopH = closeLoop(res.H)
	res.BStats = waveform.Calculate(res.B)
	res.HStats = waveform.Calculate(res.H)

	spec, err := e.spectrum(res.B, res.Params.Shape == signal.ShapeCustom)
	if err != nil {
		return Result{}, err
	}
	res.Spectrum = spec

	e.logger.Debug("rendered",
		"shape", res.Params.Shape, "loss", res.LossLabel(),
		"b_peak", res.BStats.Peak, "thd", res.Spectrum.THD)
	return res, nil
}

// spectrum analyzes one period of b. Synthesized cycles repeat their first
// sample at the end; uploaded cycles were decimated without it. A repeated
// seam sample is dropped so the period is not counted twice.
func (e *Engine) spectrum(b []float64, periodic bool) (harmonics.Result, error) {
	period := b
	if !periodic && len(b) > 1 && core.NearlyEqual(b[0], b[len(b)-1], seamTolerance) {
		period = b[:len(b)-1]
	}
	grid, err := resample.Linear(period, nextPow2(len(period)), true)
	if err != nil {
		return harmonics.Result{}, err
	}
	return harmonics.Analyze(grid, e.harmonics)
}

func toTesla(mT []float64) []float64 {
	out := make([]float64, len(mT))
	for i, v := range mT {
		out[i] = v * 1e-3
	}
	return out
}

func closeLoop(x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	out := make([]float64, len(x)+1)
	copy(out, x)
	out[len(x)] = x[0]
	return out
}

func nextPow2(n int) int {
	p := 4
	for p < n {
		p <<= 1
	}
	return p
}
