package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cwbudde/magnet-engine/dsp/signal"
	"github.com/cwbudde/magnet-engine/internal/engine"
	"github.com/cwbudde/magnet-engine/internal/plot"
	"github.com/cwbudde/magnet-engine/predict"
	"github.com/cwbudde/magnet-engine/table"
)

var (
	bgColor     = color.RGBA{24, 24, 32, 255}
	panelColor  = color.RGBA{36, 38, 50, 255}
	axisColor   = color.RGBA{70, 74, 92, 255}
	bColor      = color.RGBA{80, 170, 255, 255}
	hColor      = color.RGBA{255, 140, 60, 255}
	loopColor   = color.RGBA{140, 230, 120, 255}
	gaugeColor  = color.RGBA{0, 120, 200, 255}
	gaugeTrough = color.RGBA{50, 54, 68, 255}
)

type renderDone struct {
	gen int
	res engine.Result
	err error
}

type viewer struct {
	eng     *engine.Engine
	logger  *slog.Logger
	csvPath string

	params engine.Params
	gen    int
	cancel context.CancelFunc
	done   chan renderDone

	res     engine.Result
	hasRes  bool
	pending bool
	status  string

	viewW, viewH int
}

func newViewer(eng *engine.Engine, params engine.Params, csvPath string, logger *slog.Logger) *viewer {
	v := &viewer{
		eng:     eng,
		logger:  logger,
		csvPath: csvPath,
		params:  params,
		done:    make(chan renderDone, 4),
	}
	v.requestRender()
	return v
}

// requestRender starts a render of the current parameters in the
// background, cancelling any render still in flight.
func (v *viewer) requestRender() {
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.gen++
	v.pending = true

	gen, p := v.gen, v.params
	go func() {
		res, err := v.eng.Render(ctx, p)
		v.done <- renderDone{gen: gen, res: res, err: err}
	}()
}

func (v *viewer) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *viewer) pollRenders() {
	for {
		select {
		case d := <-v.done:
			if d.gen != v.gen {
				continue
			}
			v.pending = false
			if d.err != nil {
				v.status = "error: " + d.err.Error()
				v.logger.Warn("render failed", "err", d.err)
				continue
			}
			v.res, v.hasRes = d.res, true
			v.status = ""
		default:
			return
		}
	}
}

func (v *viewer) Update() error {
	v.pollRenders()
	if v.handleKeys() {
		v.requestRender()
	}
	return nil
}

func nudge(x, step, lo, hi float64) float64 {
	x += step
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (v *viewer) handleKeys() bool {
	p := &v.params
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		p.Shape = signal.ShapeSinusoidal
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		p.Shape = signal.ShapeTriangular
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		p.Shape = signal.ShapeTrapezoidal
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		p.Shape = signal.ShapeCustom
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		p.Amplitude = nudge(p.Amplitude, 10, engine.MinAmplitude, engine.MaxAmplitude)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		p.Amplitude = nudge(p.Amplitude, -10, engine.MinAmplitude, engine.MaxAmplitude)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		p.Phase = nudge(p.Phase, 15, 0, 360)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		p.Phase = nudge(p.Phase, -15, 0, 360)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		p.Duty = nudge(p.Duty, 0.05, 0.05, 0.95)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		p.Duty = nudge(p.Duty, -0.05, 0.05, 0.95)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		p.Duty2 = nudge(p.Duty2, 0.05, 0.05, 0.95)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		p.Duty2 = nudge(p.Duty2, -0.05, 0.05, 0.95)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		p.Frequency = nudge(p.Frequency, 10, engine.MinFrequency, engine.MaxFrequency)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		p.Frequency = nudge(p.Frequency, -10, engine.MinFrequency, engine.MaxFrequency)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		p.Temperature = nudge(p.Temperature, 5, engine.MinTemperature, engine.MaxTemperature)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		p.Temperature = nudge(p.Temperature, -5, engine.MinTemperature, engine.MaxTemperature)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		p.Model = nextModel(p.Model)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		p.Material = nextMaterial(p.Material)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		v.export()
		changed = false
	default:
		changed = false
	}
	return changed
}

func nextModel(cur string) string {
	models := predict.Models()
	for i, m := range models {
		if m.Name == cur {
			return models[(i+1)%len(models)].Name
		}
	}
	return models[0].Name
}

func nextMaterial(cur string) string {
	mats := predict.Materials()
	for i, m := range mats {
		if m == cur {
			return mats[(i+1)%len(mats)]
		}
	}
	return mats[0]
}

func (v *viewer) export() {
	if !v.hasRes {
		return
	}
	t, err := v.res.Table()
	if err == nil {
		var f *os.File
		if f, err = os.Create(v.csvPath); err == nil {
			err = table.WriteCSV(f, t)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if err != nil {
		v.status = "export failed: " + err.Error()
		return
	}
	v.status = "exported " + v.csvPath
	v.logger.Info("exported", "path", v.csvPath, "rows", t.Len())
}

func (v *viewer) Layout(outsideW, outsideH int) (int, int) {
	v.viewW = max(outsideW, minWindowW)
	v.viewH = max(outsideH, minWindowH)
	return v.viewW, v.viewH
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	const pad = 12
	statusH := 96
	plotH := v.viewH - statusH - 3*pad
	half := (v.viewW - 3*pad) / 2

	wave := image.Rect(pad, pad, pad+half, pad+plotH)
	loop := image.Rect(2*pad+half, pad, v.viewW-pad, pad+plotH)
	status := image.Rect(pad, 2*pad+plotH, v.viewW-pad, v.viewH-pad)

	for _, r := range []image.Rectangle{wave, loop, status} {
		fillRect(screen, r, panelColor)
	}

	if v.hasRes {
		v.drawWaveforms(screen, wave)
		v.drawLoop(screen, loop)
	}
	v.drawStatus(screen, status)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(dst, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
}

func drawSeries(dst *ebiten.Image, pts []plot.Point, c color.Color) {
	for i := 1; i < len(pts); i++ {
		ebitenutil.DrawLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, c)
	}
}

func drawAxes(dst *ebiten.Image, r image.Rectangle, xr, yr plot.Range) {
	zero := plot.Project([]float64{xr.Min, xr.Max}, []float64{0, 0}, xr, yr, r)
	if len(zero) == 2 {
		ebitenutil.DrawLine(dst, zero[0].X, zero[0].Y, zero[1].X, zero[1].Y, axisColor)
	}
}

func (v *viewer) drawWaveforms(dst *ebiten.Image, r image.Rectangle) {
	inner := r.Inset(8)
	top := image.Rect(inner.Min.X, inner.Min.Y+16, inner.Max.X, inner.Min.Y+inner.Dy()/2)
	bottom := image.Rect(inner.Min.X, inner.Min.Y+inner.Dy()/2+16, inner.Max.X, inner.Max.Y)

	xs := v.res.Time
	xr := plot.Range{Min: 0, Max: 1}

	br := plot.Symmetric(plot.Bounds(v.res.B, 0.1))
	drawAxes(dst, top, xr, br)
	drawSeries(dst, plot.Project(xs, v.res.B, xr, br, top), bColor)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("B(t)  peak %.1f mT", v.res.BStats.Peak), inner.Min.X, inner.Min.Y)

	hr := plot.Symmetric(plot.Bounds(v.res.H, 0.1))
	drawAxes(dst, bottom, xr, hr)
	drawSeries(dst, plot.Project(xs, v.res.H, xr, hr, bottom), hColor)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("H(t)  peak %.1f A/m", v.res.HStats.Peak), inner.Min.X, bottom.Min.Y-16)
}

func (v *viewer) drawLoop(dst *ebiten.Image, r image.Rectangle) {
	inner := r.Inset(8)
	area := image.Rect(inner.Min.X, inner.Min.Y+16, inner.Max.X, inner.Max.Y)

	hr := plot.Symmetric(plot.Bounds(v.res.LoopH, 0.1))
	br := plot.Symmetric(plot.Bounds(v.res.LoopB, 0.1))
	drawAxes(dst, area, hr, br)
	drawSeries(dst, plot.Project(v.res.LoopH, v.res.LoopB, hr, br, area), loopColor)
	ebitenutil.DebugPrintAt(dst, "B-H loop", inner.Min.X, inner.Min.Y)
}

func drawGauge(dst *ebiten.Image, x, y, w int, label string, pct int) {
	ebitenutil.DebugPrintAt(dst, label, x, y)
	bar := image.Rect(x, y+16, x+w, y+24)
	fillRect(dst, bar, gaugeTrough)
	fillRect(dst, image.Rect(bar.Min.X, bar.Min.Y, bar.Min.X+w*pct/100, bar.Max.Y), gaugeColor)
}

func (v *viewer) drawStatus(dst *ebiten.Image, r image.Rectangle) {
	p := v.params
	x, y := r.Min.X+8, r.Min.Y+8

	line := fmt.Sprintf("%s / %s   shape %s   B %.0f mT   phase %.0f°   duty %.2f",
		p.Model, p.Material, p.Shape, p.Amplitude, p.Phase, p.Duty)
	if p.Shape == signal.ShapeTrapezoidal {
		line += fmt.Sprintf("   duty2 %.2f", p.Duty2)
	}
	ebitenutil.DebugPrintAt(dst, line, x, y)

	loss := "..."
	if v.hasRes && !v.pending {
		loss = v.res.LossLabel()
	}
	ebitenutil.DebugPrintAt(dst, "Core loss: "+loss, x, y+20)
	if v.status != "" {
		ebitenutil.DebugPrintAt(dst, v.status, x, y+40)
	}

	gx := r.Max.X - 2*220
	drawGauge(dst, gx, y, 200, fmt.Sprintf("f %.0f kHz", p.Frequency), p.FrequencyGauge())
	drawGauge(dst, gx+220, y, 200, fmt.Sprintf("T %.0f °C", p.Temperature), p.TemperatureGauge())
}
