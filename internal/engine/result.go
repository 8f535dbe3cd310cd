package engine

import (
	"fmt"

	"github.com/cwbudde/magnet-engine/dsp/signal"
	"github.com/cwbudde/magnet-engine/measure/harmonics"
	"github.com/cwbudde/magnet-engine/stats/waveform"
	"github.com/cwbudde/magnet-engine/table"
)

// Result is one rendered operating point.
type Result struct {
	Params Params

	Time []float64 // fraction of a cycle
	B    []float64 // mT
	H    []float64 // A/m

	// LoopB and LoopH repeat the first sample at the end so the plotted
	// B-H trajectory is closed.
	LoopB []float64
	LoopH []float64

	LossDensity float64 // W/m³ as predicted
	LossKnown   bool
	// Skipped wraps signal.ErrDegenerateWaveform when no prediction was run.
	Skipped error
	// LoopLoss is f·∮H dB from the predicted H, in W/m³.
	LoopLoss float64

	BStats   waveform.Summary
	HStats   waveform.Summary
	Spectrum harmonics.Result
}

// LossLabel formats the predicted loss for display.
func (r Result) LossLabel() string {
	if !r.LossKnown {
		return "Unknown"
	}
	return fmt.Sprintf("%.2f kW/m³", r.LossDensity/1000)
}

// Table returns the downloadable prediction table.
func (r Result) Table() (table.Table, error) {
	return table.New(r.B, r.H, r.LossDensity, r.LossKnown)
}

// Meta lists the operating point for the workbook summary sheet.
func (r Result) Meta() []table.Field {
	p := r.Params
	meta := []table.Field{
		{Name: "Model", Value: p.Model},
		{Name: "Material", Value: p.Material},
		{Name: "Shape", Value: p.Shape.String()},
		{Name: "Frequency [kHz]", Value: p.Frequency},
		{Name: "Temperature [C]", Value: p.Temperature},
	}
	switch p.Shape {
	case signal.ShapeSinusoidal:
		meta = append(meta,
			table.Field{Name: "Amplitude [mT]", Value: p.Amplitude},
			table.Field{Name: "Phase [deg]", Value: p.Phase})
	case signal.ShapeTriangular:
		meta = append(meta,
			table.Field{Name: "Amplitude [mT]", Value: p.Amplitude},
			table.Field{Name: "Phase [deg]", Value: p.Phase},
			table.Field{Name: "Duty", Value: p.Duty})
	case signal.ShapeTrapezoidal:
		meta = append(meta,
			table.Field{Name: "Amplitude [mT]", Value: p.Amplitude},
			table.Field{Name: "Phase [deg]", Value: p.Phase},
			table.Field{Name: "Duty 1", Value: p.Duty},
			table.Field{Name: "Duty 2", Value: p.Duty2})
	}
	return append(meta,
		table.Field{Name: "B peak [mT]", Value: r.BStats.Peak},
		table.Field{Name: "H peak [A/m]", Value: r.HStats.Peak},
		table.Field{Name: "B THD", Value: r.Spectrum.THD},
		table.Field{Name: "Loop loss [W/m3]", Value: r.LoopLoss},
	)
}
