// Command magnet-view is an interactive desktop viewer for core loss
// predictions. It plots B(t), H(t) and the B-H loop of the current
// operating point and re-renders whenever a parameter changes.
//
// Keys:
//
//	1-4          sinusoidal, triangular, trapezoidal, custom
//	Up/Down      amplitude ±10 mT
//	Left/Right   phase ±15°
//	Q/A          duty ±0.05
//	W/S          duty2 ±0.05
//	F/V          frequency ±10 kHz
//	T/G          temperature ±5 °C
//	M, N         next model, next material
//	E            export CSV
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cwbudde/magnet-engine/internal/engine"
	"github.com/cwbudde/magnet-engine/predict"
	"github.com/cwbudde/magnet-engine/table"
)

const (
	windowW    = 1100
	windowH    = 720
	minWindowW = 800
	minWindowH = 560
)

type config struct {
	predictorURL string
	timeout      time.Duration
	upload       string
	csvPath      string
}

func main() {
	var (
		cfg     config
		verbose bool
	)
	flag.StringVar(&cfg.predictorURL, "predictor", os.Getenv("MAGNET_PREDICTOR_URL"), "model server base URL")
	flag.DurationVar(&cfg.timeout, "timeout", 30*time.Second, "model server request timeout")
	flag.StringVar(&cfg.upload, "upload", "", "CSV file whose first row is one B cycle in T")
	flag.StringVar(&cfg.csvPath, "csv", table.DefaultCSVName, "export path for the E key")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger); err != nil {
		logger.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.predictorURL != "" {
		cache := predict.NewCache(predict.OpenHTTP(cfg.predictorURL, predict.WithTimeout(cfg.timeout)))
		opts = append(opts, engine.WithCache(cache))
	} else {
		logger.Warn("no model server configured, renders that need a prediction will fail")
	}

	params := engine.DefaultParams()
	if cfg.upload != "" {
		row, err := readUpload(cfg.upload)
		if err != nil {
			return err
		}
		params.Upload = row
	}

	g := newViewer(engine.New(opts...), params, cfg.csvPath, logger)
	defer g.Close()

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowW, minWindowH, -1, -1)
	ebiten.SetWindowTitle("magnet-engine viewer")
	return ebiten.RunGame(g)
}

func readUpload(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	row, err := table.ReadFirstRow(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", path, err)
	}
	return row, nil
}
