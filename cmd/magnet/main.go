// Command magnet renders one operating point of a magnetic core: it
// synthesizes the flux density waveform, asks a loss model server for the
// field strength and loss, and prints a summary.
//
// Usage:
//
//	magnet [flags]
//
// The model server URL comes from -predictor or MAGNET_PREDICTOR_URL.
//
// Examples:
//
//	magnet -shape tri -amplitude 150 -duty 0.3 -freq 200
//	magnet -shape trap -duty 0.2 -duty2 0.4 -csv out.csv
//	magnet -shape custom -upload cycle.csv -xlsx out.xlsx
//	magnet -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/magnet-engine/dsp/signal"
	"github.com/cwbudde/magnet-engine/internal/engine"
	"github.com/cwbudde/magnet-engine/predict"
	"github.com/cwbudde/magnet-engine/table"
)

const envPredictor = "MAGNET_PREDICTOR_URL"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	params    engine.Params
	shape     string
	upload    string
	predictor string
	timeout   time.Duration
	csvPath   string
	xlsxPath  string
	list      bool
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer, getenv func(string) string) (options, error) {
	def := engine.DefaultParams()
	var o options

	fs := flag.NewFlagSet("magnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.params.Model, "model", def.Model, "model family (see -list)")
	fs.StringVar(&o.params.Material, "material", def.Material, "core material (see -list)")
	fs.StringVar(&o.shape, "shape", def.Shape.String(), "waveform: sinusoidal, triangular, trapezoidal, custom")
	fs.Float64Var(&o.params.Amplitude, "amplitude", def.Amplitude, "flux density amplitude in mT")
	fs.Float64Var(&o.params.Phase, "phase", def.Phase, "phase in degrees")
	fs.Float64Var(&o.params.Duty, "duty", def.Duty, "triangular duty / trapezoidal rising duty")
	fs.Float64Var(&o.params.Duty2, "duty2", def.Duty2, "trapezoidal falling duty")
	fs.Float64Var(&o.params.Frequency, "freq", def.Frequency, "frequency in kHz")
	fs.Float64Var(&o.params.Temperature, "temp", def.Temperature, "temperature in °C")
	fs.StringVar(&o.upload, "upload", "", "CSV file whose first row is one B cycle in T (custom shape)")
	fs.StringVar(&o.predictor, "predictor", getenv(envPredictor), "model server base URL")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "model server request timeout")
	fs.StringVar(&o.csvPath, "csv", "", "write the prediction table as CSV")
	fs.StringVar(&o.xlsxPath, "xlsx", "", "write the prediction workbook")
	fs.BoolVar(&o.list, "list", false, "list models, materials and shapes")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: magnet [flags]\n\n")
		fmt.Fprintf(stderr, "Renders one operating point and prints the predicted loss.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  magnet -shape tri -amplitude 150 -duty 0.3 -freq 200\n")
		fmt.Fprintf(stderr, "  magnet -shape custom -upload cycle.csv -csv out.csv\n")
		fmt.Fprintf(stderr, "  magnet -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	shape, err := signal.ParseShape(o.shape)
	if err != nil {
		return o, err
	}
	o.params.Shape = shape
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	o, err := parseFlags(args, stderr, getenv)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if o.list {
		printList(stdout)
		return nil
	}

	if o.upload != "" {
		row, err := readUpload(o.upload)
		if err != nil {
			return err
		}
		o.params.Upload = row
		if o.params.Shape != signal.ShapeCustom {
			logger.Info("upload given, switching to custom shape", "shape", o.params.Shape)
			o.params.Shape = signal.ShapeCustom
		}
	}

	engOpts := []engine.Option{engine.WithLogger(logger)}
	if o.predictor != "" {
		cache := predict.NewCache(predict.OpenHTTP(o.predictor, predict.WithTimeout(o.timeout)))
		engOpts = append(engOpts, engine.WithCache(cache))
	}

	res, err := engine.New(engOpts...).Render(ctx, o.params)
	if err != nil {
		return err
	}

	printSummary(stdout, res)

	if o.csvPath != "" || o.xlsxPath != "" {
		if err := writeOutputs(res, o.csvPath, o.xlsxPath); err != nil {
			return err
		}
	}
	return nil
}

func readUpload(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return table.ReadFirstRow(f)
}

func writeOutputs(res engine.Result, csvPath, xlsxPath string) error {
	t, err := res.Table()
	if err != nil {
		return err
	}
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		if err := table.WriteCSV(f, t); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := table.SaveXLSX(xlsxPath, res.Meta(), t); err != nil {
			return err
		}
	}
	return nil
}

func printList(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tSAMPLES")
	for _, m := range predict.Models() {
		fmt.Fprintf(tw, "%s\t%d\n", m.Name, m.Resolution)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nMaterials: %s\n", strings.Join(predict.Materials(), ", "))

	shapes := make([]string, 0, len(signal.Shapes()))
	for _, s := range signal.Shapes() {
		shapes = append(shapes, s.String())
	}
	fmt.Fprintf(w, "Shapes:    %s\n", strings.Join(shapes, ", "))
}

func printSummary(w io.Writer, res engine.Result) {
	p := res.Params
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Model\t%s\n", p.Model)
	fmt.Fprintf(tw, "Material\t%s\n", p.Material)
	fmt.Fprintf(tw, "Shape\t%s\n", p.Shape)
	fmt.Fprintf(tw, "Frequency\t%g kHz (%d%%)\n", p.Frequency, p.FrequencyGauge())
	fmt.Fprintf(tw, "Temperature\t%g °C (%d%%)\n", p.Temperature, p.TemperatureGauge())
	fmt.Fprintf(tw, "Samples\t%d\n", len(res.B))
	fmt.Fprintf(tw, "B peak\t%.3f mT\n", res.BStats.Peak)
	fmt.Fprintf(tw, "B rms\t%.3f mT\n", res.BStats.RMS)
	fmt.Fprintf(tw, "B THD\t%.2f %%\n", res.Spectrum.THD*100)
	fmt.Fprintf(tw, "H peak\t%.3f A/m\n", res.HStats.Peak)
	fmt.Fprintf(tw, "Core loss\t%s\n", res.LossLabel())
	if res.LossKnown {
		fmt.Fprintf(tw, "Loop loss\t%.2f kW/m³\n", res.LoopLoss/1000)
	}
	tw.Flush()

	if len(res.Spectrum.Harmonics) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "k\tB [mT]\tphase [deg]\t")
		for i, a := range res.Spectrum.Harmonics {
			if i >= 7 {
				break
			}
			fmt.Fprintf(tw, "%d\t%.3f\t%.1f\t\n", i+1, a, res.Spectrum.Phases[i])
		}
		tw.Flush()
	}
}
