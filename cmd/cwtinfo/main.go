// Command cwtinfo transforms a linear chirp and prints per-scale statistics
// of the resulting continuous wavelet transform.
//
// Usage:
//
//	cwtinfo [flags]
//
// Examples:
//
//	cwtinfo
//	cwtinfo -samples 65536 -scales 100
//	cwtinfo -grid log -fmin 1 -fmax 400 -every 10
//	cwtinfo -backend gonum -workers 1
//	cwtinfo -taper hann
//	cwtinfo -list-backends
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-cwt/dsp/core"
	"github.com/cwbudde/algo-cwt/dsp/cwt"
	"github.com/cwbudde/algo-cwt/dsp/fft"
	"github.com/cwbudde/algo-cwt/dsp/scales"
	"github.com/cwbudde/algo-cwt/dsp/signal"
	"github.com/cwbudde/algo-cwt/dsp/wavelet"
	"github.com/cwbudde/algo-cwt/dsp/window"
	"github.com/cwbudde/algo-cwt/internal/cpu"
	"github.com/cwbudde/algo-cwt/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	cfg core.AnalysisConfig

	samples    int
	signalRate float64
	f0, f1     float32
	grid       string
	taper      string
	taperAlpha float64
	every      int
	logLevel   string
	list       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := core.DefaultAnalysisConfig()
	var o options

	fs := flag.NewFlagSet("cwtinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.samples, "samples", 2048, "chirp length in samples (power of two)")
	fs.Float64Var(&o.signalRate, "signal-rate", 10000, "chirp sample rate in Hz")
	f0 := fs.Float64("f0", 0.1, "chirp start frequency in Hz")
	f1 := fs.Float64("f1", 20, "chirp end frequency in Hz")
	fs.IntVar(&o.cfg.SampleRate, "rate", def.SampleRate, "analysis sample rate in Hz")
	fmin := fs.Float64("fmin", float64(def.StartFreq), "lowest analysis frequency in Hz")
	fmax := fs.Float64("fmax", float64(def.EndFreq), "upper bound of the analysis grid in Hz")
	fs.IntVar(&o.cfg.NumScales, "scales", def.NumScales, "number of scales")
	fb := fs.Float64("bandwidth", float64(def.Bandwidth), "Morlet bandwidth parameter")
	fs.BoolVar(&o.cfg.Normalize, "normalize", def.Normalize, "divide coefficients by the signal length")
	fs.StringVar(&o.cfg.Backend, "backend", def.Backend, "FFT backend ("+kindList()+")")
	fs.IntVar(&o.cfg.Workers, "workers", def.Workers, "worker goroutines")
	fs.StringVar(&o.grid, "grid", "lin", "frequency grid: lin or log")
	fs.StringVar(&o.taper, "taper", "rectangular", "input taper ("+strings.Join(window.Names(), ", ")+")")
	fs.Float64Var(&o.taperAlpha, "taper-alpha", 0.5, "tapered fraction for the tukey taper")
	fs.IntVar(&o.every, "every", 1, "print every n-th row")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&o.list, "list-backends", false, "list available FFT backends")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cwtinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Transforms a linear chirp and prints per-scale statistics.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  cwtinfo -samples 65536 -scales 100\n")
		fmt.Fprintf(stderr, "  cwtinfo -grid log -fmin 1 -fmax 400 -every 10\n")
		fmt.Fprintf(stderr, "  cwtinfo -taper tukey -taper-alpha 0.25\n")
		fmt.Fprintf(stderr, "  cwtinfo -list-backends\n")
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.f0, o.f1 = float32(*f0), float32(*f1)
	o.cfg.StartFreq, o.cfg.EndFreq = float32(*fmin), float32(*fmax)
	o.cfg.Bandwidth = float32(*fb)
	if o.every < 1 {
		return o, fmt.Errorf("-every must be >= 1: %d", o.every)
	}
	return o, nil
}

func kindList() string {
	kinds := fft.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func buildTransform(o options) (*cwt.Transform, error) {
	w, err := wavelet.NewMorlet(o.cfg.Bandwidth)
	if err != nil {
		return nil, err
	}

	var s scales.Scales
	switch o.grid {
	case "lin":
		s, err = scales.NewLinFreqs(o.cfg.SampleRate, o.cfg.StartFreq, o.cfg.EndFreq, o.cfg.NumScales)
	case "log":
		s, err = scales.NewLogFreqs(o.cfg.SampleRate, o.cfg.StartFreq, o.cfg.EndFreq, o.cfg.NumScales)
	default:
		return nil, fmt.Errorf("unknown grid %q (use lin or log)", o.grid)
	}
	if err != nil {
		return nil, err
	}

	kind, err := fft.ParseKind(o.cfg.Backend)
	if err != nil {
		return nil, err
	}
	return cwt.New(w, s,
		cwt.WithNormalize(o.cfg.Normalize),
		cwt.WithWorkers(o.cfg.Workers),
		cwt.WithBackend(kind),
	)
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.list {
		for _, k := range fft.Kinds() {
			fmt.Fprintln(stdout, k)
		}
		return nil
	}

	logger := logging.NewDefaultLoggerTo(stderr)
	level, ok := logging.ParseLevel(o.logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", o.logLevel)
	}
	logger.SetLevel(level)
	logging.SetGlobalLogger(logger)
	logger.Debug("host", logging.Fields{"cpu": cpu.Detect().String()})

	if !core.IsPowerOfTwo(o.samples) {
		logger.Warn("chirp length is not a power of two", logging.Fields{
			"samples": o.samples,
			"next":    core.NextPowerOfTwo(o.samples),
		})
	}

	t, err := buildTransform(o)
	if err != nil {
		return err
	}

	g, err := signal.NewGenerator(o.signalRate)
	if err != nil {
		return err
	}
	x, err := g.Chirp(o.f0, o.f1, o.samples)
	if err != nil {
		return err
	}
	taper, err := window.ParseType(o.taper)
	if err != nil {
		return err
	}
	if err := window.Apply(taper, x, window.WithAlpha(o.taperAlpha)); err != nil {
		return err
	}

	start := time.Now()
	res, err := t.Process(x)
	if err != nil {
		return err
	}
	logger.Info("transform complete", logging.Fields{
		"samples":  res.NumSamples(),
		"scales":   res.NumScales(),
		"backend":  string(t.Backend()),
		"workers":  t.Workers(),
		"duration": time.Since(start).String(),
		"simd":     cpu.Detect().Best(),
	})

	return printTable(stdout, t.Scales(), res, o.every)
}

func printTable(w io.Writer, s scales.Scales, res *cwt.Result, every int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Row\tScale\tFreq [Hz]\tPeak |W|\tPeak Sample\tEnergy\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---\t-----\t---------\t--------\t-----------\t------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	energy := res.Energy()
	for row := 0; row < res.NumScales(); row += every {
		mag, err := res.Magnitude(row)
		if err != nil {
			return err
		}
		peak := floats.MaxIdx(mag)
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.6g\t%d\t%.6g\n",
			row,
			s.Scale(row),
			s.Freq(row),
			mag[peak],
			peak,
			energy[row],
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
