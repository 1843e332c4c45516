package cwt

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-cwt/dsp/buffer"
	"github.com/cwbudde/algo-cwt/dsp/core"
	"github.com/cwbudde/algo-cwt/dsp/fft"
	"github.com/cwbudde/algo-cwt/dsp/scales"
	"github.com/cwbudde/algo-cwt/dsp/wavelet"
	"github.com/cwbudde/algo-cwt/logging"
)

// Transform binds a wavelet, a scale set and a normalization flag.
// It holds no per-call state and is safe for concurrent use.
type Transform struct {
	wavelet wavelet.Wavelet
	scales  scales.Scales
	cfg     config
	scratch *buffer.Pool
}

// New returns a Transform for w over s.
func New(w wavelet.Wavelet, s scales.Scales, opts ...Option) (*Transform, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil wavelet", ErrInvalidParameter)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil scale set", ErrInvalidParameter)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.workers < 1 {
		return nil, fmt.Errorf("%w: workers must be >= 1: %d", ErrInvalidParameter, cfg.workers)
	}
	if _, err := fft.ParseKind(string(cfg.backend)); err != nil {
		return nil, err
	}

	return &Transform{
		wavelet: w,
		scales:  s,
		cfg:     cfg,
		scratch: buffer.NewPool(),
	}, nil
}

// NewFromConfig builds a Morlet transform over a linear frequency grid
// described by cfg.
func NewFromConfig(cfg core.AnalysisConfig, opts ...Option) (*Transform, error) {
	w, err := wavelet.NewMorlet(cfg.Bandwidth)
	if err != nil {
		return nil, err
	}
	s, err := scales.NewLinFreqs(cfg.SampleRate, cfg.StartFreq, cfg.EndFreq, cfg.NumScales)
	if err != nil {
		return nil, err
	}
	kind, err := fft.ParseKind(cfg.Backend)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithNormalize(cfg.Normalize),
		WithWorkers(cfg.Workers),
		WithBackend(kind),
	}
	return New(w, s, append(base, opts...)...)
}

// Wavelet returns the analyzing wavelet.
func (t *Transform) Wavelet() wavelet.Wavelet { return t.wavelet }

// Scales returns the scale set; row i of a result belongs to Scales().Scale(i).
func (t *Transform) Scales() scales.Scales { return t.scales }

// Normalized reports whether results are divided by the signal length.
func (t *Transform) Normalized() bool { return t.cfg.normalize }

// Workers returns the configured worker count.
func (t *Transform) Workers() int { return t.cfg.workers }

// Backend returns the FFT backend kind.
func (t *Transform) Backend() fft.Kind { return t.cfg.backend }

func (t *Transform) logger() logging.Logger {
	if t.cfg.logger != nil {
		return t.cfg.logger
	}
	return logging.GetGlobalLogger()
}

// Process computes the transform of signal, whose length must be a power
// of two. The result has one row per scale and len(signal) columns.
func (t *Transform) Process(signal []float32) (*Result, error) {
	n := len(signal)
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: got %d samples", ErrInvalidInputLength, n)
	}

	fwd, err := fft.New(t.cfg.backend, n)
	if err != nil {
		return nil, fmt.Errorf("cwt: plan forward FFT: %w", err)
	}
	spectrum := make([]complex64, n)
	if err := fwd.Forward(spectrum, signal); err != nil {
		return nil, fmt.Errorf("cwt: forward FFT: %w", err)
	}

	mother := t.wavelet.GenerateMother(n)
	if len(mother) != n {
		return nil, fmt.Errorf("%w: mother envelope has %d samples, want %d", ErrInvalidParameter, len(mother), n)
	}

	numScales := t.scales.Len()
	res := NewResult(numScales, n)
	workers := max(1, min(t.cfg.workers, numScales))

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			return t.convolve(res, spectrum, mother, w, workers)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if t.cfg.normalize {
		res.Normalize()
	}

	t.logger().Debug("cwt processed", logging.Fields{
		"samples":   n,
		"scales":    numScales,
		"workers":   workers,
		"backend":   string(t.cfg.backend),
		"normalize": t.cfg.normalize,
	})
	return res, nil
}

// convolve handles scales first, first+stride, ... with a private inverse
// plan and working buffer.
func (t *Transform) convolve(res *Result, spectrum []complex64, mother []float32, first, stride int) error {
	n := len(spectrum)
	inv, err := fft.New(t.cfg.backend, n)
	if err != nil {
		return fmt.Errorf("cwt: plan inverse FFT: %w", err)
	}

	work := t.scratch.Get(n)
	defer t.scratch.Put(work)

	imaginary := t.wavelet.ImagFrequency()
	doubleSided := t.wavelet.DoubleSided()

	for s := first; s < res.NumScales(); s += stride {
		work.Zero()
		daughterMultiply(work.Bins(), spectrum, mother, t.scales.Scale(s), imaginary, doubleSided)
		if err := inv.Inverse(res.row(s), work.Bins()); err != nil {
			return fmt.Errorf("cwt: inverse FFT at scale %d: %w", s, err)
		}
	}
	return nil
}
