package cwt

import (
	"runtime"

	"github.com/cwbudde/algo-cwt/dsp/fft"
	"github.com/cwbudde/algo-cwt/logging"
)

// Option configures a Transform.
type Option func(*config)

type config struct {
	normalize bool
	workers   int
	backend   fft.Kind
	logger    logging.Logger
}

func defaultConfig() config {
	return config{
		normalize: true,
		workers:   runtime.GOMAXPROCS(0),
		backend:   fft.KindAlgoFFT,
	}
}

// WithNormalize toggles division of every coefficient by the signal length.
// Normalization is enabled by default.
func WithNormalize(normalize bool) Option {
	return func(c *config) {
		c.normalize = normalize
	}
}

// WithWorkers sets how many goroutines share the per-scale loop.
// Values below 1 are rejected by New.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithBackend selects the FFT backend.
func WithBackend(kind fft.Kind) Option {
	return func(c *config) {
		c.backend = kind
	}
}

// WithLogger sets the logger for diagnostics. By default the global logger is used.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
