package core

import "runtime"

// AnalysisConfig collects the settings of one continuous wavelet analysis:
// the frequency grid, the Morlet bandwidth, and how the transform executes.
type AnalysisConfig struct {
	SampleRate int
	StartFreq  float32
	EndFreq    float32
	NumScales  int
	Bandwidth  float32
	Normalize  bool
	Workers    int
	Backend    string
}

// AnalysisOption mutates an AnalysisConfig.
type AnalysisOption func(*AnalysisConfig)

// DefaultBackend names the FFT backend used when none is configured.
const DefaultBackend = "algofft"

// DefaultAnalysisConfig returns the reference analysis: 300 linearly spaced
// frequencies between 0.1 and 40 Hz at 1 kHz, Morlet bandwidth 2, normalized.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SampleRate: 1000,
		StartFreq:  0.1,
		EndFreq:    40,
		NumScales:  300,
		Bandwidth:  2,
		Normalize:  true,
		Workers:    runtime.GOMAXPROCS(0),
		Backend:    DefaultBackend,
	}
}

// WithSampleRate sets the sample rate the scale grid is derived from.
func WithSampleRate(sampleRate int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrequencyRange sets the analysed frequency band.
// The range is validated when the scale set is constructed.
func WithFrequencyRange(start, end float32) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		cfg.StartFreq = start
		cfg.EndFreq = end
	}
}

// WithNumScales sets the number of analysis scales.
func WithNumScales(n int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if n > 0 {
			cfg.NumScales = n
		}
	}
}

// WithBandwidth sets the Morlet bandwidth parameter.
func WithBandwidth(fb float32) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		cfg.Bandwidth = fb
	}
}

// WithNormalize toggles division of every coefficient by the signal length.
func WithNormalize(normalize bool) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		cfg.Normalize = normalize
	}
}

// WithWorkers sets how many goroutines share the per-scale loop.
func WithWorkers(n int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithBackend selects the FFT backend by name.
func WithBackend(name string) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if name != "" {
			cfg.Backend = name
		}
	}
}

// ApplyAnalysisOptions applies zero or more options to the default config.
func ApplyAnalysisOptions(opts ...AnalysisOption) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
