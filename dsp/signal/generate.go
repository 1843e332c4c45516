// Package signal generates deterministic float32 test signals.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidParameter reports an unusable generator argument.
var ErrInvalidParameter = errors.New("signal: invalid parameter")

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given sample rate in Hz.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParameter, sampleRate)
	}
	g := &Generator{sampleRate: sampleRate, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

func checkSamples(name string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %s samples must be > 0: %d", ErrInvalidParameter, name, samples)
	}
	return nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	if err := checkSamples("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float32, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

// Chirp generates a unit-amplitude linear chirp whose instantaneous
// frequency term runs from f0 towards f1 over the requested length.
//
// Sample i is sin(2*pi*(f0 + k*t*fs)*t) with t = i/fs and k = (f1-f0)/samples.
// The computation is carried out in float32.
func (g *Generator) Chirp(f0, f1 float32, samples int) ([]float32, error) {
	if err := checkSamples("chirp", samples); err != nil {
		return nil, err
	}
	fs := float32(g.sampleRate)
	k := (f1 - f0) / float32(samples)
	out := make([]float32, samples)
	for i := range out {
		t := float32(i) / fs
		phase := 2 * math.Pi * (f0 + k*t*fs) * t
		out[i] = float32(math.Sin(float64(phase)))
	}
	return out, nil
}

// Impulse generates a single sample of the given amplitude at pos.
func (g *Generator) Impulse(amplitude float32, samples, pos int) ([]float32, error) {
	if err := checkSamples("impulse", samples); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("%w: impulse position %d outside [0,%d)", ErrInvalidParameter, pos, samples)
	}
	out := make([]float32, samples)
	out[pos] = amplitude
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float32, error) {
	if err := checkSamples("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", ErrInvalidParameter, amplitude)
	}
	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float32, targetPeak float32) ([]float32, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", ErrInvalidParameter, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", ErrInvalidParameter)
	}

	var maxAbs float32
	for _, v := range data {
		maxAbs = max(maxAbs, float32(math.Abs(float64(v))))
	}

	out := make([]float32, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
