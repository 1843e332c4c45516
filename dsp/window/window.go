// Package window provides tapers that soften the edges of a signal before
// it is transformed.
//
// Rows near either end of a finite signal see the circular wrap of the FFT.
// Tapering the input trades amplitude at the edges for less wrap-around
// leakage.
package window

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidParameter reports an unusable window argument.
var ErrInvalidParameter = errors.New("window: invalid parameter")

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeTukey
)

var names = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeTukey:       "tukey",
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a window name to its Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown window %q", ErrInvalidParameter, name)
}

// Names returns the known window names in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

// WithAlpha sets the tapered fraction of a Tukey window, in [0,1].
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) ([]float32, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidParameter, length)
	}
	if _, ok := names[t]; !ok {
		return nil, fmt.Errorf("%w: unknown window %v", ErrInvalidParameter, t)
	}

	cfg := config{alpha: 0.5}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if t == TypeTukey && (cfg.alpha < 0 || cfg.alpha > 1) {
		return nil, fmt.Errorf("%w: tukey alpha must be in [0,1]: %f", ErrInvalidParameter, cfg.alpha)
	}

	out := make([]float32, length)
	for i := range out {
		out[i] = float32(evalWindow(t, samplePosition(i, length, cfg.periodic), cfg))
	}
	return out, nil
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float32, opts ...Option) error {
	if len(buf) == 0 {
		return nil
	}
	coeffs, err := Generate(t, len(buf), opts...)
	if err != nil {
		return err
	}
	for i, c := range coeffs {
		buf[i] *= c
	}
	return nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

// samplePosition maps sample n to [0,1]. A single sample sits at the centre.
func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}
	return float64(n) / den
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}
	if alpha >= 1 {
		return cosineFromCoeffs(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
