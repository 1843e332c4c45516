package wavelet

import (
	"fmt"
	"math"
	"sync"
)

// Morlet is the complex Morlet wavelet with bandwidth parameter fb.
//
// Morlet is safe for concurrent use. GenerateMother returns a fresh slice on
// every call; the most recent envelope is also retained for Mother.
type Morlet struct {
	fb  float32
	fb2 float32
	ifb float32

	fourWavelen   float32
	imagFrequency bool
	doubleSided   bool

	mu     sync.RWMutex
	mother []float32
}

// Option configures a Morlet wavelet.
type Option func(*Morlet)

// WithImaginaryFrequency negates the imaginary part of every daughter filter bin.
func WithImaginaryFrequency() Option {
	return func(m *Morlet) {
		m.imagFrequency = true
	}
}

// WithDoubleSided mirrors daughter filters onto the negative-frequency half.
func WithDoubleSided() Option {
	return func(m *Morlet) {
		m.doubleSided = true
	}
}

// NewMorlet creates a Morlet wavelet. bandwidth must be finite and > 0.
func NewMorlet(bandwidth float32, opts ...Option) (*Morlet, error) {
	fb := float64(bandwidth)
	if !(fb > 0) || math.IsInf(fb, 0) {
		return nil, fmt.Errorf("%w: morlet bandwidth must be > 0: %v", ErrInvalidParameter, bandwidth)
	}

	m := &Morlet{
		fb:          bandwidth,
		fb2:         2 * bandwidth * bandwidth,
		ifb:         1 / bandwidth,
		fourWavelen: 0.9876,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// GenerateMother samples the Gaussian envelope
// norm*exp(-(2*theta*fb - 2*pi*fb)^2 / 2) at theta = i*2*pi/size.
// The peak sits at i = size/2.
func (m *Morlet) GenerateMother(size int) []float32 {
	if size <= 0 {
		return nil
	}

	out := make([]float32, size)
	torad := float32(2*math.Pi) / float32(size)
	norm := float32(math.Sqrt(2*math.Pi)) * ipi4
	twoPiFb := float32(2*math.Pi) * m.fb

	for i := range out {
		tmp := 2*(float32(i)*torad)*m.fb - twoPiFb
		tmp = -(tmp * tmp) / 2
		out[i] = norm * float32(math.Exp(float64(tmp)))
	}

	m.mu.Lock()
	m.mother = out
	m.mu.Unlock()

	return out
}

// Mother returns the envelope produced by the last GenerateMother call, or nil.
// The returned slice must not be modified.
func (m *Morlet) Mother() []float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mother
}

// Generate returns the time-domain Morlet kernel centred on index Support(scale).
func (m *Morlet) Generate(size int, scale float32) []complex64 {
	width := m.Support(scale)
	norm := float32(size) * m.ifb * ipi4

	out := make([]complex64, 2*width+1)
	for i := range out {
		u := float32(i-width) / scale
		g := float32(math.Exp(float64(-(u * u) / m.fb2)))
		sin, cos := math.Sincos(2 * math.Pi * float64(u))

		out[i] = complex(
			norm*g*float32(cos)/scale,
			norm*g*float32(sin)/scale,
		)
	}
	return out
}

func (m *Morlet) Bandwidth() float32 { return m.fb }

func (m *Morlet) FourWavelen() float32 { return m.fourWavelen }

func (m *Morlet) ImagFrequency() bool { return m.imagFrequency }

func (m *Morlet) DoubleSided() bool { return m.doubleSided }

// Support returns floor(bandwidth*scale*3).
func (m *Morlet) Support(scale float32) int {
	return Support(m.fb, scale)
}
