package fft

import (
	dspfft "github.com/mjibson/go-dsp/fft"
)

// GoDSP wraps the package-level transforms of go-dsp. go-dsp normalizes its
// inverse, so Inverse rescales by N.
type GoDSP struct {
	n    int
	seq  []float64
	work []complex128
}

// NewGoDSP prepares scratch space for transforms of length n.
func NewGoDSP(n int) (*GoDSP, error) {
	return &GoDSP{
		n:    n,
		seq:  make([]float64, n),
		work: make([]complex128, n),
	}, nil
}

func (g *GoDSP) Len() int { return g.n }

func (g *GoDSP) Forward(dst []complex64, src []float32) error {
	if err := checkLen(g.n, len(dst), len(src)); err != nil {
		return err
	}
	for i, v := range src {
		g.seq[i] = float64(v)
	}
	for i, v := range dspfft.FFTReal(g.seq) {
		dst[i] = complex64(v)
	}
	return nil
}

func (g *GoDSP) Inverse(dst, src []complex64) error {
	if err := checkLen(g.n, len(dst), len(src)); err != nil {
		return err
	}
	for i, v := range src {
		g.work[i] = complex128(v)
	}
	s := complex(float64(g.n), 0)
	for i, v := range dspfft.IFFT(g.work) {
		dst[i] = complex64(v * s)
	}
	return nil
}
