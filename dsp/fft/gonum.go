package fft

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Gonum computes the forward transform as a real-to-complex half spectrum and
// reconstructs the upper half from Hermitian symmetry, X[N-k] = conj(X[k]).
// The inverse is gonum's unnormalized complex sequence transform.
type Gonum struct {
	n     int
	real  *fourier.FFT
	cmplx *fourier.CmplxFFT

	seq  []float64
	half []complex128
	work []complex128
	out  []complex128
}

// NewGonum plans transforms of length n.
func NewGonum(n int) (*Gonum, error) {
	return &Gonum{
		n:     n,
		real:  fourier.NewFFT(n),
		cmplx: fourier.NewCmplxFFT(n),
		seq:   make([]float64, n),
		half:  make([]complex128, n/2+1),
		work:  make([]complex128, n),
		out:   make([]complex128, n),
	}, nil
}

func (g *Gonum) Len() int { return g.n }

func (g *Gonum) Forward(dst []complex64, src []float32) error {
	if err := checkLen(g.n, len(dst), len(src)); err != nil {
		return err
	}
	for i, v := range src {
		g.seq[i] = float64(v)
	}
	g.half = g.real.Coefficients(g.half, g.seq)

	for k, v := range g.half {
		dst[k] = complex64(v)
	}
	for k := 1; k < (g.n+1)/2; k++ {
		dst[g.n-k] = complex64(cmplx.Conj(g.half[k]))
	}
	return nil
}

func (g *Gonum) Inverse(dst, src []complex64) error {
	if err := checkLen(g.n, len(dst), len(src)); err != nil {
		return err
	}
	for i, v := range src {
		g.work[i] = complex128(v)
	}
	g.out = g.cmplx.Sequence(g.out, g.work)
	for i, v := range g.out {
		dst[i] = complex64(v)
	}
	return nil
}
