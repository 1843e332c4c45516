package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-cwt/dsp/core"
)

// AlgoFFT runs complex64 algo-fft plans. The real input is embedded into a
// complex buffer, so Forward computes the full spectrum directly.
type AlgoFFT struct {
	n    int
	plan *algofft.Plan[complex64]
}

// NewAlgoFFT plans forward and inverse transforms of length n.
func NewAlgoFFT(n int) (*AlgoFFT, error) {
	plan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("%w: algofft plan for %d: %w", ErrBackendFailure, n, err)
	}
	return &AlgoFFT{n: n, plan: plan}, nil
}

func (a *AlgoFFT) Len() int { return a.n }

func (a *AlgoFFT) Forward(dst []complex64, src []float32) error {
	if err := checkLen(a.n, len(dst), len(src)); err != nil {
		return err
	}
	core.RealToComplex(dst, src)
	if err := a.plan.Forward(dst, dst); err != nil {
		return fmt.Errorf("%w: algofft forward: %w", ErrBackendFailure, err)
	}
	return nil
}

// Inverse undoes the 1/N scaling algo-fft applies, keeping the result unnormalized.
func (a *AlgoFFT) Inverse(dst, src []complex64) error {
	if err := checkLen(a.n, len(dst), len(src)); err != nil {
		return err
	}
	if err := a.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("%w: algofft inverse: %w", ErrBackendFailure, err)
	}
	scaleInPlace(dst, float32(a.n))
	return nil
}
