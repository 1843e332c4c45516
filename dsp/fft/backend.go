package fft

import (
	"errors"
	"fmt"
	"slices"
)

// ErrBackendFailure reports a planning or execution failure of an FFT backend.
var ErrBackendFailure = errors.New("fft: backend failure")

// ErrUnknownBackend is returned for an unregistered backend name.
var ErrUnknownBackend = fmt.Errorf("%w: unknown backend", ErrBackendFailure)

// Backend computes unnormalized transforms of one fixed length.
type Backend interface {
	// Len returns the transform length the backend was planned for.
	Len() int

	// Forward writes the full N-bin spectrum of the real signal src into dst.
	Forward(dst []complex64, src []float32) error

	// Inverse writes the unnormalized inverse transform of src into dst.
	Inverse(dst, src []complex64) error
}

// Kind names a backend implementation.
type Kind string

const (
	KindAlgoFFT Kind = "algofft"
	KindGonum   Kind = "gonum"
	KindGoDSP   Kind = "godsp"
)

// Factory plans a backend for transforms of length n.
type Factory func(n int) (Backend, error)

var registry = map[Kind]Factory{
	KindAlgoFFT: func(n int) (Backend, error) { return NewAlgoFFT(n) },
	KindGonum:   func(n int) (Backend, error) { return NewGonum(n) },
	KindGoDSP:   func(n int) (Backend, error) { return NewGoDSP(n) },
}

// Kinds returns the registered backend names in sorted order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ParseKind validates a backend name.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return k, nil
}

// New plans a backend of the given kind for length n.
// Length 1 is served by an identity transform regardless of kind.
func New(kind Kind, n int) (Backend, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: length must be > 0: %d", ErrBackendFailure, n)
	}
	if n == 1 {
		return identity{}, nil
	}
	return factory(n)
}

func checkLen(n int, lens ...int) error {
	for _, l := range lens {
		if l != n {
			return fmt.Errorf("%w: buffer length %d, plan length %d", ErrBackendFailure, l, n)
		}
	}
	return nil
}

func scaleInPlace(buf []complex64, s float32) {
	for i, v := range buf {
		buf[i] = complex(real(v)*s, imag(v)*s)
	}
}

// identity is the length-1 DFT.
type identity struct{}

func (identity) Len() int { return 1 }

func (identity) Forward(dst []complex64, src []float32) error {
	if err := checkLen(1, len(dst), len(src)); err != nil {
		return err
	}
	dst[0] = complex(src[0], 0)
	return nil
}

func (identity) Inverse(dst, src []complex64) error {
	if err := checkLen(1, len(dst), len(src)); err != nil {
		return err
	}
	dst[0] = src[0]
	return nil
}
