// Package scales maps analysis frequencies to wavelet scales.
//
// Every scale set orders its entries from the highest analysis frequency
// (index 0) down to the lowest (index Len()-1). Transform rows follow the
// same order.
package scales

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned when the requested frequency band is unusable.
var ErrInvalidRange = errors.New("scales: invalid frequency range")

// Scales is an ordered, immutable set of wavelet scales.
type Scales interface {
	Len() int
	SampleRate() int

	// Scale returns the scale of row i. It panics if i is out of range.
	Scale(i int) float32

	// Freq returns the pseudo-frequency of row i, sample_rate / Scale(i).
	// It panics if i is out of range.
	Freq(i int) float32
}

// Frequencies returns the frequency axis of s, one entry per row.
func Frequencies(s Scales) []float32 {
	out := make([]float32, s.Len())
	for i := range out {
		out[i] = s.Freq(i)
	}
	return out
}

// table stores a frequency grid and the matching scales, both already in row order.
type table struct {
	sampleRate int
	scales     []float32
	freqs      []float32
}

func (t *table) Len() int            { return len(t.scales) }
func (t *table) SampleRate() int     { return t.sampleRate }
func (t *table) Scale(i int) float32 { return t.scales[i] }
func (t *table) Freq(i int) float32  { return t.freqs[i] }

func validate(sampleRate int, startFreq, endFreq float32, count int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidRange, sampleRate)
	}
	if count <= 0 {
		return fmt.Errorf("%w: scale count must be > 0: %d", ErrInvalidRange, count)
	}
	if !(startFreq > 0) || math.IsInf(float64(endFreq), 0) {
		return fmt.Errorf("%w: frequencies must be finite and > 0: %v..%v", ErrInvalidRange, startFreq, endFreq)
	}
	if !(startFreq < endFreq) {
		return fmt.Errorf("%w: start frequency %v must be lower than end frequency %v", ErrInvalidRange, startFreq, endFreq)
	}
	if nyquist := float32(sampleRate) / 2; endFreq > nyquist {
		return fmt.Errorf("%w: end frequency %v exceeds nyquist %v", ErrInvalidRange, endFreq, nyquist)
	}
	return nil
}

// fill builds a table from grid, where grid(i) is the i-th frequency counted
// from the lowest one. Row order is reversed so that row 0 is the highest.
func fill(sampleRate, count int, grid func(i int) float32) *table {
	t := &table{
		sampleRate: sampleRate,
		scales:     make([]float32, count),
		freqs:      make([]float32, count),
	}
	sr := float32(sampleRate)
	for i := 0; i < count; i++ {
		f := grid(i)
		row := count - 1 - i
		t.freqs[row] = f
		t.scales[row] = sr / f
	}
	return t
}
