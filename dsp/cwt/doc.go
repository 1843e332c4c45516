// Package cwt computes the continuous wavelet transform of power-of-two
// length signals with a single forward FFT and one inverse FFT per scale.
//
// The mother wavelet's frequency envelope is generated once per call, sized
// to the signal. Every daughter filter is obtained by resampling that one
// envelope with a scale-dependent stride instead of being regenerated, and
// only the spectrum bins that carry non-negligible support at a scale are
// multiplied. Rows of the resulting matrix follow the scale set order, which
// puts the highest analysis frequency first.
//
// # Usage
//
//	w, _ := wavelet.NewMorlet(2)
//	s, _ := scales.NewLinFreqs(1000, 0.1, 40, 300)
//	t, _ := cwt.New(w, s)
//	res, err := t.Process(signal)
//
// Scales are processed by a pool of workers. Each worker owns its FFT plan
// and scratch buffer and writes into its own rows, so the output does not
// depend on the worker count.
package cwt
