// Package fft adapts third-party FFT libraries to the small contract the
// wavelet transform depends on.
//
// A Backend is planned for one transform length N and exposes an unnormalized
// forward real-to-complex transform returning all N bins, and an unnormalized
// complex inverse. Normalization by N is left to the caller so it can be
// applied once for a whole pipeline.
//
// Three backends are registered:
//
//   - algofft: complex64 plans from algo-fft (default, portable)
//   - gonum:   gonum's real half-spectrum FFT with the Hermitian half mirrored
//   - godsp:   go-dsp's radix-2 FFT
//
// Backends are not safe for concurrent use. Create one per goroutine.
package fft
