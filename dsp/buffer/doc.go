// Package buffer provides a reusable complex64 scratch buffer and pool.
// The wavelet transform hands one pooled buffer to each worker so that
// daughter spectra are built without allocating per scale.
package buffer
