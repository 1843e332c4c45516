// Package wavelet provides mother wavelets for the FFT-based continuous
// wavelet transform.
//
// A Wavelet supplies two things. GenerateMother returns the frequency-domain
// envelope of the mother wavelet sampled over one period of a given length;
// the transform computes it once per call and derives every daughter filter
// from it by resampling. Generate returns a short time-domain kernel that is
// only meant for display.
package wavelet
