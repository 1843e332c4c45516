package wavelet

import "errors"

// ErrInvalidParameter is returned when a wavelet parameter is out of domain.
var ErrInvalidParameter = errors.New("wavelet: invalid parameter")

// ipi4 is pi^(-1/4), the Morlet amplitude normalisation.
const ipi4 = 0.75112554446

// Wavelet is the capability set the transform needs from a mother wavelet.
type Wavelet interface {
	// GenerateMother returns the frequency-domain envelope sampled at size points.
	GenerateMother(size int) []float32

	// Generate returns a time-domain kernel of length 2*Support(scale)+1.
	Generate(size int, scale float32) []complex64

	Bandwidth() float32
	FourWavelen() float32

	// ImagFrequency reports whether daughter filters conjugate the imaginary part.
	ImagFrequency() bool

	// DoubleSided reports whether daughter filters also cover negative frequencies.
	DoubleSided() bool

	// Support returns a conservative half-width in samples at the given scale.
	Support(scale float32) int
}

// Support computes floor(bandwidth*scale*3), the support rule shared by the
// Gaussian-windowed wavelets in this package.
func Support(bandwidth, scale float32) int {
	return int(bandwidth * scale * 3)
}
