package cwt

import (
	"math"

	"github.com/cwbudde/algo-cwt/dsp/core"
)

// bandLimit returns the number of low spectrum bins that carry support at
// scale: min(n/2, floor(2n/scale)).
func bandLimit(n int, scale float32) int {
	end := min(float32(n)/2, float32(n)*2/scale)
	if !(end > 0) {
		return 0
	}
	return int(end)
}

// motherIndex maps bin i to the nearest mother envelope sample for a
// resampling stride of step, saturating at n-1.
func motherIndex(step float32, i, n int) int {
	return core.ClampIndex(int(math.Round(float64(step*float32(i)))), n)
}

// daughterMultiply writes spectrum*daughter(scale) into dst. dst must be
// zeroed by the caller; bins outside the band limit are left untouched.
//
// With imaginary set, the imaginary part of each product is negated. With
// doubleSided set, the same daughter is also applied to the mirrored bins
// n-1-i of the negative-frequency half.
func daughterMultiply(dst, spectrum []complex64, mother []float32, scale float32, imaginary, doubleSided bool) {
	n := len(spectrum)
	step := scale / 2
	endpoint := bandLimit(n, scale)

	sign := float32(1)
	if imaginary {
		sign = -1
	}

	for i := 0; i < endpoint; i++ {
		m := mother[motherIndex(step, i, n)]
		in := spectrum[i]
		dst[i] = complex(real(in)*m, imag(in)*m*sign)
	}

	if !doubleSided {
		return
	}

	for i := 0; i < endpoint; i++ {
		m := mother[motherIndex(step, i, n)]
		j := n - 1 - i
		in := spectrum[j]
		dst[j] = complex(real(in)*m*sign, imag(in)*m)
	}
}
