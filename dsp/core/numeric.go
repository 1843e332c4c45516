package core

import "math"

const defaultEpsilon = 1e-6

// IsPowerOfTwo reports whether n is an exact power of two (1, 2, 4, ...).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ClampIndex limits i to [0, n-1]. n must be > 0.
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison once the magnitudes exceed one.
func NearlyEqual(a, b, eps float32) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(float64(a) - float64(b))
	if diff <= float64(eps) {
		return true
	}

	largest := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if largest == 0 {
		return false
	}

	return diff/largest <= float64(eps)
}
