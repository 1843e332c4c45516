package core

// RealToComplex embeds src into the real parts of dst. len(dst) must be >= len(src).
func RealToComplex(dst []complex64, src []float32) {
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
}
