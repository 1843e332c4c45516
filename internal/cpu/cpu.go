// Package cpu reports the SIMD extensions of the host processor.
//
// The FFT and vector kernels select their code paths on their own; the
// values here only describe the host in diagnostics.
package cpu

import (
	"strings"
	"sync"
)

// Features describes the SIMD extensions available on the host.
type Features struct {
	Arch string

	SSE2   bool
	AVX    bool
	AVX2   bool
	AVX512 bool
	NEON   bool
}

var detect = sync.OnceValue(detectFeatures)

// Detect returns the host features. Detection runs once.
func Detect() Features {
	return detect()
}

// Best returns the widest available extension, or "generic".
func (f Features) Best() string {
	switch {
	case f.AVX512:
		return "avx512"
	case f.AVX2:
		return "avx2"
	case f.AVX:
		return "avx"
	case f.SSE2:
		return "sse2"
	case f.NEON:
		return "neon"
	default:
		return "generic"
	}
}

// String lists the available extensions, e.g. "amd64: sse2 avx avx2".
func (f Features) String() string {
	var ext []string
	for _, e := range []struct {
		name string
		ok   bool
	}{
		{"sse2", f.SSE2},
		{"avx", f.AVX},
		{"avx2", f.AVX2},
		{"avx512", f.AVX512},
		{"neon", f.NEON},
	} {
		if e.ok {
			ext = append(ext, e.name)
		}
	}
	if len(ext) == 0 {
		ext = append(ext, "generic")
	}
	return f.Arch + ": " + strings.Join(ext, " ")
}
