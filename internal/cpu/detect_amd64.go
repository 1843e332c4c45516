//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func detectFeatures() Features {
	return Features{
		Arch:   runtime.GOARCH,
		SSE2:   cpu.X86.HasSSE2,
		AVX:    cpu.X86.HasAVX,
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512,
	}
}
