//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// NEON is mandatory on ARMv8.
func detectFeatures() Features {
	return Features{
		Arch: runtime.GOARCH,
		NEON: cpu.ARM64.HasASIMD,
	}
}
