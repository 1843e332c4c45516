//go:build !amd64 && !arm64

package cpu

import "runtime"

func detectFeatures() Features {
	return Features{Arch: runtime.GOARCH}
}
