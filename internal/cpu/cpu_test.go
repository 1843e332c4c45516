package cpu

import (
	"runtime"
	"testing"
)

func TestDetectIsStable(t *testing.T) {
	a, b := Detect(), Detect()
	if a != b {
		t.Fatalf("Detect() changed between calls: %+v vs %+v", a, b)
	}
	if a.Arch != runtime.GOARCH {
		t.Fatalf("Arch = %q, want %q", a.Arch, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !a.SSE2 {
		t.Fatal("SSE2 is part of the amd64 baseline")
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		f    Features
		want string
	}{
		{Features{}, "generic"},
		{Features{SSE2: true}, "sse2"},
		{Features{SSE2: true, AVX: true, AVX2: true}, "avx2"},
		{Features{SSE2: true, AVX2: true, AVX512: true}, "avx512"},
		{Features{NEON: true}, "neon"},
	}
	for _, tt := range tests {
		if got := tt.f.Best(); got != tt.want {
			t.Fatalf("%+v.Best() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	f := Features{Arch: "amd64", SSE2: true, AVX2: true}
	if got := f.String(); got != "amd64: sse2 avx2" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Features{Arch: "wasm"}).String(); got != "wasm: generic" {
		t.Fatalf("String() = %q", got)
	}
}
