package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic float32 sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// NaiveDFT computes the unnormalized DFT of a real signal in float64.
// It is O(N^2) and intended as a reference for small sizes.
func NaiveDFT(x []float32) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for t, v := range x {
			phi := -2 * math.Pi * float64(k*t%n) / float64(n)
			sin, cos := math.Sincos(phi)
			sum += complex(float64(v)*cos, float64(v)*sin)
		}
		out[k] = sum
	}
	return out
}
