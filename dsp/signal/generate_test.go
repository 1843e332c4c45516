package signal

import (
	"errors"
	"math"
	"testing"
)

func mustGenerator(t *testing.T, sampleRate float64, opts ...Option) *Generator {
	t.Helper()
	g, err := NewGenerator(sampleRate, opts...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}

func TestNewGeneratorRejectsBadRate(t *testing.T) {
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewGenerator(sr); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("NewGenerator(%v) error = %v, want ErrInvalidParameter", sr, err)
		}
	}
}

func TestSineLength(t *testing.T) {
	g := mustGenerator(t, 48000)
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestChirpMatchesFormula(t *testing.T) {
	const (
		fs = 10000
		n  = 2048
		f0 = 0.1
		f1 = 20.0
	)
	g := mustGenerator(t, fs)
	out, err := g.Chirp(f0, f1, n)
	if err != nil {
		t.Fatalf("Chirp() error = %v", err)
	}
	if len(out) != n {
		t.Fatalf("len = %d, want %d", len(out), n)
	}
	if out[0] != 0 {
		t.Fatalf("out[0] = %v, want 0", out[0])
	}

	k := (f1 - f0) / float64(n)
	for _, i := range []int{1, 100, 1000, n - 1} {
		tm := float64(i) / fs
		want := math.Sin(2 * math.Pi * (f0 + k*tm*fs) * tm)
		if d := math.Abs(float64(out[i]) - want); d > 1e-4 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestChirpBounded(t *testing.T) {
	g := mustGenerator(t, 1000)
	out, err := g.Chirp(1, 200, 4096)
	if err != nil {
		t.Fatalf("Chirp() error = %v", err)
	}
	for i, v := range out {
		if v < -1 || v > 1 {
			t.Fatalf("out[%d] = %v outside [-1,1]", i, v)
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := mustGenerator(t, 1000, WithSeed(42))
	g2 := mustGenerator(t, 1000, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := mustGenerator(t, 1000)
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestImpulse(t *testing.T) {
	g := mustGenerator(t, 1000)
	out, err := g.Impulse(0.75, 8, 3)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	for i, v := range out {
		var want float32
		if i == 3 {
			want = 0.75
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}

	if _, err := g.Impulse(1, 8, 8); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Impulse(pos=8) error = %v, want ErrInvalidParameter", err)
	}
}

func TestSamplesMustBePositive(t *testing.T) {
	g := mustGenerator(t, 1000)
	if _, err := g.Chirp(1, 2, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Chirp() error = %v, want ErrInvalidParameter", err)
	}
	if _, err := g.Sine(1, 1, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Sine() error = %v, want ErrInvalidParameter", err)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float32{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}
