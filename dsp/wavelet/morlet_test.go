package wavelet

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func TestNewMorlet(t *testing.T) {
	m, err := NewMorlet(1.0)
	require.NoError(t, err)

	assert.Equal(t, float32(1), m.fb)
	assert.Equal(t, float32(2), m.fb2)
	assert.Equal(t, float32(1), m.ifb)
	assert.Equal(t, float32(0.9876), m.FourWavelen())
	assert.False(t, m.ImagFrequency())
	assert.False(t, m.DoubleSided())
	assert.Nil(t, m.Mother())
}

func TestNewMorletRejectsNonPositiveBandwidth(t *testing.T) {
	for _, fb := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		_, err := NewMorlet(fb)
		require.ErrorIs(t, err, ErrInvalidParameter, "bandwidth %v", fb)
	}
}

func TestMorletOptions(t *testing.T) {
	m, err := NewMorlet(2, WithImaginaryFrequency(), WithDoubleSided(), nil)
	require.NoError(t, err)
	assert.True(t, m.ImagFrequency())
	assert.True(t, m.DoubleSided())
}

func TestMorletBandwidth(t *testing.T) {
	m, err := NewMorlet(2.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), m.Bandwidth())
}

func TestMorletSupport(t *testing.T) {
	m, err := NewMorlet(1.0)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Support(1.0))

	m2, err := NewMorlet(2.0)
	require.NoError(t, err)
	assert.Equal(t, 12, m2.Support(2.0))
	assert.Equal(t, 9, m2.Support(1.5))
}

func TestGenerateMotherSmall(t *testing.T) {
	m, err := NewMorlet(1.0)
	require.NoError(t, err)

	mother := m.GenerateMother(4)
	require.Len(t, mother, 4)
	assert.GreaterOrEqual(t, mother[0], float32(0))
	assert.Equal(t, mother, m.Mother())
}

func TestGenerateMotherShape(t *testing.T) {
	m, err := NewMorlet(2.0)
	require.NoError(t, err)

	const size = 1024
	mother := m.GenerateMother(size)
	require.Len(t, mother, size)

	norm := float32(math.Sqrt(2*math.Pi)) * ipi4
	assert.InDelta(t, norm, mother[size/2], eps, "peak at size/2")

	for i := 1; i < size/2; i++ {
		assert.GreaterOrEqual(t, mother[size/2], mother[i])
		// Symmetric around the peak.
		assert.InDelta(t, mother[size/2-i], mother[size/2+i], 1e-5)
	}
	assert.Less(t, mother[0], float32(1e-6))
}

func TestGenerateMotherMatchesFormula(t *testing.T) {
	m, err := NewMorlet(1.5)
	require.NoError(t, err)

	const size = 64
	mother := m.GenerateMother(size)
	norm := math.Sqrt(2*math.Pi) * ipi4
	for i, got := range mother {
		theta := float64(i) * 2 * math.Pi / size
		tmp := 2*theta*1.5 - 2*math.Pi*1.5
		want := norm * math.Exp(-tmp*tmp/2)
		assert.InDelta(t, want, got, 5e-5, "index %d", i)
	}
}

func TestGenerateMotherEmpty(t *testing.T) {
	m, err := NewMorlet(1.0)
	require.NoError(t, err)
	assert.Nil(t, m.GenerateMother(0))
}

func TestGenerateDisplayKernel(t *testing.T) {
	m, err := NewMorlet(2.0)
	require.NoError(t, err)

	const (
		size  = 25
		scale = float32(2.0)
	)
	out := m.Generate(size, scale)
	width := m.Support(scale)
	require.Len(t, out, 2*width+1)

	// Known-good leading samples.
	assert.InDelta(t, 0.05215157, real(out[0]), 1e-4)
	assert.InDelta(t, -0.10700808, real(out[1]), 1e-4)
	assert.InDelta(t, 0, imag(out[0]), 1e-4)

	for i, c := range out {
		u := float64(i-width) / float64(scale)
		g := math.Exp(-(u * u) / float64(m.fb2))
		norm := size * float64(m.ifb) * ipi4
		assert.InDelta(t, norm*g*math.Cos(2*math.Pi*u)/float64(scale), real(c), 1e-4, "re[%d]", i)
		assert.InDelta(t, norm*g*math.Sin(2*math.Pi*u)/float64(scale), imag(c), 1e-4, "im[%d]", i)
	}
}

func TestGenerateMotherConcurrent(t *testing.T) {
	m, err := NewMorlet(2.0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]float32, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.GenerateMother(256)
		}()
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestMorletImplementsWavelet(t *testing.T) {
	var _ Wavelet = (*Morlet)(nil)
}
