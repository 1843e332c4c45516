package cwt

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Result is a dense scales x samples matrix of complex coefficients in
// row-major order.
type Result struct {
	scales  int
	samples int
	data    []complex64
}

// NewResult returns a zero-filled matrix. Negative dimensions are treated as 0.
func NewResult(numScales, numSamples int) *Result {
	numScales = max(numScales, 0)
	numSamples = max(numSamples, 0)
	return &Result{
		scales:  numScales,
		samples: numSamples,
		data:    make([]complex64, numScales*numSamples),
	}
}

// NumScales returns the number of rows.
func (r *Result) NumScales() int { return r.scales }

// NumSamples returns the number of columns.
func (r *Result) NumSamples() int { return r.samples }

// Data returns the backing row-major slice.
func (r *Result) Data() []complex64 { return r.data }

func (r *Result) row(s int) []complex64 {
	lo := s * r.samples
	hi := lo + r.samples
	return r.data[lo:hi:hi]
}

func (r *Result) checkRow(s int) error {
	if s < 0 || s >= r.scales {
		return fmt.Errorf("%w: scale %d of %d", ErrIndexOutOfRange, s, r.scales)
	}
	return nil
}

// Row returns a view of row s. Writes through the view modify the result.
func (r *Result) Row(s int) ([]complex64, error) {
	if err := r.checkRow(s); err != nil {
		return nil, err
	}
	return r.row(s), nil
}

// At returns the coefficient at scale s and sample i.
func (r *Result) At(s, i int) (complex64, error) {
	if err := r.checkRow(s); err != nil {
		return 0, err
	}
	if i < 0 || i >= r.samples {
		return 0, fmt.Errorf("%w: sample %d of %d", ErrIndexOutOfRange, i, r.samples)
	}
	return r.data[s*r.samples+i], nil
}

// Rows returns views of all rows.
func (r *Result) Rows() [][]complex64 {
	out := make([][]complex64, r.scales)
	for s := range out {
		out[s] = r.row(s)
	}
	return out
}

// Clone returns a deep copy.
func (r *Result) Clone() *Result {
	c := NewResult(r.scales, r.samples)
	copy(c.data, r.data)
	return c
}

// Normalize divides every coefficient by the row length. Rows are
// processed in parallel.
func (r *Result) Normalize() {
	if r.samples == 0 {
		return
	}
	n := float32(r.samples)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for s := range r.scales {
		g.Go(func() error {
			row := r.row(s)
			for i, v := range row {
				row[i] = complex(real(v)/n, imag(v)/n)
			}
			return nil
		})
	}
	_ = g.Wait()
}

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// split unpacks row into pooled real and imaginary parts.
func split(row []complex64) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(row)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	buf.data = buf.data[:2*n]
	re, im = buf.data[:n], buf.data[n:]
	for i, c := range row {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
	return re, im, buf
}

// Magnitude returns |W(s, i)| for row s.
func (r *Result) Magnitude(s int) ([]float64, error) {
	if err := r.checkRow(s); err != nil {
		return nil, err
	}
	out := make([]float64, r.samples)
	re, im, buf := split(r.row(s))
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out, nil
}

// Power returns |W(s, i)|^2 for row s.
func (r *Result) Power(s int) ([]float64, error) {
	if err := r.checkRow(s); err != nil {
		return nil, err
	}
	out := make([]float64, r.samples)
	re, im, buf := split(r.row(s))
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out, nil
}

// Energy returns the summed power of every row.
func (r *Result) Energy() []float64 {
	out := make([]float64, r.scales)
	for s := range out {
		p, _ := r.Power(s)
		out[s] = floats.Sum(p)
	}
	return out
}

// Ridge returns, for every sample, the row with the largest magnitude.
// It returns nil for a result without rows.
func (r *Result) Ridge() []int {
	if r.scales == 0 {
		return nil
	}
	mags := make([][]float64, r.scales)
	for s := range mags {
		mags[s], _ = r.Magnitude(s)
	}

	out := make([]int, r.samples)
	col := make([]float64, r.scales)
	for i := range out {
		for s := range col {
			col[s] = mags[s][i]
		}
		out[i] = floats.MaxIdx(col)
	}
	return out
}
