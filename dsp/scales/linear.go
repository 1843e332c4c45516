package scales

// LinFreqs spaces analysis frequencies evenly in frequency.
//
// For count frequencies between start and end the grid is
// start + i*(end-start)/count for i in [0, count), so the lowest row is
// exactly start and the highest row sits one grid step below end.
type LinFreqs struct {
	*table
}

// NewLinFreqs creates a linear frequency scale set. It fails with
// ErrInvalidRange unless 0 < start < end <= sampleRate/2 and count > 0.
func NewLinFreqs(sampleRate int, start, end float32, count int) (*LinFreqs, error) {
	if err := validate(sampleRate, start, end, count); err != nil {
		return nil, err
	}

	df := (end - start) / float32(count)
	t := fill(sampleRate, count, func(i int) float32 {
		return start + df*float32(i)
	})
	return &LinFreqs{table: t}, nil
}
