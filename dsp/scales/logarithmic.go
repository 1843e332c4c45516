package scales

import "math"

// LogFreqs spaces analysis frequencies evenly in log-frequency.
//
// The grid is start * (end/start)^(i/count) for i in [0, count), giving the
// same boundary behaviour as LinFreqs: the lowest row is exactly start.
type LogFreqs struct {
	*table
}

// NewLogFreqs creates a logarithmic frequency scale set with the same
// validation rules as NewLinFreqs.
func NewLogFreqs(sampleRate int, start, end float32, count int) (*LogFreqs, error) {
	if err := validate(sampleRate, start, end, count); err != nil {
		return nil, err
	}

	ratio := math.Log(float64(end) / float64(start))
	t := fill(sampleRate, count, func(i int) float32 {
		if i == 0 {
			return start
		}
		return float32(float64(start) * math.Exp(ratio*float64(i)/float64(count)))
	})
	return &LogFreqs{table: t}, nil
}
