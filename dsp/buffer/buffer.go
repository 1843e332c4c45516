package buffer

// Buffer wraps a complex64 slice with reuse-friendly semantics.
type Buffer struct {
	bins []complex64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{bins: make([]complex64, length)}
}

// Bins returns the underlying slice.
func (b *Buffer) Bins() []complex64 {
	return b.bins
}

// Len returns the current number of bins.
func (b *Buffer) Len() int {
	return len(b.bins)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.bins)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.bins)
	if n <= cap(b.bins) {
		b.bins = b.bins[:n]
	} else {
		s := make([]complex64, n)
		copy(s, b.bins)
		b.bins = s
	}
	// Stale data from earlier use of the backing array.
	for i := oldLen; i < n; i++ {
		b.bins[i] = 0
	}
}

// Zero sets all bins to 0.
func (b *Buffer) Zero() {
	clear(b.bins)
}
