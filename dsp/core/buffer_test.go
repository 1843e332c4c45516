package core

import "testing"

func TestRealToComplex(t *testing.T) {
	buf := []complex64{9, 9, 9, 9}
	RealToComplex(buf, []float32{1, 2, 3})
	want := []complex64{1, 2, 3, 9}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}
