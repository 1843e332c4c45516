package testutil

import (
	"fmt"
	"math/cmplx"
	"testing"
)

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair is further apart than eps (absolute tolerance).
func RequireComplexNearlyEqual(t *testing.T, got []complex64, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(complex128(got[i]) - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the largest modulus of the elementwise difference.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []complex64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := cmplx.Abs(complex128(a[i]) - complex128(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxAbs returns the largest modulus in x.
func MaxAbs(x []complex64) float64 {
	m := 0.0
	for _, v := range x {
		if a := cmplx.Abs(complex128(v)); a > m {
			m = a
		}
	}
	return m
}
