package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []complex64{1, 2, complex(3, 1)}
	b := []complex64{1, complex(2, 0.5), complex(3, 1)}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-0.5) > 1e-7 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]complex64{1}, []complex64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]complex64{complex(3, 4), -1}); math.Abs(got-5) > 1e-7 {
		t.Fatalf("MaxAbs = %v, want 5", got)
	}
}

func TestRequireComplexNearlyEqual(t *testing.T) {
	RequireComplexNearlyEqual(t, []complex64{complex(1, 1)}, []complex128{complex(1, 1.0000001)}, 1e-6)
}
