package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	for i, v := range b.Bins() {
		if v != 0 {
			t.Fatalf("Bins()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	if New(-3).Len() != 0 {
		t.Fatal("negative length should yield empty buffer")
	}
}

func TestResizeGrow(t *testing.T) {
	b := New(2)
	b.Bins()[0] = complex(1, 1)
	b.Resize(5)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if b.Bins()[0] != complex(1, 1) {
		t.Fatal("Resize should preserve existing bins")
	}
}

func TestResizeReuseClearsStaleData(t *testing.T) {
	b := New(8)
	for i := range b.Bins() {
		b.Bins()[i] = complex(float32(i), 0)
	}
	b.Resize(2)
	b.Resize(8)
	if b.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", b.Cap())
	}
	for i := 2; i < 8; i++ {
		if b.Bins()[i] != 0 {
			t.Fatalf("Bins()[%d] = %v, want 0 after regrow", i, b.Bins()[i])
		}
	}
}

func TestResizeNegative(t *testing.T) {
	b := New(4)
	b.Resize(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
}

func TestZero(t *testing.T) {
	b := New(3)
	b.Bins()[1] = complex(2, -2)
	b.Zero()
	for i, v := range b.Bins() {
		if v != 0 {
			t.Fatalf("Bins()[%d] = %v, want 0", i, v)
		}
	}
}
