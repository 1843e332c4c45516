package buffer

import "testing"

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Bins() {
		if v != 0 {
			t.Fatalf("Bins()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(4)
	b.Bins()[0] = complex(42, 1)
	b.Bins()[3] = complex(43, 1)
	p.Put(b)

	b2 := p.Get(4)
	for i, v := range b2.Bins() {
		if v != 0 {
			t.Fatalf("reused Bins()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil)
}
