package rope

import "testing"

type countingAllocator struct {
	allocated, freed int
}

func (a *countingAllocator) NodeAllocated(n int) { a.allocated += n }
func (a *countingAllocator) NodeFreed(n int)     { a.freed += n }

func TestNewNodeAccounting(t *testing.T) {
	var a countingAllocator
	n := newNode(&a, 3, []byte("abc"))
	if n.level() != 3 {
		t.Fatalf("level = %d, want 3", n.level())
	}
	if a.allocated == 0 {
		t.Fatalf("expected NodeAllocated to be called")
	}
	freeNode(&a, n)
	if a.freed != a.allocated {
		t.Fatalf("freed %d != allocated %d", a.freed, a.allocated)
	}
}

func TestNewNodeRetainsSlice(t *testing.T) {
	chunk := []byte("hello")
	n := newNode(nil, 1, chunk)
	if &n.bytes[0] != &chunk[0] {
		t.Fatalf("newNode must retain, not copy, the chunk slice")
	}
}

func TestNodeCharLen(t *testing.T) {
	n := newNode(nil, 1, []byte("abc"))
	n.links[0].chars = 3
	if n.charLen() != 3 {
		t.Fatalf("charLen() = %d, want 3", n.charLen())
	}
}
