package pool

import "testing"

type point struct {
	X, Y int64
}

func TestAllocatorAllocateSlice(t *testing.T) {
	r := NewSyncResource(DefaultConfig())
	defer r.Close()

	a := NewAllocator[point](r)
	s, err := a.AllocateSlice(4)
	if err != nil {
		t.Fatalf("AllocateSlice: %v", err)
	}
	if len(s) != 4 {
		t.Fatalf("expected len 4, got %d", len(s))
	}
	for i := range s {
		s[i] = point{X: int64(i), Y: int64(-i)}
	}
	for i, p := range s {
		if p.X != int64(i) || p.Y != int64(-i) {
			t.Fatalf("element %d corrupted: %+v", i, p)
		}
	}
	a.DeallocateSlice(s)
}

func TestAllocatorZeroLength(t *testing.T) {
	r := NewSyncResource(DefaultConfig())
	defer r.Close()

	a := NewAllocator[point](r)
	s, err := a.AllocateSlice(0)
	if err != nil {
		t.Fatalf("AllocateSlice(0): %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil slice for zero-length allocation, got %v", s)
	}
	a.DeallocateSlice(s) // must not panic
}

func TestAllocatorEqual(t *testing.T) {
	r1 := NewSyncResource(DefaultConfig())
	defer r1.Close()
	r2 := NewSyncResource(DefaultConfig())
	defer r2.Close()

	a1 := NewAllocator[point](r1)
	a1Again := NewAllocator[point](r1)
	a2 := NewAllocator[point](r2)

	if !a1.Equal(a1Again) {
		t.Error("expected allocators over the same resource to be equal")
	}
	if a1.Equal(a2) {
		t.Error("expected allocators over different resources to be unequal")
	}
}

func TestAllocatorRebind(t *testing.T) {
	r := NewSyncResource(DefaultConfig())
	defer r.Close()

	a := NewAllocator[int64](r)
	b := Rebind[int64, point](a)
	if b.Resource() != a.Resource() {
		t.Error("expected Rebind to preserve the resource reference")
	}
}

func TestDefaultAllocatorSharesSingleton(t *testing.T) {
	a := NewDefaultAllocator[int64]()
	b := NewDefaultAllocator[point]()
	if a.Resource() != b.Resource() {
		t.Error("expected all default allocators to share the same process-wide resource")
	}
	if Default() != Default() {
		t.Error("expected Default() to return the same instance across calls")
	}
}
