package pool

import "unsafe"

// Allocator is a typed allocator parameterized by element type T. It holds
// a non-owning reference to a MemoryResource and forwards every operation
// to it after computing the byte size and alignment for T. The zero value
// is not usable directly; construct one with NewAllocator, or take the
// process-wide default via Default().
type Allocator[T any] struct {
	resource MemoryResource
}

// NewAllocator creates an allocator over the given resource.
func NewAllocator[T any](resource MemoryResource) Allocator[T] {
	return Allocator[T]{resource: resource}
}

// Resource returns the resource this allocator forwards to.
func (a Allocator[T]) Resource() MemoryResource {
	return a.resource
}

func elemSizeAlign[T any]() (size, align uintptr) {
	var zero T
	return unsafe.Sizeof(zero), unsafe.Alignof(zero)
}

// Allocate computes n * sizeof(T) bytes at alignof(T) and forwards to the
// underlying resource, returning a raw pointer to the first element.
func (a Allocator[T]) Allocate(n int) (unsafe.Pointer, error) {
	size, align := elemSizeAlign[T]()
	return a.resource.DoAllocate(uintptr(n)*size, align)
}

// AllocateSlice is a convenience wrapper around Allocate that returns a
// typed Go slice view over the pool-owned memory, since a bare pointer is
// far less usable from ordinary Go code than the pointer-plus-length view
// a slice provides. The returned slice must be released with
// DeallocateSlice, not by any other means.
func (a Allocator[T]) AllocateSlice(n int) ([]T, error) {
	ptr, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate returns storage obtained from Allocate(n).
func (a Allocator[T]) Deallocate(p unsafe.Pointer, n int) {
	size, align := elemSizeAlign[T]()
	a.resource.DoDeallocate(p, uintptr(n)*size, align)
}

// DeallocateSlice returns storage obtained from AllocateSlice.
func (a Allocator[T]) DeallocateSlice(s []T) {
	if len(s) == 0 {
		return
	}
	a.Deallocate(unsafe.Pointer(&s[0]), len(s))
}

// Equal reports whether two allocators reference the same resource.
func (a Allocator[T]) Equal(other Allocator[T]) bool {
	if a.resource == other.resource {
		return true
	}
	if a.resource == nil || other.resource == nil {
		return false
	}
	return a.resource.DoIsEqual(other.resource)
}

// Rebind returns an allocator for a different element type U that
// references the same resource as a. Go has no implicit template rebind,
// so this is a plain conversion function instead of a member.
func Rebind[T, U any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{resource: a.resource}
}
