package pool

import "unsafe"

// MemoryResource is the capability set both resource variants implement: a
// runtime-swappable allocate/deallocate/equality contract. It is the Go
// analogue of a polymorphic memory resource — an interface rather than a
// vtable, but serving the same purpose.
type MemoryResource interface {
	// DoAllocate returns an address valid for writes of bytes bytes,
	// aligned to at least alignment. It returns ErrOutOfMemory on failure.
	DoAllocate(bytes, alignment uintptr) (unsafe.Pointer, error)

	// DoDeallocate returns previously allocated storage. addr, bytes and
	// alignment must match the original DoAllocate call.
	DoDeallocate(addr unsafe.Pointer, bytes, alignment uintptr)

	// DoIsEqual reports whether other refers to the same resource. Every
	// resource in this package compares equal only by identity.
	DoIsEqual(other MemoryResource) bool
}
