package pool

import "unsafe"

// UnsyncResource is a MemoryResource with no synchronization of its own.
// The caller must ensure no two operations on the same UnsyncResource ever
// overlap; distinct UnsyncResource instances are fully independent and may
// be driven concurrently from different goroutines without coordination.
type UnsyncResource struct {
	fl *freeList
}

var _ MemoryResource = (*UnsyncResource)(nil)

// NewUnsyncResource creates a new, empty unsynchronized resource.
func NewUnsyncResource(config Config) *UnsyncResource {
	return &UnsyncResource{fl: newFreeList(config)}
}

func (r *UnsyncResource) DoAllocate(bytes, alignment uintptr) (unsafe.Pointer, error) {
	return r.fl.allocate(bytes, alignment)
}

func (r *UnsyncResource) DoDeallocate(addr unsafe.Pointer, bytes, alignment uintptr) {
	r.fl.deallocate(addr, bytes, alignment)
}

// DoIsEqual compares by identity: two UnsyncResource values are equal only
// if they are the same instance.
func (r *UnsyncResource) DoIsEqual(other MemoryResource) bool {
	o, ok := other.(*UnsyncResource)
	return ok && o == r
}

// Close releases every chunk retained by the resource, in registration
// order. The resource must not be used again afterward.
func (r *UnsyncResource) Close() error {
	return r.fl.close()
}
