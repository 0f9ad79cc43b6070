package pool

import (
	"sync"
	"unsafe"
)

// SyncResource is a MemoryResource safe for concurrent use by multiple
// goroutines. A single mutex guards the free-list core; allocate and
// deallocate are the only critical sections, and both are held for the
// entire duration of the underlying core call, including any
// system-allocator interaction during a refill. There is no nested
// locking and no user-visible callback is invoked while the lock is held.
type SyncResource struct {
	mu sync.Mutex
	fl *freeList
}

var _ MemoryResource = (*SyncResource)(nil)

// NewSyncResource creates a new, empty synchronized resource.
func NewSyncResource(config Config) *SyncResource {
	return &SyncResource{fl: newFreeList(config)}
}

func (r *SyncResource) DoAllocate(bytes, alignment uintptr) (unsafe.Pointer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fl.allocate(bytes, alignment)
}

func (r *SyncResource) DoDeallocate(addr unsafe.Pointer, bytes, alignment uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fl.deallocate(addr, bytes, alignment)
}

// DoIsEqual compares by identity: two SyncResource values are equal only
// if they are the same instance.
func (r *SyncResource) DoIsEqual(other MemoryResource) bool {
	o, ok := other.(*SyncResource)
	return ok && o == r
}

// Close releases every chunk retained by the resource, in registration
// order. The resource must not be used again afterward.
func (r *SyncResource) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fl.close()
}
