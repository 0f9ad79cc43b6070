package pool

import "sync"

var (
	defaultOnce     sync.Once
	defaultResource *SyncResource
)

// Default returns the process-wide default resource, constructing it on
// first use. Allocator[T] falls back to this resource when none is
// explicitly supplied. Its pointer is read but never mutated once built.
func Default() *SyncResource {
	defaultOnce.Do(func() {
		defaultResource = NewSyncResource(DefaultConfig())
	})
	return defaultResource
}

// NewDefaultAllocator returns an Allocator[T] bound to the process-wide
// default resource.
func NewDefaultAllocator[T any]() Allocator[T] {
	return NewAllocator[T](Default())
}
