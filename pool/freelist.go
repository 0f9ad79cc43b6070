package pool

import (
	"errors"
	"unsafe"
)

// chunk is one raw system allocation retained for the lifetime of a
// freeList, sliced into same-sized free-list nodes during a refill.
// Chunks are never split across size classes and never released
// individually — only in bulk, on Close.
type chunk struct {
	data []byte
}

// freeList is the shared state machine underlying both resource variants:
// an array of per-size-class free-list heads plus the chunk registry
// backing them. It has no synchronization of its own — that is the
// resource wrapper's job (see SyncResource and UnsyncResource).
type freeList struct {
	heads  [NumSizeClasses]unsafe.Pointer
	chunks []chunk
	config Config
}

func newFreeList(config Config) *freeList {
	return &freeList{config: config}
}

// allocate returns an address valid for writes of bytes bytes, aligned to
// at least alignment. It fails with ErrOutOfMemory when the system
// allocator refuses even after chunkAlloc's degradation path.
func (f *freeList) allocate(bytes, alignment uintptr) (unsafe.Pointer, error) {
	if isLarge(bytes, alignment) {
		ptr, err := sysAllocAligned(bytes, alignment)
		if err != nil {
			f.config.logger().Error("pool: large allocation failed", "bytes", bytes, "alignment", alignment, "error", err)
			return nil, ErrOutOfMemory
		}
		return ptr, nil
	}

	if bytes == 0 {
		bytes = Align
	}
	rounded := roundUp(bytes)
	idx := sizeClassIndex(rounded)

	if head := f.heads[idx]; head != nil {
		f.heads[idx] = nodeAt(head).next
		return head, nil
	}
	return f.refill(idx, rounded)
}

// deallocate returns previously allocated storage. addr, bytes and
// alignment must match the values passed to the original allocate call. A
// nil addr is a no-op.
func (f *freeList) deallocate(addr unsafe.Pointer, bytes, alignment uintptr) {
	if addr == nil {
		return
	}
	if isLarge(bytes, alignment) {
		if err := sysFreeAligned(addr, bytes, alignment); err != nil {
			f.config.logger().Error("pool: releasing large allocation failed", "bytes", bytes, "alignment", alignment, "error", err)
		}
		return
	}

	if bytes == 0 {
		bytes = Align
	}
	rounded := roundUp(bytes)
	idx := sizeClassIndex(rounded)

	node := nodeAt(addr)
	node.next = f.heads[idx]
	f.heads[idx] = addr
}

// refill obtains a fresh batch of nodes of the given size for the size
// class at idx: one system allocation carved into up to f.config.batchSize
// nodes, the first returned directly and the rest threaded onto the
// matching free list.
func (f *freeList) refill(idx int, size uintptr) (unsafe.Pointer, error) {
	nObj := f.config.batchSize()
	data, err := f.chunkAlloc(size, &nObj)
	if err != nil {
		return nil, err
	}
	f.chunks = append(f.chunks, chunk{data: data})

	base := unsafe.Pointer(&data[0])
	if nObj == 1 {
		return base, nil
	}

	baseAddr := uintptr(base)
	var head unsafe.Pointer
	for i := nObj - 1; i >= 1; i-- {
		node := unsafe.Pointer(baseAddr + uintptr(i)*size)
		nodeAt(node).next = head
		head = node
	}
	f.heads[idx] = head
	return base, nil
}

// chunkAlloc requests nObj*size bytes from the system allocator. On
// refusal it halves *nObj and retries, recursively, until *nObj == 1; if
// the single-node request also fails it signals ErrOutOfMemory.
func (f *freeList) chunkAlloc(size uintptr, nObj *int) ([]byte, error) {
	for {
		total := size * uintptr(*nObj)
		ptr, err := sysAllocAligned(total, Align)
		if err == nil {
			return unsafe.Slice((*byte)(ptr), total), nil
		}
		if *nObj == 1 {
			f.config.logger().Error("pool: refill failed at minimum batch size", "size", size, "error", err)
			return nil, ErrOutOfMemory
		}
		*nObj /= 2
	}
}

// close releases every chunk in the registry exactly once, in registration
// order. Any outstanding free-list nodes are implicitly invalidated —
// there is no independent lifecycle to unwind for them.
func (f *freeList) close() error {
	var errs []error
	for _, c := range f.chunks {
		if err := sysFreeAligned(unsafe.Pointer(&c.data[0]), uintptr(len(c.data)), Align); err != nil {
			errs = append(errs, err)
		}
	}
	f.chunks = nil
	return errors.Join(errs...)
}
