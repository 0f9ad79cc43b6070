package pool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// pageSize is cached once; unix.Getpagesize issues a syscall on some
// platforms and the value never changes for the life of the process.
var pageSize = uintptr(unix.Getpagesize())

// headerSize is the room reserved immediately before an over-aligned
// pointer to stash the address of the underlying mmap region, so that
// sysFreeAligned can recover it without the caller having to remember anything
// beyond the (bytes, alignment) pair it already carries.
const headerSize = unsafe.Sizeof(uintptr(0))

func roundUpTo(n, multiple uintptr) uintptr {
	if multiple == 0 {
		return n
	}
	return (n + multiple - 1) &^ (multiple - 1)
}

// sysAllocRegion asks the operating system directly for length bytes of
// anonymous, zero-filled memory, off the Go heap. This is the same
// technique the chunk pool it is descended from uses to obtain off-heap
// storage: unsafe.Pointer arithmetic over an mmap'd region is sound only
// because that region is never touched by Go's garbage collector.
func sysAllocRegion(length uintptr) ([]byte, error) {
	if length == 0 {
		length = pageSize
	}
	data, err := unix.Mmap(-1, 0, int(length),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("pool: mmap %d bytes: %w", length, err)
	}
	return data, nil
}

// sysFreeRegion returns a region previously obtained from sysAllocRegion.
func sysFreeRegion(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("pool: munmap %d bytes: %w", len(data), err)
	}
	return nil
}

// sysAllocAligned allocates bytes with the given alignment guarantee,
// directly from the system allocator. It is used for the large-object
// fallback path and never registers anything in a chunk registry — the
// caller is expected to release the returned pointer with sysFreeAligned
// using the exact same (bytes, alignment) pair.
//
// mmap regions are already page-aligned, which trivially satisfies any
// alignment up to the page size (the common case). For alignment requests
// beyond the page size,
// the region is over-allocated and a header word stashed just before the
// aligned pointer records the true mmap base so sysFreeAligned can
// recover it.
func sysAllocAligned(bytes, alignment uintptr) (unsafe.Pointer, error) {
	if alignment <= pageSize {
		length := roundUpTo(bytes, pageSize)
		data, err := sysAllocRegion(length)
		if err != nil {
			return nil, err
		}
		return unsafe.Pointer(&data[0]), nil
	}

	length := roundUpTo(bytes+alignment+headerSize, pageSize)
	data, err := sysAllocRegion(length)
	if err != nil {
		return nil, err
	}
	base := uintptr(unsafe.Pointer(&data[0]))
	raw := base + headerSize
	aligned := roundUpTo(raw, alignment)
	*(*uintptr)(unsafe.Pointer(aligned - headerSize)) = base
	return unsafe.Pointer(aligned), nil
}

// sysFreeAligned releases memory obtained from sysAllocAligned. bytes and
// alignment must match the original allocation exactly, mirroring the
// contract deallocate() has with allocate() throughout this package.
func sysFreeAligned(addr unsafe.Pointer, bytes, alignment uintptr) error {
	if alignment <= pageSize {
		length := roundUpTo(bytes, pageSize)
		if length == 0 {
			length = pageSize
		}
		data := unsafe.Slice((*byte)(addr), length)
		return sysFreeRegion(data)
	}

	base := *(*uintptr)(unsafe.Pointer(uintptr(addr) - headerSize))
	length := roundUpTo(bytes+alignment+headerSize, pageSize)
	data := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)
	return sysFreeRegion(data)
}
