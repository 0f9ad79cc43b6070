package pool

import "errors"

// ErrOutOfMemory is returned when the underlying system allocator refuses a
// request even after chunkAlloc has degraded its batch size down to a
// single node. The resource that produced it remains usable for smaller,
// still-satisfiable requests.
var ErrOutOfMemory = errors.New("pool: out of memory")
