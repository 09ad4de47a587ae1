package pool

import (
	"sync"

	"github.com/arloliu/grnbulk/format"
)

// idSlicePool holds scratch slices for ids coerced from dynamic values before they
// are packed into a vector or uvector.
var idSlicePool = sync.Pool{
	New: func() any { return &[]format.ID{} },
}

// GetIDSlice retrieves and resizes an id slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []format.ID: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	ids, cleanup := pool.GetIDSlice(len(values))
//	defer cleanup()
func GetIDSlice(size int) ([]format.ID, func()) {
	ptr, _ := idSlicePool.Get().(*[]format.ID)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]format.ID, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { idSlicePool.Put(ptr) }
}
