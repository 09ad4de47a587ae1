package encoding

import "iter"

// ColumnarEncoder accumulates fixed-width values of type T into a contiguous buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice or Finish.
	// The caller must not modify it.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the number of encoded bytes.
	Size() int

	// Reset discards all written values and keeps the buffer for reuse.
	Reset()

	// Finish returns pooled resources. The encoder is unusable afterwards, and must be
	// called on error paths as well:
	//
	//	enc := NewIDRawEncoder(engine)
	//	defer enc.Finish()
	Finish()

	// Write appends a single value.
	Write(data T)

	// WriteSlice appends all values with a single buffer growth.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values written by the matching ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values in storage order.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is out of range.
	At(data []byte, index int, count int) (T, bool)
}
