package encoding

import (
	"iter"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/pool"
)

// IDRawEncoder packs ids back-to-back, 4 bytes each, with no delimiters.
//
// The working buffer comes from the id buffer pool. Bytes must be copied out before
// Finish returns the buffer to the pool.
type IDRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[format.ID] = (*IDRawEncoder)(nil)

// NewIDRawEncoder creates an id run encoder.
//
// Parameters:
//   - engine: Endian engine for byte order (normally the host engine)
//
// Returns:
//   - *IDRawEncoder: A new encoder backed by a pooled buffer
func NewIDRawEncoder(engine endian.EndianEngine) *IDRawEncoder {
	return &IDRawEncoder{
		engine: engine,
		buf:    pool.GetIDBuffer(),
	}
}

// Write appends a single id.
//
// Panics if Finish() has been called.
func (e *IDRawEncoder) Write(id format.ID) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(IDSize)

	n := e.buf.Len()
	e.engine.PutUint32(e.buf.Slice(n, n+IDSize), uint32(id))
	e.buf.SetLength(n + IDSize)
}

// WriteSlice appends all ids with a single buffer growth.
//
// Panics if Finish() has been called.
func (e *IDRawEncoder) WriteSlice(ids []format.ID) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(ids) == 0 {
		return
	}

	e.count += len(ids)

	start := e.buf.Len()
	e.buf.ExtendOrGrow(len(ids) * IDSize)

	for i, id := range ids {
		offset := start + i*IDSize
		e.engine.PutUint32(e.buf.Slice(offset, offset+IDSize), uint32(id))
	}
}

// Bytes returns the packed ids. The slice references the pooled buffer.
//
// Panics if Finish() has been called.
func (e *IDRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of ids written.
func (e *IDRawEncoder) Len() int {
	return e.count
}

// Size returns the number of bytes written.
//
// Panics if Finish() has been called.
func (e *IDRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset drops all written ids and keeps the buffer.
func (e *IDRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *IDRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutIDBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// IDRawDecoder reads id runs written by IDRawEncoder.
type IDRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[format.ID] = IDRawDecoder{}

// NewIDRawDecoder creates an id run decoder; engine must match the encoder's.
func NewIDRawDecoder(engine endian.EndianEngine) IDRawDecoder {
	return IDRawDecoder{engine: engine}
}

// Count returns the number of whole ids in data. A trailing partial id is ignored.
func (d IDRawDecoder) Count(data []byte) int {
	return len(data) / IDSize
}

// All yields count ids from the start of data.
//
// Nothing is yielded if data holds fewer than count ids.
func (d IDRawDecoder) All(data []byte, count int) iter.Seq[format.ID] {
	return func(yield func(format.ID) bool) {
		if count <= 0 || len(data) < count*IDSize {
			return
		}

		for i := range count {
			start := i * IDSize
			if !yield(format.ID(d.engine.Uint32(data[start : start+IDSize]))) {
				return
			}
		}
	}
}

// At returns the id at index.
func (d IDRawDecoder) At(data []byte, index int, count int) (format.ID, bool) {
	if index < 0 || index >= count {
		return format.NilID, false
	}

	start := index * IDSize
	if start+IDSize > len(data) {
		return format.NilID, false
	}

	return format.ID(d.engine.Uint32(data[start : start+IDSize])), true
}
