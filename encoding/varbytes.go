package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/internal/pool"
)

// MaxVarBytesLength is the largest byte string accepted by VarBytesEncoder (2GiB - 1),
// matching the largest text domain.
const MaxVarBytesLength = 1<<31 - 1

// VarBytesEncoder writes uvarint length-prefixed byte strings interleaved with
// fixed-width uint32 fields.
//
// Vector frames use it to serialize each element as
//
//	uvarint(len) | bytes | weight (uint32) | domain (uint32)
//
// The working buffer comes from the frame buffer pool and is released by Finish.
type VarBytesEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewVarBytesEncoder creates a length-prefixed byte string encoder.
func NewVarBytesEncoder(engine endian.EndianEngine) *VarBytesEncoder {
	return &VarBytesEncoder{
		engine: engine,
		buf:    pool.GetFrameBuffer(),
	}
}

// WriteBytes appends a length-prefixed byte string.
//
// Returns an error if data is longer than MaxVarBytesLength.
func (e *VarBytesEncoder) WriteBytes(data []byte) error {
	if len(data) > MaxVarBytesLength {
		return fmt.Errorf("byte string length %d exceeds maximum %d", len(data), MaxVarBytesLength)
	}

	e.count++
	e.buf.Grow(binary.MaxVarintLen32 + len(data))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(data)))
	e.buf.MustWrite(data)

	return nil
}

// WriteUint32 appends v as a fixed 4-byte field.
func (e *VarBytesEncoder) WriteUint32(v uint32) {
	e.buf.B = e.engine.AppendUint32(e.buf.B, v)
}

// Bytes returns the encoded data. The slice references the pooled buffer.
func (e *VarBytesEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of byte strings written.
func (e *VarBytesEncoder) Len() int {
	return e.count
}

// Size returns the number of bytes written.
func (e *VarBytesEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarBytesEncoder) Finish() {
	if e.buf != nil {
		pool.PutFrameBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarBytesReader reads data written by VarBytesEncoder in the same field order.
type VarBytesReader struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// NewVarBytesReader creates a reader over data.
func NewVarBytesReader(data []byte, engine endian.EndianEngine) *VarBytesReader {
	return &VarBytesReader{data: data, engine: engine}
}

// ReadBytes reads the next length-prefixed byte string.
//
// The returned slice aliases the reader's input.
func (r *VarBytesReader) ReadBytes() ([]byte, error) {
	length, n := binary.Uvarint(r.data[r.offset:])
	if n <= 0 {
		return nil, fmt.Errorf("invalid length prefix at offset %d", r.offset)
	}
	if length > MaxVarBytesLength {
		return nil, fmt.Errorf("byte string length %d exceeds maximum %d", length, MaxVarBytesLength)
	}

	start := r.offset + n
	end := start + int(length)
	if end > len(r.data) {
		return nil, fmt.Errorf("insufficient data for byte string: need %d bytes at offset %d, have %d",
			length, start, len(r.data)-start)
	}
	r.offset = end

	return r.data[start:end], nil
}

// ReadUint32 reads the next fixed 4-byte field.
func (r *VarBytesReader) ReadUint32() (uint32, error) {
	if r.Remaining() < UInt32Size {
		return 0, fmt.Errorf("insufficient data for uint32 at offset %d", r.offset)
	}

	v := r.engine.Uint32(r.data[r.offset : r.offset+UInt32Size])
	r.offset += UInt32Size

	return v, nil
}

// Remaining returns the number of unread bytes.
func (r *VarBytesReader) Remaining() int {
	return len(r.data) - r.offset
}
