package section

import (
	"fmt"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
)

// FrameHeader represents the fixed-size header at the start of a value frame.
//
// Header fields are always little-endian. The payload that follows uses the byte order
// recorded in the flag.
type FrameHeader struct {
	// Domain is the domain id of a framed bulk; zero for other objects.
	Domain format.ID // byte offset 4-7
	// Count is the number of elements: 1 for a bulk, the element or id count otherwise.
	Count uint32 // byte offset 8-11
	// PayloadSize is the size of the payload before compression.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the payload before compression.
	Checksum uint64 // byte offset 16-23

	// Flag is a packed field for the magic number, options, object type and compression.
	Flag FrameFlag // byte offset 0-3
}

// NewFrameHeader creates a FrameHeader for objType. Sizes and checksum are filled in by
// the frame writer.
func NewFrameHeader(objType format.ObjectType) *FrameHeader {
	return &FrameHeader{
		Flag: NewFrameFlag(objType),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidFrameSize if data is not 24 bytes, or flag validation errors
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != FrameHeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", errs.ErrInvalidFrameSize, len(data), FrameHeaderSize)
	}

	engine := endian.GetLittleEndianEngine()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.ObjectType = data[2]
	h.Flag.CompressionType = data[3]
	h.Domain = format.ID(engine.Uint32(data[4:8]))
	h.Count = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Flag.Validate()
}

// Bytes serializes the FrameHeader into a new byte slice.
func (h *FrameHeader) Bytes() []byte {
	b := make([]byte, FrameHeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice serializes the header into the first FrameHeaderSize bytes of b.
//
// Panics if b is shorter than FrameHeaderSize.
func (h *FrameHeader) WriteToSlice(b []byte) {
	_ = b[FrameHeaderSize-1]

	engine := endian.GetLittleEndianEngine()

	engine.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.ObjectType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], uint32(h.Domain))
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)
}

// ParseFrameHeader parses a FrameHeader from the start of a frame.
//
// Parameters:
//   - data: Byte slice containing the frame (must be at least 24 bytes)
//
// Returns:
//   - FrameHeader: Parsed header struct
//   - error: ErrInvalidFrameSize or flag validation errors
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < FrameHeaderSize {
		return FrameHeader{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidFrameSize, len(data))
	}

	h := FrameHeader{}
	if err := h.Parse(data[:FrameHeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}
