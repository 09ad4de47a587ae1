package section

import (
	"fmt"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
)

// FrameFlag represents the packed flag fields at the start of a frame header.
type FrameFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the payload endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number, 0xB710 for frame format v1.
	Options uint16

	// ObjectType is the format.ObjectType of the framed container.
	ObjectType uint8
	// CompressionType is the format.CompressionType applied to the payload.
	CompressionType uint8
}

var (
	validObjectTypes = map[uint8]struct{}{
		uint8(format.ObjectVoid):    {},
		uint8(format.ObjectBulk):    {},
		uint8(format.ObjectVector):  {},
		uint8(format.ObjectUVector): {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// NewFrameFlag creates a flag for an uncompressed frame of objType whose payload uses
// the host byte order.
func NewFrameFlag(objType format.ObjectType) FrameFlag {
	flag := FrameFlag{
		Options:         MagicFrameV1Opt,
		ObjectType:      uint8(objType),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.SetEndianEngine(endian.GetNativeEngine())

	return flag
}

// IsLittleEndian returns whether the payload is little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian marks the payload as little-endian.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian marks the payload as big-endian.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetEndianEngine marks the payload with the byte order of engine.
func (f *FrameFlag) SetEndianEngine(engine endian.EndianEngine) {
	if endian.IsLittleEndian(engine) {
		f.WithLittleEndian()
	} else {
		f.WithBigEndian()
	}
}

// GetEndianEngine returns the engine matching the payload byte order.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

// Object returns the framed object type.
func (f FrameFlag) Object() format.ObjectType {
	return format.ObjectType(f.ObjectType)
}

// SetObject sets the framed object type.
func (f *FrameFlag) SetObject(objType format.ObjectType) {
	f.ObjectType = uint8(objType)
}

// Compression returns the payload compression type.
func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks if the flag contains valid values.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() || f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: options 0x%04x", errs.ErrInvalidMagic, f.Options)
	}

	if _, ok := validObjectTypes[f.ObjectType]; !ok {
		return fmt.Errorf("%w: %d", errs.ErrInvalidObjectType, f.ObjectType)
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}
