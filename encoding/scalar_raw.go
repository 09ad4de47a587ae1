package encoding

import (
	"math"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/format"
)

// Fixed widths of the scalar layouts, in bytes.
const (
	Int32Size     = 4
	UInt32Size    = 4
	Int64Size     = 8
	Float64Size   = 8
	TimestampSize = Int32Size + Int32Size
	IDSize        = format.IDSize
)

// ScalarRawEncoder appends single scalars in their fixed-width layout.
//
// It holds no buffer of its own: each Append method writes into dst and returns the
// extended slice, so the caller owns the result. The encoder is a small value type and
// safe for concurrent use.
type ScalarRawEncoder struct {
	engine endian.EndianEngine
}

// NewScalarRawEncoder creates a scalar encoder writing with engine's byte order.
func NewScalarRawEncoder(engine endian.EndianEngine) ScalarRawEncoder {
	return ScalarRawEncoder{engine: engine}
}

// AppendInt32 appends v as 4 bytes.
func (e ScalarRawEncoder) AppendInt32(dst []byte, v int32) []byte {
	return e.engine.AppendUint32(dst, uint32(v)) //nolint:gosec
}

// AppendUInt32 appends v as 4 bytes.
func (e ScalarRawEncoder) AppendUInt32(dst []byte, v uint32) []byte {
	return e.engine.AppendUint32(dst, v)
}

// AppendInt64 appends v as 8 bytes.
func (e ScalarRawEncoder) AppendInt64(dst []byte, v int64) []byte {
	return e.engine.AppendUint64(dst, uint64(v)) //nolint:gosec
}

// AppendFloat64 appends the IEEE 754 bits of v as 8 bytes.
func (e ScalarRawEncoder) AppendFloat64(dst []byte, v float64) []byte {
	return e.engine.AppendUint64(dst, math.Float64bits(v))
}

// AppendTimestamp appends whole seconds followed by the microsecond remainder,
// each as an int32.
func (e ScalarRawEncoder) AppendTimestamp(dst []byte, sec, usec int32) []byte {
	dst = e.AppendInt32(dst, sec)
	return e.AppendInt32(dst, usec)
}

// AppendID appends id as 4 bytes.
func (e ScalarRawEncoder) AppendID(dst []byte, id format.ID) []byte {
	return e.engine.AppendUint32(dst, uint32(id))
}

// ScalarRawDecoder reinterprets the fixed-width prefix of a buffer as a scalar.
//
// Each method returns false when data is shorter than the kind's width. Bytes past the
// width are ignored.
type ScalarRawDecoder struct {
	engine endian.EndianEngine
}

// NewScalarRawDecoder creates a scalar decoder; engine must match the encoder's.
func NewScalarRawDecoder(engine endian.EndianEngine) ScalarRawDecoder {
	return ScalarRawDecoder{engine: engine}
}

func (d ScalarRawDecoder) Int32(data []byte) (int32, bool) {
	if len(data) < Int32Size {
		return 0, false
	}

	return int32(d.engine.Uint32(data[:Int32Size])), true //nolint:gosec
}

func (d ScalarRawDecoder) UInt32(data []byte) (uint32, bool) {
	if len(data) < UInt32Size {
		return 0, false
	}

	return d.engine.Uint32(data[:UInt32Size]), true
}

func (d ScalarRawDecoder) Int64(data []byte) (int64, bool) {
	if len(data) < Int64Size {
		return 0, false
	}

	return int64(d.engine.Uint64(data[:Int64Size])), true //nolint:gosec
}

func (d ScalarRawDecoder) Float64(data []byte) (float64, bool) {
	if len(data) < Float64Size {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[:Float64Size])), true
}

// Timestamp returns the (seconds, microseconds) pair.
func (d ScalarRawDecoder) Timestamp(data []byte) (sec, usec int32, ok bool) {
	if len(data) < TimestampSize {
		return 0, 0, false
	}

	sec, _ = d.Int32(data)
	usec, _ = d.Int32(data[Int32Size:])

	return sec, usec, true
}

func (d ScalarRawDecoder) ID(data []byte) (format.ID, bool) {
	v, ok := d.UInt32(data)
	return format.ID(v), ok
}
