package bulk

import (
	"fmt"
	"math"
	"time"
	"unsafe"

	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/encoding"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/options"
	"github.com/arloliu/grnbulk/value"
)

// Encoder converts dynamic Go values into Bulks, Vectors and UVectors.
//
// An Encoder holds configuration only and is safe for concurrent use.
type Encoder struct {
	scalar   encoding.ScalarRawEncoder
	config   *EncoderConfig
	logger   *zap.Logger
	copyText bool
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration (byte order, text copying, logger)
//
// Returns:
//   - *Encoder: The configured encoder
//   - error: Configuration error if an option is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		scalar:   encoding.NewScalarRawEncoder(config.engine),
		config:   config,
		logger:   config.logger,
		copyText: config.copyText,
	}, nil
}

// log returns the encoder's logger, or the current package logger when none was set.
func (e *Encoder) log() *zap.Logger {
	return loggerOr(e.logger)
}

// Encode converts v into a Bulk with an unset domain.
//
// The value's dynamic type is matched against the following kinds, in order, and the
// first match wins:
//
//	Absent     nil, value.Absent                      empty buffer
//	Text       string, []byte, value.Text             raw bytes, borrowed
//	SmallInt   Go integers within int32, value.Int32  4 bytes
//	LargeInt   other Go integers, value.Int64         8 bytes (value.UInt32: 4 bytes)
//	Float      float32, float64, value.Float64        8 bytes
//	Timestamp  time.Time, value.Timestamp             int32 sec + int32 usec
//	Handle     value.Object                           4-byte object id
//	Record     value.Recorder, format.ID              4-byte record id
//
// Text borrows the source bytes unless WithTextCopy was given; every other kind is
// written into a fresh owned buffer.
//
// Returns:
//   - *Bulk: The encoded buffer
//   - error: *errs.UnsupportedTypeError for any other type, *errs.ConversionError for
//     out-of-range integers and timestamps
func (e *Encoder) Encode(v any) (*Bulk, error) {
	return e.EncodeAs(v, format.NilID)
}

// EncodeAs is like Encode but tags the result with domainID.
func (e *Encoder) EncodeAs(v any, domainID format.ID) (*Bulk, error) {
	data, borrowed, err := e.encodeScalar(v)
	if err != nil {
		e.log().Debug("bulk encode rejected value",
			zap.String("type", typeName(v)),
			zap.Error(err))

		return nil, err
	}

	b := &Bulk{data: data, domain: domainID, ownership: Owned, engine: e.config.engine}
	if borrowed {
		b.ownership = Borrowed
	}

	return b, nil
}

// encodeScalar returns the encoded bytes and whether they alias the input.
func (e *Encoder) encodeScalar(v any) ([]byte, bool, error) {
	switch x := v.(type) {
	case nil:
		return nil, false, nil
	case value.Absent:
		return nil, false, nil

	case string:
		return e.encodeText(unsafe.Slice(unsafe.StringData(x), len(x)))
	case []byte:
		return e.encodeText(x)
	case value.Text:
		return e.encodeText(unsafe.Slice(unsafe.StringData(string(x)), len(x)))

	case value.Int32:
		return e.scalar.AppendInt32(make([]byte, 0, encoding.Int32Size), int32(x)), false, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		data, err := e.encodeInteger(x)
		return data, false, err
	case value.Int64:
		return e.scalar.AppendInt64(make([]byte, 0, encoding.Int64Size), int64(x)), false, nil
	case value.UInt32:
		return e.scalar.AppendUInt32(make([]byte, 0, encoding.UInt32Size), uint32(x)), false, nil

	case float64:
		return e.scalar.AppendFloat64(make([]byte, 0, encoding.Float64Size), x), false, nil
	case float32:
		return e.scalar.AppendFloat64(make([]byte, 0, encoding.Float64Size), float64(x)), false, nil
	case value.Float64:
		return e.scalar.AppendFloat64(make([]byte, 0, encoding.Float64Size), float64(x)), false, nil

	case time.Time:
		ts, ok := value.TimestampFromTime(x)
		if !ok {
			return nil, false, errs.NewConversionError(x, "timestamp", -1)
		}

		return e.encodeTimestamp(ts), false, nil
	case value.Timestamp:
		return e.encodeTimestamp(x), false, nil

	case value.Object:
		return e.scalar.AppendID(make([]byte, 0, encoding.IDSize), x.ObjectID()), false, nil
	case value.Recorder:
		return e.scalar.AppendID(make([]byte, 0, encoding.IDSize), x.RecordID()), false, nil
	case format.ID:
		return e.scalar.AppendID(make([]byte, 0, encoding.IDSize), x), false, nil

	default:
		return nil, false, errs.NewUnsupportedTypeError(v)
	}
}

func (e *Encoder) encodeText(data []byte) ([]byte, bool, error) {
	if !e.copyText {
		return data, len(data) > 0, nil
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	return owned, false, nil
}

// encodeInteger writes n as an int32 when it fits and as an int64 otherwise.
func (e *Encoder) encodeInteger(n any) ([]byte, error) {
	i, ok := coerceToInt64(n)
	if !ok {
		return nil, errs.NewConversionError(n, "int64", -1)
	}

	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return e.scalar.AppendInt32(make([]byte, 0, encoding.Int32Size), int32(i)), nil
	}

	return e.scalar.AppendInt64(make([]byte, 0, encoding.Int64Size), i), nil
}

func (e *Encoder) encodeTimestamp(ts value.Timestamp) []byte {
	return e.scalar.AppendTimestamp(make([]byte, 0, encoding.TimestampSize), ts.Sec, ts.Usec)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", v)
}
