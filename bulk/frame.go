package bulk

import (
	"fmt"
	"io"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/compress"
	"github.com/arloliu/grnbulk/encoding"
	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/hash"
	"github.com/arloliu/grnbulk/internal/options"
	"github.com/arloliu/grnbulk/internal/pool"
	"github.com/arloliu/grnbulk/section"
)

// minVectorElementSize is the smallest encoded vector element: an empty length prefix,
// a weight and a domain.
const minVectorElementSize = 1 + 4 + 4

// Marshal writes obj as a self-describing frame: a section.FrameHeader followed by the
// payload, optionally compressed.
//
// The payload keeps its byte order and the frame records the order the object was
// written in, so a payload from a big-endian encoder is labelled big-endian whatever
// the host. Frames therefore move values between processes that agree on the byte
// order, not between different architectures.
//
// Parameters:
//   - obj: Void, *Bulk, *Vector or *UVector; nil and typed nil pointers are written as
//     a Void frame
//   - opts: Optional configuration (compression, byte order of Void frames, logger)
//
// Returns:
//   - []byte: The frame, owned by the caller
//   - error: errs.ErrUnsupportedObjectType, errs.ErrInvalidPayloadSize for payloads over
//     4GiB, or a compression error
func Marshal(obj Object, opts ...FrameOption) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := marshalFrame(buf, obj, opts); err != nil {
		return nil, err
	}

	return buf.Clone().Bytes(), nil
}

// MarshalTo is like Marshal but writes the frame to w without keeping a copy.
//
// Returns:
//   - int64: Bytes written to w
//   - error: Any error Marshal returns, or the error from w
func MarshalTo(w io.Writer, obj Object, opts ...FrameOption) (int64, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := marshalFrame(buf, obj, opts); err != nil {
		return 0, err
	}

	return buf.WriteTo(w)
}

// marshalFrame appends the frame of obj to buf.
func marshalFrame(buf *pool.ByteBuffer, obj Object, opts []FrameOption) error {
	config := newFrameConfig()
	if err := options.Apply(config, opts...); err != nil {
		return err
	}
	logger := loggerOr(config.logger)

	header := section.NewFrameHeader(format.ObjectVoid)
	header.Flag.SetEndianEngine(config.engine)
	header.Flag.SetCompression(config.compression)

	var payload []byte
	switch o := obj.(type) {
	case nil, Void, *Void:
	case *Bulk:
		if o == nil {
			break
		}
		header.Flag.SetObject(format.ObjectBulk)
		header.Flag.SetEndianEngine(o.Engine())
		header.Domain = o.Domain()
		payload = o.Bytes()
		if len(payload) > 0 {
			header.Count = 1
		}
	case *UVector:
		if o == nil {
			break
		}
		header.Flag.SetObject(format.ObjectUVector)
		header.Flag.SetEndianEngine(o.engine)
		header.Count = uint32(o.Size())
		payload = o.Bytes()
	case *Vector:
		if o == nil {
			break
		}
		header.Flag.SetObject(format.ObjectVector)
		header.Flag.SetEndianEngine(o.Engine())
		header.Count = uint32(o.Size())

		enc := encoding.NewVarBytesEncoder(o.Engine())
		defer enc.Finish()

		for _, el := range o.All() {
			if err := enc.WriteBytes(el.Bytes); err != nil {
				return fmt.Errorf("%w: %w", errs.ErrInvalidPayloadSize, err)
			}
			enc.WriteUint32(el.Weight)
			enc.WriteUint32(uint32(el.Domain))
		}
		payload = enc.Bytes()
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedObjectType, obj.ObjectType())
	}

	if len(payload) > math.MaxUint32 {
		return fmt.Errorf("%w: payload is %d bytes", errs.ErrInvalidPayloadSize, len(payload))
	}
	header.PayloadSize = uint32(len(payload))
	header.Checksum = hash.Checksum(payload)

	codec, err := compress.CreateCodec(config.compression, "frame payload")
	if err != nil {
		return err
	}

	start := time.Now()
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress frame payload: %w", err)
	}

	if ce := logger.Check(zap.DebugLevel, "frame payload compressed"); ce != nil {
		stats := compress.CompressionStats{
			Algorithm:         config.compression,
			OriginalSize:      int64(len(payload)),
			CompressedSize:    int64(len(compressed)),
			CompressionTimeNs: time.Since(start).Nanoseconds(),
		}
		ce.Write(
			zap.Stringer("object", header.Flag.Object()),
			zap.Stringer("compression", stats.Algorithm),
			zap.Int64("original", stats.OriginalSize),
			zap.Int64("compressed", stats.CompressedSize),
			zap.Float64("ratio", stats.CompressionRatio()),
			zap.Float64("savings_pct", stats.SpaceSavings()),
			zap.Int64("elapsed_ns", stats.CompressionTimeNs))
	}

	offset := buf.Len()
	buf.ExtendOrGrow(section.FrameHeaderSize)
	header.WriteToSlice(buf.Slice(offset, offset+section.FrameHeaderSize))
	buf.MustWrite(compressed)

	return nil
}

// Unmarshal reads a frame written by Marshal.
//
// The returned object owns its memory and does not alias data.
//
// Parameters:
//   - data: The complete frame
//   - opts: Optional configuration; WithFrameEndian sets the payload byte order this
//     reader accepts (the host's by default)
//
// Returns:
//   - Object: Void, *Bulk, *Vector or *UVector
//   - error: errs.ErrInvalidFrameSize, errs.ErrInvalidMagic, errs.ErrInvalidObjectType,
//     errs.ErrInvalidCompression, errs.ErrEndianMismatch, errs.ErrInvalidPayloadSize or
//     errs.ErrChecksumMismatch
func Unmarshal(data []byte, opts ...FrameOption) (Object, error) {
	config := newFrameConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return nil, err
	}

	if header.Flag.IsLittleEndian() != endian.IsLittleEndian(config.engine) {
		return nil, fmt.Errorf("%w: frame payload is %s", errs.ErrEndianMismatch, byteOrderName(header.Flag))
	}

	payload, err := decompressPayload(header, data[section.PayloadOffset:])
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %016x, header has %016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	engine := header.Flag.GetEndianEngine()

	switch header.Flag.Object() {
	case format.ObjectBulk:
		if (len(payload) > 0) != (header.Count == 1) || header.Count > 1 {
			return nil, fmt.Errorf("%w: bulk count %d with %d payload bytes",
				errs.ErrInvalidPayloadSize, header.Count, len(payload))
		}

		b := NewBulk(header.Domain, payload)
		b.engine = engine

		return b, nil
	case format.ObjectUVector:
		if uint64(len(payload)) != uint64(header.Count)*format.IDSize {
			return nil, fmt.Errorf("%w: %d ids in %d bytes",
				errs.ErrInvalidPayloadSize, header.Count, len(payload))
		}

		return NewUVectorFromBytes(payload, engine), nil
	case format.ObjectVector:
		return unmarshalVector(header.Count, payload, engine)
	default:
		return Void{}, nil
	}
}

func decompressPayload(header section.FrameHeader, body []byte) ([]byte, error) {
	comp := header.Flag.Compression()
	if comp == format.CompressionNone {
		if len(body) != int(header.PayloadSize) {
			return nil, fmt.Errorf("%w: %d bytes, header has %d",
				errs.ErrInvalidPayloadSize, len(body), header.PayloadSize)
		}

		return body, nil
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}

	payload, err := compress.Decompress(codec, body, int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s payload: %w", errs.ErrInvalidPayloadSize, comp, err)
	}

	return payload, nil
}

func unmarshalVector(count uint32, payload []byte, engine endian.EndianEngine) (*Vector, error) {
	if uint64(count)*minVectorElementSize > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: %d elements in %d bytes", errs.ErrInvalidPayloadSize, count, len(payload))
	}

	vec := NewVector(int(count))
	vec.engine = engine
	r := encoding.NewVarBytesReader(payload, engine)
	for i := range int(count) {
		data, err := r.ReadBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", errs.ErrInvalidPayloadSize, i, err)
		}
		weight, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: element %d weight: %w", errs.ErrInvalidPayloadSize, i, err)
		}
		domainID, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: element %d domain: %w", errs.ErrInvalidPayloadSize, i, err)
		}
		vec.AddElement(data, weight, format.ID(domainID))
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayloadSize, r.Remaining())
	}

	return vec, nil
}

func byteOrderName(flag section.FrameFlag) string {
	if flag.IsLittleEndian() {
		return "little-endian"
	}

	return "big-endian"
}
