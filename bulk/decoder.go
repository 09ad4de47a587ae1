package bulk

import (
	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/encoding"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/options"
	"github.com/arloliu/grnbulk/value"
)

// primitiveDecoder reinterprets the fixed-width prefix of data as one primitive kind.
// It reports false when data is too short for the kind.
type primitiveDecoder func(d encoding.ScalarRawDecoder, data []byte) (value.Value, bool)

// structuralDecoder reads a record reference stored in a table domain.
type structuralDecoder func(dec *Decoder, table domain.Descriptor, data []byte) (value.Value, bool)

var primitiveDecoders = map[format.Category]primitiveDecoder{
	format.CategoryVoid:      decodeText,
	format.CategoryInt32:     decodeInt32,
	format.CategoryUInt32:    decodeUInt32,
	format.CategoryInt64:     decodeInt64,
	format.CategoryFloat64:   decodeFloat64,
	format.CategoryTimestamp: decodeTimestamp,
	format.CategoryShortText: decodeText,
	format.CategoryText:      decodeText,
	format.CategoryLongText:  decodeText,
}

var structuralDecoders = map[format.Category]structuralDecoder{
	format.CategoryTableHashKey: decodeRecord,
	format.CategoryTablePatKey:  decodeRecord,
	format.CategoryTableNoKey:   decodeRecord,
}

// Decoder turns Bulks back into values using the buffer's domain as the type tag.
//
// Decoding never fails: a domain the registry does not know, or whose category has no
// decoder, yields the raw bytes as value.Text. The registry is only read.
type Decoder struct {
	scalar    encoding.ScalarRawDecoder
	registry  domain.Registry
	newRecord RecordConstructor
	logger    *zap.Logger
}

// NewDecoder creates a Decoder resolving domains through registry.
//
// Parameters:
//   - registry: Domain registry used to classify buffer domains; nil behaves as an empty
//     registry, so every non-empty buffer decodes to text
//   - opts: Optional configuration (byte order, record constructor, logger)
//
// Returns:
//   - *Decoder: The configured decoder
//   - error: Configuration error if an option is invalid
func NewDecoder(registry domain.Registry, opts ...DecoderOption) (*Decoder, error) {
	config := newDecoderConfig(registry)
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Decoder{
		scalar:    encoding.NewScalarRawDecoder(config.engine),
		registry:  config.registry,
		newRecord: config.newRecord,
		logger:    config.logger,
	}, nil
}

// log returns the decoder's logger, or the current package logger when none was set.
func (dec *Decoder) log() *zap.Logger {
	return loggerOr(dec.logger)
}

// Decode converts b into a value.
//
// The steps are:
//  1. an empty (or nil) buffer is value.Absent, whatever its domain;
//  2. the domain is resolved in the registry;
//  3. primitive categories reinterpret the fixed-width prefix of the buffer;
//  4. table categories read a record id, where format.NilID is value.Absent;
//  5. everything else, including unknown domains and buffers shorter than their kind,
//     is returned verbatim as value.Text.
func (dec *Decoder) Decode(b *Bulk) value.Value {
	if b == nil || b.IsEmpty() {
		return value.Absent{}
	}

	data := b.Bytes()
	desc, ok := dec.resolve(b.Domain())
	if ok {
		if fn, found := primitiveDecoders[desc.Category]; found {
			if v, ok := fn(dec.scalar, data); ok {
				return v
			}
		} else if fn, found := structuralDecoders[desc.Category]; found {
			if v, ok := fn(dec, desc, data); ok {
				return v
			}
		}
	}

	if ce := dec.log().Check(zap.DebugLevel, "bulk decoded as raw text"); ce != nil {
		ce.Write(
			zap.Uint32("domain", uint32(b.Domain())),
			zap.Bool("resolved", ok),
			zap.Stringer("category", desc.Category),
			zap.Int("size", len(data)))
	}

	return value.Text(data)
}

// DecodeBytes decodes data tagged with domainID without wrapping it in a Bulk first.
func (dec *Decoder) DecodeBytes(data []byte, domainID format.ID) value.Value {
	return dec.Decode(NewBorrowedBulk(domainID, data))
}

func (dec *Decoder) resolve(id format.ID) (domain.Descriptor, bool) {
	if dec.registry == nil || id == format.NilID {
		return domain.Descriptor{}, false
	}

	return dec.registry.Resolve(id)
}

func decodeText(_ encoding.ScalarRawDecoder, data []byte) (value.Value, bool) {
	return value.Text(data), true
}

func decodeInt32(d encoding.ScalarRawDecoder, data []byte) (value.Value, bool) {
	v, ok := d.Int32(data)
	return value.Int32(v), ok
}

func decodeUInt32(d encoding.ScalarRawDecoder, data []byte) (value.Value, bool) {
	v, ok := d.UInt32(data)
	return value.UInt32(v), ok
}

func decodeInt64(d encoding.ScalarRawDecoder, data []byte) (value.Value, bool) {
	v, ok := d.Int64(data)
	return value.Int64(v), ok
}

func decodeFloat64(d encoding.ScalarRawDecoder, data []byte) (value.Value, bool) {
	v, ok := d.Float64(data)
	return value.Float64(v), ok
}

func decodeTimestamp(d encoding.ScalarRawDecoder, data []byte) (value.Value, bool) {
	sec, usec, ok := d.Timestamp(data)
	return value.Timestamp{Sec: sec, Usec: usec}, ok
}

func decodeRecord(dec *Decoder, table domain.Descriptor, data []byte) (value.Value, bool) {
	id, ok := dec.scalar.ID(data)
	if !ok {
		return nil, false
	}
	if id == format.NilID {
		return value.Absent{}, true
	}

	return dec.newRecord(table, id), true
}
