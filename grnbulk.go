// Package grnbulk converts dynamic values to and from the typed byte buffers a
// search engine stores in its columns.
//
// A value is encoded into a "bulk": a byte buffer tagged with the id of its domain (the
// value's type). Reading works the other way around: the domain is resolved in a
// registry and the bytes are reinterpreted as the matching kind. Collections of ids are
// carried by vectors (bytes, weight and domain per element) and uvectors (a dense run of
// ids).
//
// # Core Features
//
//   - Fixed-width, host-native layouts for integers, floats, timestamps and record ids
//   - Zero-copy text encoding, with an opt-in owned copy
//   - Decoding never fails: unknown domains degrade to raw text
//   - Pluggable domain registry with xxHash64 name lookups
//   - Self-describing frames with optional compression (None, Zstd, S2, LZ4) and
//     xxHash64 checksums
//
// # Basic Usage
//
// Encoding and decoding a scalar:
//
//	import "github.com/arloliu/grnbulk"
//
//	b, _ := grnbulk.EncodeAs(42, format.DomainInt32)
//	v := grnbulk.Decode(b) // value.Int32(42)
//
// Shipping a value to another process:
//
//	frame, _ := grnbulk.MarshalValue("hello", format.DomainText,
//	    bulk.WithFrameCompression(format.CompressionS2))
//	v, _ := grnbulk.UnmarshalValue(frame) // value.Text("hello")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bulk package bound to
// a process-wide default registry. For custom registries, byte orders and loggers use
// the bulk package directly.
package grnbulk

import (
	"fmt"
	"sync"

	"github.com/arloliu/grnbulk/bulk"
	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *domain.MemoryRegistry
	defaultEncoder  *bulk.Encoder
	defaultDecoder  *bulk.Decoder
)

func initDefaults() {
	defaultOnce.Do(func() {
		var err error

		defaultRegistry = domain.NewMemoryRegistry()
		if defaultEncoder, err = bulk.NewEncoder(); err != nil {
			panic(fmt.Sprintf("grnbulk: default encoder: %v", err))
		}
		if defaultDecoder, err = bulk.NewDecoder(defaultRegistry); err != nil {
			panic(fmt.Sprintf("grnbulk: default decoder: %v", err))
		}
	})
}

// DefaultRegistry returns the process-wide registry used by the package-level helpers.
//
// It is preloaded with the built-in domains. Tables registered on it become visible to
// Decode, DecodeObject and UnmarshalValue immediately.
//
// Example:
//
//	users, _ := grnbulk.DefaultRegistry().RegisterTable("Users", format.CategoryTableHashKey)
//	b, _ := grnbulk.EncodeAs(value.Record{Table: users.ID, ID: 9}, users.ID)
func DefaultRegistry() *domain.MemoryRegistry {
	initDefaults()
	return defaultRegistry
}

// NewEncoder creates an encoder with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see bulk.EncoderOption)
//
// Returns:
//   - *bulk.Encoder: The created encoder.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - bulk.WithNativeEndian() / bulk.WithLittleEndian() / bulk.WithBigEndian()
//   - bulk.WithTextCopy()
//   - bulk.WithLogger(*zap.Logger)
func NewEncoder(opts ...bulk.EncoderOption) (*bulk.Encoder, error) {
	return bulk.NewEncoder(opts...)
}

// NewDecoder creates a decoder that resolves domains through DefaultRegistry.
//
// Parameters:
//   - opts: Optional configuration functions (see bulk.DecoderOption)
//
// Returns:
//   - *bulk.Decoder: The created decoder.
//   - error: An error if the configuration is invalid.
func NewDecoder(opts ...bulk.DecoderOption) (*bulk.Decoder, error) {
	return bulk.NewDecoder(DefaultRegistry(), opts...)
}

// Encode encodes v into a bulk with an unset domain, using the host's byte order.
//
// The domain is left for the reader to back-fill from the column's range; use EncodeAs
// when the domain is known.
func Encode(v any) (*bulk.Bulk, error) {
	initDefaults()
	return defaultEncoder.Encode(v)
}

// EncodeAs encodes v into a bulk tagged with domainID.
func EncodeAs(v any, domainID format.ID) (*bulk.Bulk, error) {
	initDefaults()
	return defaultEncoder.EncodeAs(v, domainID)
}

// Decode decodes b using DefaultRegistry. It never fails.
func Decode(b *bulk.Bulk) value.Value {
	initDefaults()
	return defaultDecoder.Decode(b)
}

// DecodeObject decodes a bulk, vector or uvector using DefaultRegistry.
//
// Parameters:
//   - obj: The container to decode
//   - rng: Optional range whose id back-fills an unset bulk domain
//
// Returns:
//   - value.Value: The decoded value
//   - error: errs.ErrUnsupportedObjectType for unknown container types
func DecodeObject(obj bulk.Object, rng *domain.Descriptor) (value.Value, error) {
	initDefaults()
	return defaultDecoder.DecodeObject(obj, rng)
}

// MarshalValue encodes v as a bulk tagged with domainID and writes it as a frame.
//
// Parameters:
//   - v: The value to encode (see bulk.Encoder.Encode for accepted types)
//   - domainID: Domain stored with the value; format.NilID leaves it unset
//   - opts: Frame options, e.g. bulk.WithFrameCompression
//
// Returns:
//   - []byte: The frame
//   - error: Encoding or framing error
func MarshalValue(v any, domainID format.ID, opts ...bulk.FrameOption) ([]byte, error) {
	b, err := EncodeAs(v, domainID)
	if err != nil {
		return nil, err
	}

	return bulk.Marshal(b, opts...)
}

// UnmarshalValue reads a frame written by MarshalValue or bulk.Marshal and decodes the
// object it carries using DefaultRegistry.
func UnmarshalValue(data []byte, opts ...bulk.FrameOption) (value.Value, error) {
	obj, err := bulk.Unmarshal(data, opts...)
	if err != nil {
		return nil, err
	}

	return DecodeObject(obj, nil)
}
