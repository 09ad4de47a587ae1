// Package encoding implements the fixed-width native layouts used by grnbulk buffers.
//
// Every scalar kind has exactly one layout and one width, and decoders rely on that
// width instead of a length prefix:
//
//	Kind       Width  Layout
//	Int32      4      two's complement
//	UInt32     4      unsigned
//	Int64      8      two's complement
//	Float64    8      IEEE 754 binary64
//	Timestamp  8      int32 seconds, then int32 microseconds
//	ID         4      unsigned record or object id
//
// Byte order comes from an endian.EndianEngine, normally the host engine. The package
// never converts between byte orders on its own.
//
// Three codecs are provided:
//   - ScalarRawEncoder / ScalarRawDecoder: one scalar per buffer (bulk payloads)
//   - IDRawEncoder / IDRawDecoder: a dense run of ids with no delimiters (uvector payloads)
//   - VarBytesEncoder / VarBytesReader: length-prefixed byte strings and uint32 fields,
//     used to serialize vectors into frames
//
// Most users should use the bulk package, which chooses the layout from the value's
// kind or from the buffer's domain.
package encoding
