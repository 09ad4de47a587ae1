// Package bulk converts between dynamic Go values and the typed buffers a search
// engine stores in its records: scalar bulks, vectors of weighted elements, and
// uvectors of record ids.
//
// # Bulk
//
// A Bulk is a byte buffer tagged with a domain, the integer id of the type it holds.
// The bytes carry no type information of their own: every kind has a fixed width and
// the domain tells the reader how to reinterpret them.
//
//	Kind       | Width | Layout (host byte order)
//	-----------|-------|-----------------------------------
//	Text       | any   | raw bytes
//	Int32      | 4     | int32
//	UInt32     | 4     | uint32
//	Int64      | 8     | int64
//	Float64    | 8     | IEEE 754 binary64
//	Timestamp  | 8     | int32 seconds, int32 microseconds
//	Record     | 4     | record id (format.ID)
//
// An empty bulk is the absent value whatever its domain.
//
// # Encoding
//
//	enc, _ := bulk.NewEncoder()
//	b, err := enc.Encode(42)        // 4 bytes, int32
//	b, err = enc.Encode("name")     // borrowed view of the string
//	b, err = enc.EncodeAs(user, usersTable.ID)
//
// Encoding matches the value against a fixed, ordered list of kinds and fails with
// *errs.UnsupportedTypeError for anything else. Text is borrowed rather than copied
// unless WithTextCopy is given; Bulk.Ownership reports which.
//
// # Decoding
//
//	dec, _ := bulk.NewDecoder(registry)
//	v := dec.Decode(b)
//
// Decoding never fails. The domain is resolved in the registry and looked up first in
// the primitive decoder table, then in the table-category table; anything else comes
// back as value.Text holding the raw bytes, so a reader never breaks on a type id it
// does not know. DecodeObject dispatches on the container type and back-fills an unset
// bulk domain from the column range.
//
// # Vectors and UVectors
//
// EncodeVector and EncodeUVector take identifier-like values and fail with
// *errs.ConversionError on the first element that is not one. A Vector stores each id
// as a 4-byte element with weight 0; DecodeVector returns (bytes, weight) pairs and
// drops the per-element domain. A UVector packs the ids back-to-back; DecodeUVector
// returns them in storage order.
//
// # Frames
//
// Marshal and Unmarshal wrap any container in a section.FrameHeader with an optional
// compressed payload and an xxHash64 checksum. The payload stays in host byte order.
//
// # Thread Safety
//
// Encoder and Decoder hold configuration only and are safe for concurrent use. Bulk,
// Vector and UVector values are owned by the caller and are not synchronized.
package bulk
