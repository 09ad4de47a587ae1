// Package section defines the binary frame header used to ship a single bulk, vector
// or uvector between processes.
//
// A frame is a fixed 24-byte header followed by the (optionally compressed) payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed, little-endian)                 │
//	│  - Flag (4 bytes): magic, endianness, object, compress  │
//	│  - Domain (4 bytes)                                     │
//	│  - Count (4 bytes)                                      │
//	│  - PayloadSize (4 bytes, before compression)            │
//	│  - Checksum (8 bytes, xxHash64 before compression)      │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable, host byte order)                     │
//	│  - bulk:    raw value bytes                             │
//	│  - uvector: packed 4-byte ids                           │
//	│  - vector:  uvarint(len) bytes weight(u32) domain(u32)  │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------
//	0-1    | Options     | uint16 | Magic number and endianness bit
//	2      | ObjectType  | uint8  | format.ObjectType of the container
//	3      | Compression | uint8  | format.CompressionType of payload
//	4-7    | Domain      | uint32 | Bulk domain id (0 otherwise)
//	8-11   | Count       | uint32 | Element count (1 for a bulk)
//	12-15  | PayloadSize | uint32 | Uncompressed payload size
//	16-23  | Checksum    | uint64 | xxHash64 of uncompressed payload
//
// # Flag Format
//
//	Byte 0-1 (Options, 16 bits):
//	  Bit 0: Payload endianness (0=little-endian, 1=big-endian)
//	  Bits 1-3: Reserved (must be 0)
//	  Bits 4-15: Magic number (0xB710 for frame format v1)
//
// Header fields are always little-endian so any host can read them. The payload keeps
// the byte order of the host that wrote it; readers compare the endianness bit with
// their own byte order and refuse frames written with the other one, since no
// canonicalization step exists.
//
// # Usage Examples
//
//	header := section.NewFrameHeader(format.ObjectUVector)
//	header.Count = 3
//	header.PayloadSize = 12
//	header.Flag.SetCompression(format.CompressionZstd)
//	data := header.Bytes()
//
//	parsed, err := section.ParseFrameHeader(data)
package section
