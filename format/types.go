package format

type (
	// ID is a native-width record or type identifier.
	ID uint32

	Category        uint8
	ObjectType      uint8
	CompressionType uint8
)

// IDSize is the byte width of an encoded ID.
const IDSize = 4

// NilID is the sentinel identifier meaning "no record" or "unset domain".
const NilID ID = 0

// Built-in domain ids reserved by the search engine.
const (
	DomainVoid      ID = 1  // DomainVoid is a size-less domain, decoded as raw bytes.
	DomainObject    ID = 2  // DomainObject holds the id of an arbitrary database object.
	DomainBool      ID = 3  // DomainBool is a one byte boolean.
	DomainInt8      ID = 4  // DomainInt8 is a signed 8-bit integer.
	DomainUInt8     ID = 5  // DomainUInt8 is an unsigned 8-bit integer.
	DomainInt16     ID = 6  // DomainInt16 is a signed 16-bit integer.
	DomainUInt16    ID = 7  // DomainUInt16 is an unsigned 16-bit integer.
	DomainInt32     ID = 8  // DomainInt32 is a signed 32-bit integer.
	DomainUInt32    ID = 9  // DomainUInt32 is an unsigned 32-bit integer.
	DomainInt64     ID = 10 // DomainInt64 is a signed 64-bit integer.
	DomainUInt64    ID = 11 // DomainUInt64 is an unsigned 64-bit integer.
	DomainFloat     ID = 12 // DomainFloat is an IEEE 754 double.
	DomainTime      ID = 13 // DomainTime is a (seconds, microseconds) pair.
	DomainShortText ID = 14 // DomainShortText is text up to 4KiB.
	DomainText      ID = 15 // DomainText is text up to 64KiB.
	DomainLongText  ID = 16 // DomainLongText is text up to 2GiB.

	// ReservedDomainCount is the first id available to user-defined tables.
	ReservedDomainCount ID = 256
)

const (
	CategoryOther        Category = 0x0 // CategoryOther is a known type the codec has no layout for.
	CategoryVoid         Category = 0x1
	CategoryInt32        Category = 0x2
	CategoryUInt32       Category = 0x3
	CategoryInt64        Category = 0x4
	CategoryFloat64      Category = 0x5
	CategoryTimestamp    Category = 0x6
	CategoryShortText    Category = 0x7
	CategoryText         Category = 0x8
	CategoryLongText     Category = 0x9
	CategoryTableHashKey Category = 0x10 // CategoryTableHashKey is a table keyed by a hash index.
	CategoryTablePatKey  Category = 0x11 // CategoryTablePatKey is a table keyed by a patricia trie.
	CategoryTableNoKey   Category = 0x12 // CategoryTableNoKey is a keyless table addressed by id only.
)

const (
	ObjectVoid    ObjectType = 0x1 // ObjectVoid represents the absence of a value object.
	ObjectBulk    ObjectType = 0x2 // ObjectBulk represents a scalar typed buffer.
	ObjectVector  ObjectType = 0x3 // ObjectVector represents a (bytes, weight, domain) element list.
	ObjectUVector ObjectType = 0x4 // ObjectUVector represents a dense run of ids.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsPrimitive reports whether the category has a fixed scalar layout.
func (c Category) IsPrimitive() bool {
	return c >= CategoryVoid && c <= CategoryLongText
}

// IsTable reports whether the category is one of the table categories
// whose values are record ids.
func (c Category) IsTable() bool {
	switch c {
	case CategoryTableHashKey, CategoryTablePatKey, CategoryTableNoKey:
		return true
	default:
		return false
	}
}

func (c Category) IsText() bool {
	return c == CategoryShortText || c == CategoryText || c == CategoryLongText
}

func (c Category) String() string {
	switch c {
	case CategoryVoid:
		return "Void"
	case CategoryInt32:
		return "Int32"
	case CategoryUInt32:
		return "UInt32"
	case CategoryInt64:
		return "Int64"
	case CategoryFloat64:
		return "Float64"
	case CategoryTimestamp:
		return "Timestamp"
	case CategoryShortText:
		return "ShortText"
	case CategoryText:
		return "Text"
	case CategoryLongText:
		return "LongText"
	case CategoryTableHashKey:
		return "TableHashKey"
	case CategoryTablePatKey:
		return "TablePatKey"
	case CategoryTableNoKey:
		return "TableNoKey"
	default:
		return "Other"
	}
}

func (o ObjectType) String() string {
	switch o {
	case ObjectVoid:
		return "Void"
	case ObjectBulk:
		return "Bulk"
	case ObjectVector:
		return "Vector"
	case ObjectUVector:
		return "UVector"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a lower-case compression name to its type.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
