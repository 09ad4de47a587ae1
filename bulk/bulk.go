package bulk

import (
	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/format"
)

// Ownership tells whether a Bulk owns its bytes or borrows them from the encoded value.
type Ownership uint8

const (
	// Owned bytes were copied into storage that belongs to the Bulk.
	Owned Ownership = iota
	// Borrowed bytes alias the caller's string or byte slice. The source must outlive the
	// Bulk and must not be modified while the Bulk is in use.
	Borrowed
)

func (o Ownership) String() string {
	if o == Borrowed {
		return "Borrowed"
	}

	return "Owned"
}

// Object is a value container the object dispatcher can decode.
type Object interface {
	ObjectType() format.ObjectType
}

// Void is the object that holds no value at all.
type Void struct{}

// ObjectType implements Object.
func (Void) ObjectType() format.ObjectType { return format.ObjectVoid }

// Bulk is a scalar byte buffer tagged with the domain id of the value it holds.
//
// A Bulk is created per encode call and handed to the caller. Its bytes are never
// mutated afterwards; the only permitted change is back-filling an unset domain once.
// A Bulk remembers the byte order its numeric payloads were written in.
type Bulk struct {
	data      []byte
	domain    format.ID
	ownership Ownership
	engine    endian.EndianEngine
}

var _ Object = (*Bulk)(nil)

// NewBulk creates a Bulk holding a copy of data in the host's byte order.
func NewBulk(domain format.ID, data []byte) *Bulk {
	var owned []byte
	if len(data) > 0 {
		owned = make([]byte, len(data))
		copy(owned, data)
	}

	return &Bulk{data: owned, domain: domain, ownership: Owned, engine: endian.GetNativeEngine()}
}

// NewBorrowedBulk creates a Bulk that aliases data without copying it.
func NewBorrowedBulk(domain format.ID, data []byte) *Bulk {
	return &Bulk{data: data, domain: domain, ownership: Borrowed, engine: endian.GetNativeEngine()}
}

// ObjectType implements Object.
func (b *Bulk) ObjectType() format.ObjectType { return format.ObjectBulk }

// Domain returns the domain id, or format.NilID when it is unset.
func (b *Bulk) Domain() format.ID {
	return b.domain
}

// Bytes returns the buffer contents. The caller must not modify the returned slice.
func (b *Bulk) Bytes() []byte {
	return b.data
}

// Len returns the buffer size in bytes.
func (b *Bulk) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no bytes. An empty Bulk always decodes to
// value.Absent.
func (b *Bulk) IsEmpty() bool {
	return len(b.data) == 0
}

// Engine returns the byte order of the payload.
func (b *Bulk) Engine() endian.EndianEngine {
	if b.engine == nil {
		return endian.GetNativeEngine()
	}

	return b.engine
}

// Ownership reports whether the bytes are owned or borrowed.
func (b *Bulk) Ownership() Ownership {
	return b.ownership
}

// SetDomainIfUnset sets the domain to id when no domain has been set yet.
//
// It reports whether the domain was changed. An already set domain is never
// overwritten, and setting format.NilID is a no-op.
func (b *Bulk) SetDomainIfUnset(id format.ID) bool {
	if b.domain != format.NilID || id == format.NilID {
		return false
	}
	b.domain = id

	return true
}

// Clone returns a Bulk with the same domain and byte order that owns a copy of the bytes.
func (b *Bulk) Clone() *Bulk {
	c := NewBulk(b.domain, b.data)
	c.engine = b.Engine()

	return c
}
