package bulk

import (
	"iter"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

// VectorElement is one entry of a Vector.
type VectorElement struct {
	Bytes  []byte
	Weight uint32
	Domain format.ID
}

type vectorEntry struct {
	offset int
	length int
	weight uint32
	domain format.ID
}

// Vector is an ordered sequence of (bytes, weight, domain) elements.
//
// Element bytes are stored back-to-back in a single body buffer and the container keeps
// its own element count; the body carries no delimiters. Element payloads share the
// byte order reported by Engine.
type Vector struct {
	body    []byte
	entries []vectorEntry
	engine  endian.EndianEngine
}

var _ Object = (*Vector)(nil)

// NewVector creates an empty Vector with room for capacity elements. Its elements are
// expected in the host's byte order.
func NewVector(capacity int) *Vector {
	return &Vector{
		entries: make([]vectorEntry, 0, max(capacity, 0)),
		engine:  endian.GetNativeEngine(),
	}
}

// ObjectType implements Object.
func (v *Vector) ObjectType() format.ObjectType { return format.ObjectVector }

// Engine returns the byte order of the element payloads.
func (v *Vector) Engine() endian.EndianEngine {
	if v.engine == nil {
		return endian.GetNativeEngine()
	}

	return v.engine
}

// Size returns the number of elements.
func (v *Vector) Size() int {
	return len(v.entries)
}

// AddElement appends a copy of data with the given weight and domain.
func (v *Vector) AddElement(data []byte, weight uint32, domainID format.ID) {
	v.entries = append(v.entries, vectorEntry{
		offset: len(v.body),
		length: len(data),
		weight: weight,
		domain: domainID,
	})
	v.body = append(v.body, data...)
}

// Element returns the element at index i.
//
// The returned Bytes alias the vector's storage and must not be modified.
func (v *Vector) Element(i int) (VectorElement, bool) {
	if i < 0 || i >= len(v.entries) {
		return VectorElement{}, false
	}

	return v.element(v.entries[i]), true
}

// All returns an iterator over the elements in insertion order.
func (v *Vector) All() iter.Seq2[int, VectorElement] {
	return func(yield func(int, VectorElement) bool) {
		for i, e := range v.entries {
			if !yield(i, v.element(e)) {
				return
			}
		}
	}
}

// BodySize returns the total number of element bytes.
func (v *Vector) BodySize() int {
	return len(v.body)
}

func (v *Vector) element(e vectorEntry) VectorElement {
	return VectorElement{
		Bytes:  v.body[e.offset : e.offset+e.length : e.offset+e.length],
		Weight: e.weight,
		Domain: e.domain,
	}
}

// EncodeVector builds a Vector from identifier-like values.
//
// Each value is coerced to a record id and stored as one native-width element with
// weight 0 and an unset domain. A nil or empty input yields a valid empty Vector.
//
// Parameters:
//   - values: Identifiers; Go integers in [0, MaxUint32], integral floats,
//     value.Recorder and value.Object are accepted
//
// Returns:
//   - *Vector: The encoded vector (never nil on success)
//   - error: *errs.ConversionError naming the first element that is not an id
func (e *Encoder) EncodeVector(values []any) (*Vector, error) {
	ids, release, err := e.coerceIDs(values)
	if err != nil {
		return nil, err
	}
	defer release()

	vec := &Vector{
		body:    make([]byte, 0, len(ids)*format.IDSize),
		entries: make([]vectorEntry, 0, len(ids)),
		engine:  e.config.engine,
	}
	var scratch [format.IDSize]byte
	for _, id := range ids {
		vec.AddElement(e.scalar.AppendID(scratch[:0], id), 0, format.NilID)
	}

	return vec, nil
}

// DecodeVector converts v into value.Elements.
//
// A nil or empty vector decodes to value.Absent. Each element becomes a (bytes, weight)
// pair in storage order; element bytes are copied. The per-element domain is not part
// of the result, read it with Vector.Element when needed.
func DecodeVector(v *Vector) value.Value {
	if v == nil || v.Size() == 0 {
		return value.Absent{}
	}

	elems := make(value.Elements, 0, v.Size())
	for _, el := range v.All() {
		var data []byte
		if len(el.Bytes) > 0 {
			data = make([]byte, len(el.Bytes))
			copy(data, el.Bytes)
		}
		elems = append(elems, value.Element{Bytes: data, Weight: el.Weight})
	}

	return elems
}
