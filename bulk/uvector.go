package bulk

import (
	"iter"

	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/encoding"
	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/pool"
	"github.com/arloliu/grnbulk/value"
)

// UVector is a dense run of fixed-width record ids with no per-element metadata.
//
// Ids are stored back-to-back from the start of the buffer to its write boundary, so
// Size is always Len()/format.IDSize.
type UVector struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

var _ Object = (*UVector)(nil)

// NewUVector creates an empty UVector in host byte order with room for capacity ids.
func NewUVector(capacity int) *UVector {
	return newUVector(endian.GetNativeEngine(), capacity)
}

// NewUVectorFromBytes creates a UVector holding a copy of data.
//
// Trailing bytes that do not form a whole id are dropped.
func NewUVectorFromBytes(data []byte, engine endian.EndianEngine) *UVector {
	n := len(data) - len(data)%format.IDSize
	u := newUVector(engine, n/format.IDSize)
	u.buf.MustWrite(data[:n])

	return u
}

func newUVector(engine endian.EndianEngine, capacity int) *UVector {
	return &UVector{
		buf:    pool.NewByteBuffer(max(capacity, 0) * format.IDSize),
		engine: engine,
	}
}

// ObjectType implements Object.
func (u *UVector) ObjectType() format.ObjectType { return format.ObjectUVector }

// Size returns the number of ids.
func (u *UVector) Size() int {
	return u.buf.Len() / format.IDSize
}

// Len returns the number of bytes written.
func (u *UVector) Len() int {
	return u.buf.Len()
}

// Bytes returns the packed ids. The slice aliases the vector's storage.
func (u *UVector) Bytes() []byte {
	return u.buf.Bytes()
}

// Append adds id at the write boundary.
func (u *UVector) Append(id format.ID) {
	u.buf.B = u.engine.AppendUint32(u.buf.B, uint32(id))
}

// At returns the id at index i.
func (u *UVector) At(i int) (format.ID, bool) {
	return encoding.NewIDRawDecoder(u.engine).At(u.buf.Bytes(), i, u.Size())
}

// All returns an iterator over the ids in storage order.
func (u *UVector) All() iter.Seq[format.ID] {
	return encoding.NewIDRawDecoder(u.engine).All(u.buf.Bytes(), u.Size())
}

// EncodeUVector builds a UVector from identifier-like values.
//
// Values are coerced exactly as in EncodeVector and packed with no weight or domain.
// A nil or empty input yields a valid empty UVector.
//
// Returns:
//   - *UVector: The encoded vector (never nil on success)
//   - error: *errs.ConversionError naming the first element that is not an id
func (e *Encoder) EncodeUVector(values []any) (*UVector, error) {
	ids, release, err := e.coerceIDs(values)
	if err != nil {
		return nil, err
	}
	defer release()

	return e.EncodeUVectorIDs(ids), nil
}

// EncodeUVectorIDs packs ids into a new UVector.
func (e *Encoder) EncodeUVectorIDs(ids []format.ID) *UVector {
	enc := encoding.NewIDRawEncoder(e.config.engine)
	defer enc.Finish()

	enc.WriteSlice(ids)

	u := newUVector(e.config.engine, enc.Len())
	u.buf.MustWrite(enc.Bytes())

	return u
}

// DecodeUVector converts u into value.IDs.
//
// A nil uvector decodes to value.Absent; an empty one decodes to an empty, non-nil
// value.IDs.
func DecodeUVector(u *UVector) value.Value {
	if u == nil {
		return value.Absent{}
	}

	ids := make(value.IDs, 0, u.Size())
	for id := range u.All() {
		ids = append(ids, id)
	}

	return ids
}

// coerceIDs converts every value to a record id before anything is allocated for the
// result. The ids live in a pooled scratch slice that release returns; release must
// be called once the ids have been copied out.
func (e *Encoder) coerceIDs(values []any) (ids []format.ID, release func(), err error) {
	ids, release = pool.GetIDSlice(len(values))
	for i, v := range values {
		id, ok := coerceToID(v)
		if !ok {
			release()
			err = errs.NewConversionError(v, "record id", i)
			e.log().Debug("id coercion failed", zap.Int("index", i), zap.Error(err))

			return nil, nil, err
		}
		ids[i] = id
	}

	return ids, release, nil
}
