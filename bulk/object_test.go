package bulk

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

type tableObject struct{}

func (tableObject) ObjectType() format.ObjectType { return format.ObjectType(0x40) }

func TestDecoder_DecodeObject(t *testing.T) {
	registry, tables := newTestRegistry(t)
	dec := newTestDecoder(t, registry, WithDecoderEndian(endian.GetLittleEndianEngine()))
	users := tables["Users"]

	t.Run("nil and void", func(t *testing.T) {
		for _, obj := range []Object{nil, Void{}, &Void{}, (*Bulk)(nil), (*Vector)(nil), (*UVector)(nil)} {
			v, err := dec.DecodeObject(obj, &users)
			require.NoError(t, err)
			require.Equal(t, value.Absent{}, v)
		}
	})

	t.Run("empty bulk keeps domain unset", func(t *testing.T) {
		b := NewBulk(format.NilID, nil)
		v, err := dec.DecodeObject(b, &users)
		require.NoError(t, err)
		require.Equal(t, value.Absent{}, v)
		require.Equal(t, format.NilID, b.Domain())
	})

	t.Run("bulk domain back-filled from range", func(t *testing.T) {
		b := NewBulk(format.NilID, []byte{5, 0, 0, 0})
		v, err := dec.DecodeObject(b, &users)
		require.NoError(t, err)
		require.Equal(t, value.Record{Table: users.ID, ID: 5}, v)
		require.Equal(t, users.ID, b.Domain())
	})

	t.Run("bulk domain is never overwritten", func(t *testing.T) {
		b := NewBulk(format.DomainInt32, []byte{5, 0, 0, 0})
		v, err := dec.DecodeObject(b, &users)
		require.NoError(t, err)
		require.Equal(t, value.Int32(5), v)
		require.Equal(t, format.DomainInt32, b.Domain())
	})

	t.Run("bulk without range", func(t *testing.T) {
		v, err := dec.DecodeObject(NewBulk(format.NilID, []byte("raw")), nil)
		require.NoError(t, err)
		require.Equal(t, value.Text("raw"), v)
	})

	t.Run("vector", func(t *testing.T) {
		vec := NewVector(1)
		vec.AddElement([]byte("a"), 3, 0)
		v, err := dec.DecodeObject(vec, nil)
		require.NoError(t, err)
		require.Equal(t, value.Elements{{Bytes: []byte("a"), Weight: 3}}, v)
	})

	t.Run("uvector", func(t *testing.T) {
		u := NewUVector(2)
		u.Append(4)
		u.Append(5)
		v, err := dec.DecodeObject(u, nil)
		require.NoError(t, err)
		require.Equal(t, value.IDs{4, 5}, v)
	})

	t.Run("unsupported object", func(t *testing.T) {
		v, err := dec.DecodeObject(tableObject{}, nil)
		require.ErrorIs(t, err, errs.ErrUnsupportedObjectType)
		require.Nil(t, v)
	})
}

func TestDecoder_DecodeObject_LogsBackFill(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	registry, tables := newTestRegistry(t)
	dec := newTestDecoder(t, registry, WithDecoderLogger(zap.New(core)))
	terms := tables["Terms"]

	_, err := dec.DecodeObject(NewBulk(format.NilID, []byte{1, 0, 0, 0}), &terms)
	require.NoError(t, err)

	entries := logs.FilterMessage("bulk domain back-filled from range").All()
	require.Len(t, entries, 1)
	require.Equal(t, "Terms", entries[0].ContextMap()["range"])
}
