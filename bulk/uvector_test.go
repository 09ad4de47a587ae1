package bulk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

func TestUVector_Append(t *testing.T) {
	u := NewUVector(0)
	u.Append(1)
	u.Append(2)
	u.Append(0xffffffff)

	require.Equal(t, 3, u.Size())
	require.Equal(t, 12, u.Len())
	require.Equal(t, format.ObjectUVector, u.ObjectType())

	id, ok := u.At(2)
	require.True(t, ok)
	require.Equal(t, format.ID(0xffffffff), id)

	_, ok = u.At(3)
	require.False(t, ok)
}

func TestNewUVectorFromBytes(t *testing.T) {
	data := []byte{1, 0, 0, 0, 2, 0, 0, 0, 9}
	u := NewUVectorFromBytes(data, endian.GetLittleEndianEngine())

	data[0] = 7
	require.Equal(t, 2, u.Size())
	require.Equal(t, value.IDs{1, 2}, DecodeUVector(u))
}

// === EncodeUVector Tests ===

func TestEncoder_EncodeUVector(t *testing.T) {
	enc := newTestEncoder(t, WithLittleEndian())

	u, err := enc.EncodeUVector([]any{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 12, u.Len())
	require.Equal(t, []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
	}, u.Bytes())

	require.Equal(t, value.IDs{1, 2, 3}, DecodeUVector(u))
}

func TestEncoder_EncodeUVector_Absent(t *testing.T) {
	enc := newTestEncoder(t)

	u, err := enc.EncodeUVector(nil)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Zero(t, u.Size())

	got := DecodeUVector(u)
	require.Equal(t, value.IDs{}, got)
	require.NotNil(t, got.(value.IDs))
}

func TestEncoder_EncodeUVector_ConversionError(t *testing.T) {
	enc := newTestEncoder(t)

	u, err := enc.EncodeUVector([]any{1, 2, "three"})
	require.Nil(t, u)
	require.ErrorIs(t, err, errs.ErrConversion)

	var convErr *errs.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, 2, convErr.Index)
	require.Equal(t, "three", convErr.Value)
}

func TestEncoder_EncodeUVectorIDs(t *testing.T) {
	enc := newTestEncoder(t, WithBigEndian())

	ids := make([]format.ID, 1000)
	for i := range ids {
		ids[i] = format.ID(i * 7)
	}

	u := enc.EncodeUVectorIDs(ids)
	require.Equal(t, len(ids), u.Size())
	require.Equal(t, []byte{0, 0, 0, 7}, u.Bytes()[4:8])
	require.Equal(t, value.IDs(ids), DecodeUVector(u))
}

func TestDecodeUVector_Nil(t *testing.T) {
	require.Equal(t, value.Absent{}, DecodeUVector(nil))
}
