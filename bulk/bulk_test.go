package bulk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/format"
)

func TestNewBulk_Copies(t *testing.T) {
	data := []byte{1, 2, 3}
	b := NewBulk(format.DomainText, data)

	data[0] = 9
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
	require.Equal(t, Owned, b.Ownership())
	require.Equal(t, format.ObjectBulk, b.ObjectType())
	require.Equal(t, 3, b.Len())
	require.False(t, b.IsEmpty())
}

func TestNewBorrowedBulk_Aliases(t *testing.T) {
	data := []byte{1, 2, 3}
	b := NewBorrowedBulk(format.DomainText, data)

	data[0] = 9
	require.Equal(t, []byte{9, 2, 3}, b.Bytes())
	require.Equal(t, Borrowed, b.Ownership())
}

func TestBulk_SetDomainIfUnset(t *testing.T) {
	b := NewBulk(format.NilID, []byte{1})

	require.False(t, b.SetDomainIfUnset(format.NilID))
	require.Equal(t, format.NilID, b.Domain())

	require.True(t, b.SetDomainIfUnset(format.DomainInt32))
	require.Equal(t, format.DomainInt32, b.Domain())

	// write-once
	require.False(t, b.SetDomainIfUnset(format.DomainText))
	require.Equal(t, format.DomainInt32, b.Domain())
}

func TestBulk_Clone(t *testing.T) {
	data := []byte("shared")
	b := NewBorrowedBulk(format.DomainText, data)

	c := b.Clone()
	data[0] = 'S'

	require.Equal(t, []byte("shared"), c.Bytes())
	require.Equal(t, Owned, c.Ownership())
	require.Equal(t, b.Domain(), c.Domain())
}

func TestBulk_Engine(t *testing.T) {
	require.Equal(t, endian.GetNativeEngine(), NewBulk(format.DomainInt32, []byte{1}).Engine())
	require.Equal(t, endian.GetNativeEngine(), (&Bulk{}).Engine())

	b, err := newTestEncoder(t, WithBigEndian()).EncodeAs(1, format.DomainInt32)
	require.NoError(t, err)
	require.Equal(t, endian.GetBigEndianEngine(), b.Engine())
	require.Equal(t, endian.GetBigEndianEngine(), b.Clone().Engine())
}

func TestOwnership_String(t *testing.T) {
	require.Equal(t, "Owned", Owned.String())
	require.Equal(t, "Borrowed", Borrowed.String())
}

func TestVoid_ObjectType(t *testing.T) {
	require.Equal(t, format.ObjectVoid, Void{}.ObjectType())
}
