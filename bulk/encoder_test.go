package bulk

import (
	"errors"
	"math"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

func newTestEncoder(t *testing.T, opts ...EncoderOption) *Encoder {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	return enc
}

type handle struct{ id format.ID }

func (h handle) ObjectID() format.ID { return h.id }

// both is a handle that is also a record; the handle kind wins.
type both struct{}

func (both) ObjectID() format.ID { return 11 }
func (both) RecordID() format.ID { return 22 }

// === Encoder Construction Tests ===

func TestNewEncoder_Defaults(t *testing.T) {
	enc := newTestEncoder(t)

	require.Equal(t, endian.GetNativeEngine(), enc.config.engine)
	require.False(t, enc.copyText)
	require.Nil(t, enc.logger)
	require.Same(t, Logger(), enc.log())
}

func TestNewEncoder_InvalidOption(t *testing.T) {
	enc, err := NewEncoder(WithLogger(nil))
	require.Error(t, err)
	require.Nil(t, enc)
}

// === Encode Tests ===

func TestEncoder_Encode_Absent(t *testing.T) {
	enc := newTestEncoder(t)

	for _, v := range []any{nil, value.Absent{}} {
		b, err := enc.Encode(v)
		require.NoError(t, err)
		require.True(t, b.IsEmpty())
		require.Equal(t, format.NilID, b.Domain())
		require.Equal(t, Owned, b.Ownership())
	}
}

func TestEncoder_Encode_Text(t *testing.T) {
	enc := newTestEncoder(t)

	t.Run("string is borrowed", func(t *testing.T) {
		s := "groonga"
		b, err := enc.Encode(s)
		require.NoError(t, err)
		require.Equal(t, Borrowed, b.Ownership())
		require.Equal(t, []byte(s), b.Bytes())
		require.Same(t, unsafe.StringData(s), &b.Bytes()[0])
	})

	t.Run("byte slice is borrowed", func(t *testing.T) {
		data := []byte("raw bytes")
		b, err := enc.Encode(data)
		require.NoError(t, err)
		require.Equal(t, Borrowed, b.Ownership())
		require.Same(t, &data[0], &b.Bytes()[0])
	})

	t.Run("value.Text", func(t *testing.T) {
		b, err := enc.Encode(value.Text("text"))
		require.NoError(t, err)
		require.Equal(t, []byte("text"), b.Bytes())
	})

	t.Run("empty text", func(t *testing.T) {
		b, err := enc.Encode("")
		require.NoError(t, err)
		require.True(t, b.IsEmpty())
		require.Equal(t, Owned, b.Ownership())
	})

	t.Run("copy option", func(t *testing.T) {
		copying := newTestEncoder(t, WithTextCopy())
		data := []byte("owned")

		b, err := copying.Encode(data)
		require.NoError(t, err)
		require.Equal(t, Owned, b.Ownership())
		require.Equal(t, data, b.Bytes())

		data[0] = 'X'
		require.Equal(t, []byte("owned"), b.Bytes())
	})
}

func TestEncoder_Encode_Integers(t *testing.T) {
	enc := newTestEncoder(t, WithLittleEndian())

	tests := []struct {
		name string
		in   any
		want []byte
	}{
		{"int 42", 42, []byte{0x2a, 0x00, 0x00, 0x00}},
		{"int negative", -1, []byte{0xff, 0xff, 0xff, 0xff}},
		{"int8", int8(-2), []byte{0xfe, 0xff, 0xff, 0xff}},
		{"uint16", uint16(0xffff), []byte{0xff, 0xff, 0x00, 0x00}},
		{"int32 max", int32(math.MaxInt32), []byte{0xff, 0xff, 0xff, 0x7f}},
		{"int32 min", int64(math.MinInt32), []byte{0x00, 0x00, 0x00, 0x80}},
		{"value.Int32", value.Int32(7), []byte{0x07, 0x00, 0x00, 0x00}},
		{"above int32", int64(math.MaxInt32) + 1, []byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}},
		{"uint32 above int32", uint32(math.MaxUint32), []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}},
		{"below int32", int64(math.MinInt32) - 1, []byte{0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff, 0xff}},
		{"value.Int64 small", value.Int64(1), []byte{0x01, 0, 0, 0, 0, 0, 0, 0}},
		{"value.UInt32", value.UInt32(0x01020304), []byte{0x04, 0x03, 0x02, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := enc.Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, b.Bytes())
			require.Equal(t, Owned, b.Ownership())
		})
	}
}

func TestEncoder_Encode_IntegerOverflow(t *testing.T) {
	enc := newTestEncoder(t)

	for _, v := range []any{uint64(math.MaxUint64), uint64(math.MaxInt64) + 1, uint(math.MaxUint64)} {
		b, err := enc.Encode(v)
		require.Nil(t, b)
		require.ErrorIs(t, err, errs.ErrConversion)

		var convErr *errs.ConversionError
		require.ErrorAs(t, err, &convErr)
		require.Equal(t, -1, convErr.Index)
		require.Equal(t, "int64", convErr.Target)
	}
}

func TestEncoder_Encode_BigEndian(t *testing.T) {
	enc := newTestEncoder(t, WithBigEndian())

	b, err := enc.Encode(42)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x2a}, b.Bytes())
}

func TestEncoder_Encode_Float(t *testing.T) {
	enc := newTestEncoder(t, WithLittleEndian())

	for _, v := range []any{1.5, float32(1.5), value.Float64(1.5)} {
		b, err := enc.Encode(v)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf8, 0x3f}, b.Bytes())
	}
}

func TestEncoder_Encode_Timestamp(t *testing.T) {
	enc := newTestEncoder(t, WithLittleEndian())
	want := []byte{
		0xe8, 0x03, 0x00, 0x00, // 1000 seconds
		0xf4, 0x01, 0x00, 0x00, // 500 microseconds
	}

	b, err := enc.Encode(time.Unix(1000, 500_000))
	require.NoError(t, err)
	require.Equal(t, want, b.Bytes())

	b, err = enc.Encode(value.Timestamp{Sec: 1000, Usec: 500})
	require.NoError(t, err)
	require.Equal(t, want, b.Bytes())
}

func TestEncoder_Encode_TimestampOutOfRange(t *testing.T) {
	enc := newTestEncoder(t)

	b, err := enc.Encode(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Nil(t, b)
	require.ErrorIs(t, err, errs.ErrConversion)
}

func TestEncoder_Encode_References(t *testing.T) {
	enc := newTestEncoder(t, WithLittleEndian())

	tests := []struct {
		name string
		in   any
		want format.ID
	}{
		{"object handle", handle{id: 300}, 300},
		{"domain descriptor", domain.Descriptor{ID: 256, Name: "Users"}, 256},
		{"record", value.Record{Table: 256, ID: 9}, 9},
		{"raw id", format.ID(5), 5},
		{"handle before record", both{}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := enc.Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, 4, b.Len())
			require.Equal(t, uint32(tt.want), endian.GetLittleEndianEngine().Uint32(b.Bytes()))
		})
	}
}

func TestEncoder_Encode_Unsupported(t *testing.T) {
	enc := newTestEncoder(t)

	for _, v := range []any{struct{}{}, true, []int{1}, map[string]int{}, complex(1, 2), new(int)} {
		b, err := enc.Encode(v)
		require.Nil(t, b, "%T", v)
		require.ErrorIs(t, err, errs.ErrUnsupportedType)

		var typeErr *errs.UnsupportedTypeError
		require.True(t, errors.As(err, &typeErr))
		require.NotEmpty(t, typeErr.GoType)
	}
}

func TestEncoder_EncodeAs(t *testing.T) {
	enc := newTestEncoder(t)

	b, err := enc.EncodeAs(42, format.DomainInt32)
	require.NoError(t, err)
	assert.Equal(t, format.DomainInt32, b.Domain())
	assert.Equal(t, 4, b.Len())

	b, err = enc.EncodeAs(struct{}{}, format.DomainInt32)
	require.Error(t, err)
	require.Nil(t, b)
}
