package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/grnbulk/endian"
)

func TestVarBytesEncoder_RoundTrip(t *testing.T) {
	engine := endian.GetNativeEngine()
	enc := NewVarBytesEncoder(engine)
	defer enc.Finish()

	long := []byte(strings.Repeat("x", 300)) // needs a two byte length prefix

	require.NoError(t, enc.WriteBytes([]byte("abc")))
	enc.WriteUint32(7)
	require.NoError(t, enc.WriteBytes(nil))
	enc.WriteUint32(0)
	require.NoError(t, enc.WriteBytes(long))
	enc.WriteUint32(0xffffffff)

	require.Equal(t, 3, enc.Len())
	require.Equal(t, (1+3+4)+(1+0+4)+(2+300+4), enc.Size())

	r := NewVarBytesReader(enc.Bytes(), engine)

	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)
	w, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(7), w)

	b, err = r.ReadBytes()
	require.NoError(t, err)
	require.Empty(t, b)
	_, err = r.ReadUint32()
	require.NoError(t, err)

	b, err = r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, long, b)
	w, err = r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xffffffff), w)

	require.Equal(t, 0, r.Remaining())
}

func TestVarBytesReader_Truncated(t *testing.T) {
	engine := endian.GetNativeEngine()

	t.Run("empty input", func(t *testing.T) {
		_, err := NewVarBytesReader(nil, engine).ReadBytes()
		require.Error(t, err)
	})

	t.Run("length exceeds data", func(t *testing.T) {
		_, err := NewVarBytesReader([]byte{0x05, 'a', 'b'}, engine).ReadBytes()
		require.ErrorContains(t, err, "insufficient data")
	})

	t.Run("short uint32", func(t *testing.T) {
		_, err := NewVarBytesReader([]byte{0x01, 0x02}, engine).ReadUint32()
		require.ErrorContains(t, err, "insufficient data for uint32")
	})

	t.Run("oversized length", func(t *testing.T) {
		_, err := NewVarBytesReader([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, engine).ReadBytes()
		require.ErrorContains(t, err, "exceeds maximum")
	})
}
