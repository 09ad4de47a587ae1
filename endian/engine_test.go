package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var probe uint16 = 0x0102
	probeBytes := (*[2]byte)(unsafe.Pointer(&probe))

	switch probeBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("unexpected byte value", "got: %v", probeBytes[0])
	}
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.True(t, CompareNativeEndian(engine))

	// Cached value is stable.
	for range 10 {
		require.Equal(t, engine, GetNativeEngine())
	}

	// Native engine must match a raw memory reinterpretation.
	var v uint32 = 0xA1B2C3D4
	raw := (*[4]byte)(unsafe.Pointer(&v))
	buf := make([]byte, 4)
	engine.PutUint32(buf, v)
	require.Equal(t, raw[:], buf)
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian)
	require.Equal(t, littleEndian, IsLittleEndian(GetNativeEngine()))
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestIsLittleEndian(t *testing.T) {
	require.True(t, IsLittleEndian(GetLittleEndianEngine()))
	require.False(t, IsLittleEndian(GetBigEndianEngine()))
}

func TestEndianEngines_Uint32(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var id uint32 = 0x01020304
	littleBytes := make([]byte, 4)
	bigBytes := make([]byte, 4)

	littleEngine.PutUint32(littleBytes, id)
	bigEngine.PutUint32(bigBytes, id)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, littleBytes)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bigBytes)
	require.Equal(t, id, littleEngine.Uint32(littleBytes))
	require.Equal(t, id, bigEngine.Uint32(bigBytes))
}
