// Package endian selects the byte order used for grnbulk buffers.
//
// Bulk, vector and uvector payloads use the host's native layout: an int32 written on
// an amd64 host is stored exactly as the CPU keeps it in memory. The package makes that
// decision explicit instead of leaving it to pointer casts. Encoders and decoders take an
// EndianEngine, which defaults to the host engine returned by GetNativeEngine.
//
// # Basic Usage
//
//	engine := endian.GetNativeEngine()
//	buf = engine.AppendUint32(buf, uint32(id))
//
// Forcing a fixed order is possible, for example to reproduce buffers written by a
// big-endian host:
//
//	engine := endian.GetBigEndianEngine()
//
// No canonicalization is performed when buffers travel between hosts with different
// byte orders. Frames record the writer's order so readers can detect the mismatch.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned engines are
// immutable and stateless.
package endian

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	nativeOnce   sync.Once
	nativeEngine EndianEngine
)

// CheckEndianness inspects the in-memory layout of a fixed integer to determine the
// host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x01 first on big-endian hosts and 0x00 first on little-endian ones.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host's byte order.
//
// The result is computed once and cached.
func GetNativeEngine() EndianEngine {
	nativeOnce.Do(func() {
		if CheckEndianness() == binary.BigEndian {
			nativeEngine = binary.BigEndian
		} else {
			nativeEngine = binary.LittleEndian
		}
	})

	return nativeEngine
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine uses the host's byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0001)

	return b[0] == 0x01
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
