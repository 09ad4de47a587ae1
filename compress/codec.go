package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/grnbulk/format"
)

// Compressor compresses frame payloads.
//
// Payloads are the raw bytes of a bulk, a packed id run or a length-prefixed vector
// body, so sizes range from a handful of bytes to a few megabytes. Compress must not
// modify its input; apart from the no-op codec the result is a fresh slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor. It fails on
// corrupt input and on input written by another algorithm. Implementations are safe for
// concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// ErrSizeOutOfBound is returned by a SizedDecompressor when the requested size cannot
// be produced from the compressed input. It is checked before any output is allocated.
var ErrSizeOutOfBound = errors.New("decompressed size out of bound")

// SizedDecompressor is implemented by codecs that need, or benefit from, the restored
// size up front, such as block formats without an embedded length.
//
// The size usually comes from an untrusted frame header, so implementations must
// validate it against the input before allocating.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec compresses and decompresses with one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one payload compression. Marshal logs it at debug level.
type CompressionStats struct {
	Algorithm         format.CompressionType
	OriginalSize      int64
	CompressedSize    int64
	CompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression. Small payloads such as a
// single 4-byte bulk usually come out above 1.0.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative when the
// compressed payload is larger than the original.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType. Codecs are stateless,
// so the same instance serves every frame.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Decompress restores data whose original size is known to be size bytes.
//
// Codecs implementing SizedDecompressor use the size directly; for the others the
// result length is checked against it.
func Decompress(codec Decompressor, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)

	if sd, ok := codec.(SizedDecompressor); ok {
		out, err = sd.DecompressSized(data, size)
	} else {
		out, err = codec.Decompress(data)
	}
	if err != nil {
		return nil, err
	}

	if len(out) != size {
		return nil, fmt.Errorf("decompressed %d bytes, expected %d", len(out), size)
	}

	return out, nil
}
