package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxUnsizedOutput caps the buffer Decompress grows to when the restored size of a
// block is not known.
const lz4MaxUnsizedOutput = 128 << 20

// lz4MaxRatio is the largest expansion an LZ4 block can produce: a match length byte
// of 255 copies at most 255 bytes.
const lz4MaxRatio = 255

// lz4MaxDecompressedSize returns the largest restored size an LZ4 block of n bytes can
// describe.
func lz4MaxDecompressedSize(n int) int {
	return n*lz4MaxRatio + 16
}

var lz4Compressors = sync.Pool{
	New: func() any { return new(lz4.Compressor) },
}

// LZ4Compressor compresses frame payloads with the LZ4 block format.
//
// LZ4 blocks do not record their decompressed length. Frames always know it from the
// header, so they decode through DecompressSized; Decompress has to guess.
type LZ4Compressor struct{}

var (
	_ Codec             = LZ4Compressor{}
	_ SizedDecompressor = LZ4Compressor{}
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as a single LZ4 block. Empty input yields nil.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4Compressors.Get().(*lz4.Compressor)
	defer lz4Compressors.Put(lc)

	block := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, block)
	if err != nil {
		return nil, err
	}

	return block[:n], nil
}

// DecompressSized restores a block whose decompressed length is size.
//
// Parameters:
//   - data: LZ4 block
//   - size: Exact decompressed length, usually a frame's PayloadSize
//
// Returns:
//   - []byte: The restored bytes; may be shorter than size for corrupt input, which
//     Decompress (the package function) reports
//   - error: ErrSizeOutOfBound when size is more than data could ever expand to, or an
//     lz4 block error
func (LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 || size == 0 {
		return nil, nil
	}
	if size < 0 || size > lz4MaxDecompressedSize(len(data)) {
		return nil, fmt.Errorf("%w: lz4 block of %d bytes cannot restore %d bytes",
			ErrSizeOutOfBound, len(data), size)
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

// Decompress restores a block of unknown length.
//
// The output buffer starts at four times the input and doubles on
// lz4.ErrInvalidSourceShortBuffer until it would exceed 128MiB.
func (LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= lz4MaxUnsizedOutput; size *= 2 {
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(data, out)
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return out[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
