package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses frame payloads with S2 blocks.
//
// S2 is the fastest built-in codec and pays off on text bulks and vector bodies of a
// few kilobytes; a packed id run rarely shrinks much. Unlike LZ4, an S2 block starts
// with its decoded length, which DecompressSized checks against the frame header before
// allocating.
type S2Compressor struct{}

var (
	_ Codec             = S2Compressor{}
	_ SizedDecompressor = S2Compressor{}
)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block. Empty input yields nil.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores a block, trusting the length it carries.
func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSized restores a block that must decode to exactly size bytes.
//
// Returns:
//   - []byte: The restored bytes
//   - error: ErrSizeOutOfBound when the block declares another length, or an s2 error
func (S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 || size == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, expected %d", ErrSizeOutOfBound, n, size)
	}

	return s2.Decode(make([]byte, n), data)
}
