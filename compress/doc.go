// Package compress provides the payload codecs used by value frames.
//
// A frame carries one bulk, vector or uvector. Its payload is written in host byte order
// and may then be compressed with one of the codecs below; the frame header records
// which one, together with the uncompressed size and an xxHash64 of the uncompressed
// payload.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs that can use the known uncompressed size also implement SizedDecompressor;
// the package-level Decompress helper prefers it and checks the output length.
//
// # Supported Algorithms
//
//	Type                    | Codec           | Library
//	------------------------|-----------------|------------------------------------
//	format.CompressionNone  | NoOpCompressor  | (pass-through)
//	format.CompressionZstd  | ZstdCompressor  | klauspost/compress/zstd, or
//	                        |                 | valyala/gozstd with -tags gozstd
//	format.CompressionS2    | S2Compressor    | klauspost/compress/s2
//	format.CompressionLZ4   | LZ4Compressor   | pierrec/lz4/v4 (block format)
//
// Scalar bulks are at most 8 bytes for every non-text kind, so compressing them only
// adds overhead. Compression pays off for long text bulks and large vectors and
// uvectors; Zstd gives the best ratio, LZ4 and S2 the fastest decode.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "frame payload")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	original, err := compress.Decompress(codec, compressed, len(payload))
//
// # Thread Safety
//
// All codec implementations are stateless values backed by pooled encoders and are
// safe for concurrent use.
package compress
