// Package archive compresses a complete encoded MessagePack message for
// storage or transport and frames it with a small fixed-size header.
//
// Encoding itself stays uncompressed and streaming-free; archive is a
// storage-layer wrapper applied after Encode and before Decode, not
// part of the core codec.
package archive

import "fmt"

// Compressor compresses a byte slice.
//
// Memory management: the returned slice is newly allocated and owned
// by the caller; the input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies which Codec produced a Pack'd archive, stored in
// the archive header so Unpack can select the matching Codec without
// the caller having to remember which one it used.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = 1
	AlgorithmS2   Algorithm = 2
	AlgorithmLZ4  Algorithm = 3
	AlgorithmZstd Algorithm = 4
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmS2:
		return "s2"
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// NewCodec is a factory function that creates a Codec for the given
// Algorithm.
func NewCodec(alg Algorithm) (Codec, error) {
	switch alg {
	case AlgorithmNone:
		return NoOpCodec{}, nil
	case AlgorithmS2:
		return S2Codec{}, nil
	case AlgorithmLZ4:
		return LZ4Codec{}, nil
	case AlgorithmZstd:
		return ZstdCodec{}, nil
	default:
		return nil, fmt.Errorf("archive: unknown algorithm %d", alg)
	}
}
