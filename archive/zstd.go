package archive

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec provides Zstandard compression via the pure-Go
// klauspost/compress implementation. A cgo-backed alternative
// (valyala/gozstd) exists but isn't used here, to keep this package
// buildable without cgo; see DESIGN.md.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// zstdEncoderPool and zstdDecoderPool pool warmed-up encoders and
// decoders so repeated Compress/Decompress calls reuse them instead of
// constructing a new one each time; each call still allocates its
// output slice.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("archive: failed to create zstd encoder: %v", err))
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("archive: failed to create zstd decoder: %v", err))
		}

		return dec
	},
}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("archive: zstd decompress: %w", err)
	}

	return out, nil
}
