package codec

import "github.com/ignoxx/msgpack/internal/options"

// encodeConfig holds Encode's tunables, configured via EncodeOption.
type encodeConfig struct {
	bufferHint int
}

// EncodeOption configures a single Encode call.
type EncodeOption = options.Option[*encodeConfig]

// WithBufferHint pre-grows the sink by n bytes before encoding begins,
// avoiding intermediate reallocation for callers who know their
// message's approximate size.
func WithBufferHint(n int) EncodeOption {
	return options.NoError(func(c *encodeConfig) {
		if n > 0 {
			c.bufferHint = n
		}
	})
}

// decodeConfig holds Decode's tunables, configured via DecodeOption.
type decodeConfig struct {
	strictUTF8 bool
}

// DecodeOption configures a single Decode call.
type DecodeOption = options.Option[*decodeConfig]

// WithStrictUTF8 toggles strict UTF-8 validation during string decode.
//
// Strict mode (the default) rejects continuation bytes that don't
// carry the 10xxxxxx prefix, overlong encodings, and lone
// surrogate-half code points, in addition to the truncation and
// bad-lead-byte checks that always run. Passing false restores lenient
// behavior for callers that need byte-for-byte compatibility with a
// lenient encoder elsewhere in their pipeline.
func WithStrictUTF8(strict bool) DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.strictUTF8 = strict
	})
}

func defaultEncodeConfig() *encodeConfig {
	return &encodeConfig{}
}

func defaultDecodeConfig() *decodeConfig {
	return &decodeConfig{strictUTF8: true}
}
