// Package msgpack provides a self-contained codec for the MessagePack
// binary interchange format.
//
// # Core Features
//
//   - Full MessagePack wire format: nil, bool, integers (auto-promoted
//     to the smallest wire class), float64, strings, binary blobs,
//     arrays, maps, and application extension types.
//   - A dynamic value tree (package value) instead of reflection-based
//     struct marshaling — encode and decode operate on value.Value
//     directly.
//   - Pooled, growable sinks for encode (package internal/pool), so
//     repeated Encode calls in a hot path don't re-allocate.
//   - Content fingerprinting (package digest) and compressed archival
//     framing (package archive) built on top of the core codec.
//
// # Basic Usage
//
//	msg := value.Map{
//		{Key: "id", Val: value.Int(1)},
//		{Key: "name", Val: value.Str("widget")},
//	}
//	data, err := msgpack.Marshal(msg)
//	if err != nil {
//		return err
//	}
//
//	decoded, err := msgpack.Unmarshal(data)
//	if err != nil {
//		return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, including buffer reuse across many Encode calls (NewBuffer)
// and decode strictness (WithStrictUTF8). The codec package holds the
// underlying Encode/Decode engines.
package msgpack

import (
	"github.com/ignoxx/msgpack/codec"
	"github.com/ignoxx/msgpack/digest"
	"github.com/ignoxx/msgpack/internal/pool"
	"github.com/ignoxx/msgpack/value"
)

// Value is the dynamic value tree type; re-exported so callers don't
// need to import package value for common use.
type Value = value.Value

// Buffer is the growable byte sink Encode writes into. It is a type
// alias onto the internal pool package's buffer so external callers
// can hold and pass one without importing an internal package
// directly; construct one with NewBuffer.
type Buffer = pool.Buffer

// NewBuffer allocates a sink for repeated Encode calls. Unlike the
// sink Encode allocates internally when passed nil, a Buffer obtained
// here is never returned to the internal pool, so it remains valid
// for the caller to reuse across many Encode calls by calling Reset
// between them.
func NewBuffer() *Buffer {
	return pool.New()
}

// EncodeOption configures a single Marshal/Encode call.
type EncodeOption = codec.EncodeOption

// DecodeOption configures a single Unmarshal/Decode call.
type DecodeOption = codec.DecodeOption

// WithBufferHint pre-grows the encode sink by n bytes.
func WithBufferHint(n int) EncodeOption { return codec.WithBufferHint(n) }

// WithStrictUTF8 toggles strict UTF-8 validation during decode.
func WithStrictUTF8(strict bool) DecodeOption { return codec.WithStrictUTF8(strict) }

// Marshal encodes v into a freshly allocated byte slice.
//
// This is the convenience entry point for one-shot encoding; callers
// encoding many messages in a loop should prefer Encode with a reused
// sink to avoid repeated pool round-trips.
func Marshal(v Value, opts ...EncodeOption) ([]byte, error) {
	sink, err := codec.Encode(v, nil, opts...)
	if err != nil {
		return nil, err
	}
	defer pool.Put(sink)

	out := make([]byte, sink.Len())
	copy(out, sink.Bytes())

	return out, nil
}

// Encode serializes v into sink directly. If sink is nil a pooled
// buffer is allocated and returned; see codec.Encode for the full
// ownership contract.
func Encode(v Value, sink *pool.Buffer, opts ...EncodeOption) (*pool.Buffer, error) {
	return codec.Encode(v, sink, opts...)
}

// Unmarshal parses a complete MessagePack message from data.
func Unmarshal(data []byte, opts ...DecodeOption) (Value, error) {
	return codec.Decode(data, opts...)
}

// Decode is an alias for Unmarshal, named to match Encode's pairing.
func Decode(data []byte, opts ...DecodeOption) (Value, error) {
	return codec.Decode(data, opts...)
}

// Fingerprint returns the xxHash64 content digest of an encoded
// MessagePack message, for callers building a cache or dedup layer
// keyed by encoded-message identity.
func Fingerprint(data []byte) uint64 {
	return digest.Fingerprint(data)
}
