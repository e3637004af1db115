package codec

import (
	"math"

	"github.com/ignoxx/msgpack/errs"
	"github.com/ignoxx/msgpack/format"
	"github.com/ignoxx/msgpack/internal/endian"
	"github.com/ignoxx/msgpack/internal/options"
	"github.com/ignoxx/msgpack/internal/pool"
	"github.com/ignoxx/msgpack/value"
)

// Encode serializes v into MessagePack bytes.
//
// If sink is nil, a pooled buffer is allocated and returned; on error
// in that case the pooled buffer is released back to the pool before
// returning. If sink is non-nil, Encode writes into it from its
// current position and does not take ownership: on error the caller
// is responsible for discarding or truncating whatever was written.
//
// On success the sink's read cursor is reset to 0 so callers can
// immediately read back the encoded bytes.
func Encode(v value.Value, sink *pool.Buffer, opts ...EncodeOption) (*pool.Buffer, error) {
	cfg := defaultEncodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	ownedSink := sink == nil
	if sink == nil {
		sink = pool.Get()
	}
	if cfg.bufferHint > 0 {
		sink.Grow(cfg.bufferHint)
	}

	if err := encodeValue(sink, v); err != nil {
		if ownedSink {
			pool.Put(sink)
		}

		return nil, err
	}

	sink.ResetCursor()

	return sink, nil
}

func encodeValue(sink *pool.Buffer, v value.Value) error {
	switch tv := v.(type) {
	case value.Nil:
		return sink.WriteByte(byte(format.Nil))
	case nil:
		return sink.WriteByte(byte(format.Nil))
	case value.Bool:
		if tv {
			return sink.WriteByte(byte(format.True))
		}

		return sink.WriteByte(byte(format.False))
	case value.Int:
		return encodeInt(sink, int64(tv))
	case value.Float:
		return encodeFloat(sink, float64(tv))
	case value.Str:
		return encodeStr(sink, string(tv))
	case value.Bin:
		return encodeBin(sink, []byte(tv))
	case value.Array:
		return encodeArray(sink, tv)
	case value.Map:
		return encodeMap(sink, tv)
	case value.Ext:
		return encodeExt(sink, tv)
	default:
		// Value is closed over this package's variants via the
		// unexported isValue method; no other concrete type can reach
		// this branch.
		panic("unhandled value type")
	}
}

// encodeInt picks the minimum-width integer format that fits n and
// writes the marker plus big-endian payload.
func encodeInt(sink *pool.Buffer, n int64) error {
	switch {
	case n >= 0:
		switch {
		case n <= format.PositiveFixIntMax:
			return sink.WriteByte(byte(n))
		case n <= 0xff:
			return writeMarkerByte(sink, format.Uint8, byte(n))
		case n <= 0xffff:
			return writeMarkerUint16(sink, format.Uint16, uint16(n))
		case n <= 0xffffffff:
			return writeMarkerUint32(sink, format.Uint32, uint32(n))
		default:
			return writeMarkerUint64(sink, format.Uint64, uint64(n))
		}
	default:
		switch {
		case n >= -32:
			return sink.WriteByte(byte(int8(n)))
		case n >= -128:
			return writeMarkerByte(sink, format.Int8, byte(int8(n)))
		case n >= -32768:
			return writeMarkerUint16(sink, format.Int16, uint16(int16(n)))
		case n >= -(1 << 31):
			return writeMarkerUint32(sink, format.Int32, uint32(int32(n)))
		default:
			return writeMarkerUint64(sink, format.Int64, uint64(n))
		}
	}
}

func encodeFloat(sink *pool.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errs.NewEncodeError(errs.ErrNonFiniteFloat)
	}

	return writeMarkerUint64(sink, format.Float64, math.Float64bits(f))
}

func encodeStr(sink *pool.Buffer, s string) error {
	l := len(s)
	switch {
	case l <= format.FixStrMax:
		if err := sink.WriteByte(byte(format.FixStrBase) | byte(l)); err != nil {
			return err
		}
	case l <= 0xff:
		if err := writeMarkerByte(sink, format.Str8, byte(l)); err != nil {
			return err
		}
	case l <= 0xffff:
		if err := writeMarkerUint16(sink, format.Str16, uint16(l)); err != nil {
			return err
		}
	default:
		if err := writeMarkerUint32(sink, format.Str32, uint32(l)); err != nil {
			return err
		}
	}
	sink.MustWrite([]byte(s))

	return nil
}

func encodeBin(sink *pool.Buffer, b []byte) error {
	l := len(b)
	switch {
	case l <= 0xff:
		if err := writeMarkerByte(sink, format.Bin8, byte(l)); err != nil {
			return err
		}
	case l <= 0xffff:
		if err := writeMarkerUint16(sink, format.Bin16, uint16(l)); err != nil {
			return err
		}
	default:
		if err := writeMarkerUint32(sink, format.Bin32, uint32(l)); err != nil {
			return err
		}
	}
	sink.MustWrite(b)

	return nil
}

func encodeArray(sink *pool.Buffer, arr value.Array) error {
	c := len(arr)
	switch {
	case c <= format.FixArrayMax:
		if err := sink.WriteByte(byte(format.FixArrayBase) | byte(c)); err != nil {
			return err
		}
	case c <= 0xffff:
		if err := writeMarkerUint16(sink, format.Array16, uint16(c)); err != nil {
			return err
		}
	default:
		if err := writeMarkerUint32(sink, format.Array32, uint32(c)); err != nil {
			return err
		}
	}

	for _, el := range arr {
		if err := encodeValue(sink, el); err != nil {
			return err
		}
	}

	return nil
}

func encodeMap(sink *pool.Buffer, m value.Map) error {
	c := len(m)
	switch {
	case c <= format.FixMapMax:
		if err := sink.WriteByte(byte(format.FixMapBase) | byte(c)); err != nil {
			return err
		}
	case c <= 0xffff:
		if err := writeMarkerUint16(sink, format.Map16, uint16(c)); err != nil {
			return err
		}
	default:
		if err := writeMarkerUint32(sink, format.Map32, uint32(c)); err != nil {
			return err
		}
	}

	for _, pair := range m {
		if err := encodeStr(sink, pair.Key); err != nil {
			return err
		}
		if err := encodeValue(sink, pair.Val); err != nil {
			return err
		}
	}

	return nil
}

// encodeExt writes an extension value: fixed-width fixext markers for
// exact 1/2/4/8/16-byte payloads, length-prefixed ext8/16/32
// otherwise.
func encodeExt(sink *pool.Buffer, e value.Ext) error {
	l := len(e.Data)
	if uint64(l) > 0xffffffff {
		return errs.NewEncodeError(errs.ErrExtPayloadTooLarge)
	}

	switch l {
	case 1:
		if err := sink.WriteByte(byte(format.FixExt1)); err != nil {
			return err
		}
	case 2:
		if err := sink.WriteByte(byte(format.FixExt2)); err != nil {
			return err
		}
	case 4:
		if err := sink.WriteByte(byte(format.FixExt4)); err != nil {
			return err
		}
	case 8:
		if err := sink.WriteByte(byte(format.FixExt8)); err != nil {
			return err
		}
	case 16:
		if err := sink.WriteByte(byte(format.FixExt16)); err != nil {
			return err
		}
	default:
		switch {
		case l <= 0xff:
			if err := writeMarkerByte(sink, format.Ext8, byte(l)); err != nil {
				return err
			}
		case l <= 0xffff:
			if err := writeMarkerUint16(sink, format.Ext16, uint16(l)); err != nil {
				return err
			}
		default:
			if err := writeMarkerUint32(sink, format.Ext32, uint32(l)); err != nil {
				return err
			}
		}
	}

	if err := sink.WriteByte(byte(e.Type)); err != nil {
		return err
	}
	sink.MustWrite(e.Data)

	return nil
}

func writeMarkerByte(sink *pool.Buffer, marker format.Marker, b byte) error {
	if err := sink.WriteByte(byte(marker)); err != nil {
		return err
	}

	return sink.WriteByte(b)
}

func writeMarkerUint16(sink *pool.Buffer, marker format.Marker, n uint16) error {
	if err := sink.WriteByte(byte(marker)); err != nil {
		return err
	}
	var buf [2]byte
	endian.Engine.PutUint16(buf[:], n)
	sink.MustWrite(buf[:])

	return nil
}

func writeMarkerUint32(sink *pool.Buffer, marker format.Marker, n uint32) error {
	if err := sink.WriteByte(byte(marker)); err != nil {
		return err
	}
	var buf [4]byte
	endian.Engine.PutUint32(buf[:], n)
	sink.MustWrite(buf[:])

	return nil
}

func writeMarkerUint64(sink *pool.Buffer, marker format.Marker, n uint64) error {
	if err := sink.WriteByte(byte(marker)); err != nil {
		return err
	}
	var buf [8]byte
	endian.Engine.PutUint64(buf[:], n)
	sink.MustWrite(buf[:])

	return nil
}
