package codec

import (
	"math"

	"github.com/ignoxx/msgpack/errs"
	"github.com/ignoxx/msgpack/format"
	"github.com/ignoxx/msgpack/internal/endian"
	"github.com/ignoxx/msgpack/internal/options"
	"github.com/ignoxx/msgpack/value"
)

func float32FromBits(n uint32) float64 {
	return float64(math.Float32frombits(n))
}

func float64FromBits(n uint64) float64 {
	return math.Float64frombits(n)
}

// Decode parses a complete MessagePack message into a value.Value.
//
// Exactly one top-level value is consumed starting at offset 0;
// trailing bytes are not an error.
func Decode(data []byte, opts ...DecodeOption) (value.Value, error) {
	cfg := defaultDecodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d := &decoder{data: data, cfg: cfg}
	v, err := d.decodeValue()
	if err != nil {
		return nil, err
	}

	return v, nil
}

type decoder struct {
	data []byte
	pos  int
	cfg  *decodeConfig
}

func (d *decoder) fail(err error, pos int) error {
	return errs.NewDecodeError(err, pos)
}

// need reports whether n more bytes are available starting at d.pos,
// returning an UnexpectedEnd error at d.pos otherwise.
func (d *decoder) need(n int) error {
	if d.pos+n > len(d.data) {
		return d.fail(errs.ErrUnexpectedEnd, d.pos)
	}

	return nil
}

func (d *decoder) readByte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.data[d.pos]
	d.pos++

	return b, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

func (d *decoder) readUint16() (uint16, error) {
	b, err := d.readBytes(2)
	if err != nil {
		return 0, err
	}

	return endian.Engine.Uint16(b), nil
}

func (d *decoder) readUint32() (uint32, error) {
	b, err := d.readBytes(4)
	if err != nil {
		return 0, err
	}

	return endian.Engine.Uint32(b), nil
}

func (d *decoder) readUint64() (uint64, error) {
	b, err := d.readBytes(8)
	if err != nil {
		return 0, err
	}

	return endian.Engine.Uint64(b), nil
}

// decodeValue reads one format marker and dispatches on it to the
// matching decode routine.
func (d *decoder) decodeValue() (value.Value, error) {
	markerPos := d.pos
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}

	switch {
	case format.IsPositiveFixInt(b):
		return value.Int(b), nil
	case format.IsNegativeFixInt(b):
		return value.Int(int64(int8(b))), nil
	case format.IsFixMap(b):
		return d.decodeMap(int(b & format.FixMapMask))
	case format.IsFixArray(b):
		return d.decodeArray(int(b & format.FixArrayMask))
	case format.IsFixStr(b):
		return d.decodeStr(int(b & format.FixStrMask))
	}

	switch format.Marker(b) {
	case format.Nil:
		return value.Nil{}, nil
	case format.False:
		return value.Bool(false), nil
	case format.True:
		return value.Bool(true), nil
	case format.Bin8:
		n, err := d.readByte()
		if err != nil {
			return nil, err
		}

		return d.decodeBin(int(n))
	case format.Bin16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return d.decodeBin(int(n))
	case format.Bin32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return d.decodeBin(int(n))
	case format.Ext8:
		n, err := d.readByte()
		if err != nil {
			return nil, err
		}

		return d.decodeExt(int(n))
	case format.Ext16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return d.decodeExt(int(n))
	case format.Ext32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return d.decodeExt(int(n))
	case format.Float32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return value.Float(float32FromBits(n)), nil
	case format.Float64:
		n, err := d.readUint64()
		if err != nil {
			return nil, err
		}

		return value.Float(float64FromBits(n)), nil
	case format.Uint8:
		n, err := d.readByte()
		if err != nil {
			return nil, err
		}

		return value.Int(int64(n)), nil
	case format.Uint16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return value.Int(int64(n)), nil
	case format.Uint32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return value.Int(int64(n)), nil
	case format.Uint64:
		n, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		// Split into high/low 32-bit words and recombine, equivalent to
		// a direct 64-bit read in this int64-backed rendering.
		high := uint32(n >> 32)
		low := uint32(n)

		return value.Int(int64(uint64(high)<<32 | uint64(low))), nil
	case format.Int8:
		n, err := d.readByte()
		if err != nil {
			return nil, err
		}

		return value.Int(int64(int8(n))), nil
	case format.Int16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return value.Int(int64(int16(n))), nil
	case format.Int32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return value.Int(int64(int32(n))), nil
	case format.Int64:
		n, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		// The high word carries the sign; the low word stays unsigned.
		signedHigh := int32(n >> 32)
		low := uint32(n)

		return value.Int(int64(signedHigh)<<32 | int64(low)), nil
	case format.FixExt1:
		return d.decodeExt(1)
	case format.FixExt2:
		return d.decodeExt(2)
	case format.FixExt4:
		return d.decodeExt(4)
	case format.FixExt8:
		return d.decodeExt(8)
	case format.FixExt16:
		return d.decodeExt(16)
	case format.Str8:
		n, err := d.readByte()
		if err != nil {
			return nil, err
		}

		return d.decodeStr(int(n))
	case format.Str16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return d.decodeStr(int(n))
	case format.Str32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return d.decodeStr(int(n))
	case format.Array16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return d.decodeArray(int(n))
	case format.Array32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return d.decodeArray(int(n))
	case format.Map16:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}

		return d.decodeMap(int(n))
	case format.Map32:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}

		return d.decodeMap(int(n))
	default:
		return nil, d.fail(errs.ErrInvalidTypeMarker, markerPos)
	}
}

func (d *decoder) decodeBin(length int) (value.Value, error) {
	if length < 0 {
		return nil, d.fail(errs.ErrInvalidLength, d.pos)
	}
	b, err := d.readBytes(length)
	if err != nil {
		return nil, err
	}
	cp := make([]byte, length)
	copy(cp, b)

	return value.Bin(cp), nil
}

func (d *decoder) decodeExt(length int) (value.Value, error) {
	if length < 0 {
		return nil, d.fail(errs.ErrInvalidLength, d.pos)
	}
	typeByte, err := d.readByte()
	if err != nil {
		return nil, err
	}
	data, err := d.readBytes(length)
	if err != nil {
		return nil, err
	}
	cp := make([]byte, length)
	copy(cp, data)

	return value.Ext{Type: int8(typeByte), Data: cp}, nil
}

func (d *decoder) decodeArray(count int) (value.Value, error) {
	if count < 0 {
		return nil, d.fail(errs.ErrInvalidLength, d.pos)
	}
	arr := make(value.Array, 0, count)
	for i := 0; i < count; i++ {
		el, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, el)
	}

	return arr, nil
}

func (d *decoder) decodeMap(count int) (value.Value, error) {
	if count < 0 {
		return nil, d.fail(errs.ErrInvalidLength, d.pos)
	}
	m := make(value.Map, 0, count)
	for i := 0; i < count; i++ {
		keyPos := d.pos
		keyVal, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.(value.Str)
		if !ok {
			return nil, d.fail(errs.ErrMapKeyNotString, keyPos)
		}
		val, err := d.decodeValue()
		if err != nil {
			return nil, err
		}

		// Duplicate keys are not an error; later occurrences overwrite
		// earlier ones.
		replaced := false
		for j := range m {
			if m[j].Key == string(key) {
				m[j].Val = val
				replaced = true

				break
			}
		}
		if !replaced {
			m = append(m, value.Pair{Key: string(key), Val: val})
		}
	}

	return m, nil
}
