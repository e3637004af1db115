package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignoxx/msgpack/errs"
	"github.com/ignoxx/msgpack/internal/pool"
	"github.com/ignoxx/msgpack/value"
)

func encodeHex(t *testing.T, v value.Value) []byte {
	t.Helper()
	sink, err := Encode(v, nil)
	require.NoError(t, err)
	defer pool.Put(sink)

	out := make([]byte, sink.Len())
	copy(out, sink.Bytes())

	return out
}

func TestEncode_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   value.Value
		want []byte
	}{
		{"nil", value.Nil{}, []byte{0xc0}},
		{"true", value.Bool(true), []byte{0xc3}},
		{"false", value.Bool(false), []byte{0xc2}},
		{"127", value.Int(127), []byte{0x7f}},
		{"128", value.Int(128), []byte{0xcc, 0x80}},
		{"255", value.Int(255), []byte{0xcc, 0xff}},
		{"256", value.Int(256), []byte{0xcd, 0x01, 0x00}},
		{"65535", value.Int(65535), []byte{0xcd, 0xff, 0xff}},
		{"65536", value.Int(65536), []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{"-1", value.Int(-1), []byte{0xff}},
		{"-32", value.Int(-32), []byte{0xe0}},
		{"-33", value.Int(-33), []byte{0xd0, 0xdf}},
		{"-128", value.Int(-128), []byte{0xd0, 0x80}},
		{"-129", value.Int(-129), []byte{0xd1, 0xff, 0x7f}},
		{"1.5", value.Float(1.5), []byte{0xcb, 0x3f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"Hello", value.Str("Hello"), []byte{0xa5, 0x48, 0x65, 0x6c, 0x6c, 0x6f}},
		{"array123", value.Array{value.Int(1), value.Int(2), value.Int(3)}, []byte{0x93, 0x01, 0x02, 0x03}},
		{"map id1", value.Map{{Key: "id", Val: value.Int(1)}}, []byte{0x81, 0xa2, 0x69, 0x64, 0x01}},
		{"empty string", value.Str(""), []byte{0xa0}},
		{"empty array", value.Array{}, []byte{0x90}},
		{"empty map", value.Map{}, []byte{0x80}},
		{"0.0 is float64", value.Float(0.0), []byte{0xcb, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, encodeHex(t, tc.in))
		})
	}
}

func TestEncode_StrBoundary(t *testing.T) {
	s31 := make([]byte, 31)
	for i := range s31 {
		s31[i] = 'a'
	}
	got := encodeHex(t, value.Str(s31))
	require.Equal(t, byte(0xa0|31), got[0])

	s32 := make([]byte, 32)
	for i := range s32 {
		s32[i] = 'a'
	}
	got = encodeHex(t, value.Str(s32))
	require.Equal(t, byte(0xd9), got[0])
	require.Equal(t, byte(32), got[1])
}

func TestEncode_ArrayBoundary(t *testing.T) {
	arr15 := make(value.Array, 15)
	for i := range arr15 {
		arr15[i] = value.Int(0)
	}
	got := encodeHex(t, arr15)
	require.Equal(t, byte(0x90|15), got[0])

	arr16 := make(value.Array, 16)
	for i := range arr16 {
		arr16[i] = value.Int(0)
	}
	got = encodeHex(t, arr16)
	require.Equal(t, byte(0xdc), got[0])
}

func TestEncode_NonFiniteFloat(t *testing.T) {
	_, err := Encode(value.Float(posInf()), nil)
	require.ErrorIs(t, err, errs.ErrNonFiniteFloat)

	_, err = Encode(value.Float(nan()), nil)
	require.ErrorIs(t, err, errs.ErrNonFiniteFloat)
}

func posInf() float64 {
	var f float64 = 1
	return f / zero()
}

func nan() float64 {
	return zero() / zero()
}

func zero() float64 { return 0 }

func TestEncode_Ext(t *testing.T) {
	tests := []struct {
		name      string
		dataLen   int
		wantFirst byte
	}{
		{"fixext1", 1, 0xd4},
		{"fixext2", 2, 0xd5},
		{"fixext4", 4, 0xd6},
		{"fixext8", 8, 0xd7},
		{"fixext16", 16, 0xd8},
		{"ext8", 3, 0xc7},
		{"ext16", 300, 0xc8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := make([]byte, tc.dataLen)
			got := encodeHex(t, value.Ext{Type: 9, Data: data})
			require.Equal(t, tc.wantFirst, got[0])
		})
	}
}

func TestEncode_NilInterface(t *testing.T) {
	_, err := Encode(nil, nil)
	// An untyped nil value.Value encodes as format.Nil rather than
	// erroring, a tolerant zero-value default.
	require.NoError(t, err)
}

func TestEncode_WithBufferHint(t *testing.T) {
	sink, err := Encode(value.Str("hi"), nil, WithBufferHint(1024))
	require.NoError(t, err)
	require.GreaterOrEqual(t, cap(sink.Bytes()), 2)
	pool.Put(sink)
}

func TestEncode_CallerOwnedSink(t *testing.T) {
	sink := pool.New()
	sink.MustWrite([]byte{0xAB}) // pre-existing data from caller
	got, err := Encode(value.Int(1), sink)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0x01}, got.Bytes())
}
