package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpack_AllAlgorithms(t *testing.T) {
	message := []byte{0x81, 0xa2, 0x69, 0x64, 0x01, 0xa4, 0x6e, 0x61, 0x6d, 0x65}

	algs := []Algorithm{AlgorithmNone, AlgorithmS2, AlgorithmLZ4, AlgorithmZstd}
	for _, alg := range algs {
		t.Run(alg.String(), func(t *testing.T) {
			packed, err := Pack(message, alg)
			require.NoError(t, err)

			out, err := Unpack(packed)
			require.NoError(t, err)
			require.Equal(t, message, out)
		})
	}
}

func TestPackUnpack_Empty(t *testing.T) {
	packed, err := Pack(nil, AlgorithmS2)
	require.NoError(t, err)
	out, err := Unpack(packed)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestUnpack_DetectsCorruption(t *testing.T) {
	message := []byte("a reasonably long message to compress and corrupt")
	packed, err := Pack(message, AlgorithmNone)
	require.NoError(t, err)

	corrupted := append([]byte(nil), packed...)
	corrupted[len(corrupted)-1] ^= 0xff

	_, err = Unpack(corrupted)
	require.Error(t, err)
}

func TestUnpack_RejectsBadMagic(t *testing.T) {
	_, err := Unpack(make([]byte, headerSize))
	require.Error(t, err)
}

func TestNewCodec_UnknownAlgorithm(t *testing.T) {
	_, err := NewCodec(Algorithm(99))
	require.Error(t, err)
}
