package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	data := []byte{0x81, 0xa2, 0x69, 0x64, 0x01}
	a := Fingerprint(data)
	b := Fingerprint(append([]byte(nil), data...))
	require.Equal(t, a, b)
}

func TestFingerprint_DiffersOnDifferentInput(t *testing.T) {
	require.NotEqual(t, Fingerprint([]byte{0x01}), Fingerprint([]byte{0x02}))
}

func TestFingerprintString(t *testing.T) {
	require.Equal(t, FingerprintString("hello"), FingerprintString("hello"))
	require.NotEqual(t, FingerprintString("hello"), FingerprintString("world"))
}
