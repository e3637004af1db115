package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_WriteAndBytes(t *testing.T) {
	buf := Get()
	defer Put(buf)

	require.NoError(t, buf.WriteByte(0x01))
	buf.MustWrite([]byte{0x02, 0x03})
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf.Bytes())
	require.Equal(t, 3, buf.Len())
}

func TestBuffer_ResetCursorKeepsData(t *testing.T) {
	buf := New()
	buf.MustWrite([]byte{1, 2, 3})
	buf.ResetCursor()

	p := make([]byte, 2)
	n, err := buf.Read(p)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{1, 2}, p)
}

func TestBuffer_ResetClearsData(t *testing.T) {
	buf := New()
	buf.MustWrite([]byte{1, 2, 3})
	buf.Reset()
	require.Equal(t, 0, buf.Len())
}

func TestBuffer_GrowPreservesContent(t *testing.T) {
	buf := New()
	buf.MustWrite([]byte{9, 8})
	buf.Grow(1024)
	require.Equal(t, []byte{9, 8}, buf.Bytes())
	require.GreaterOrEqual(t, cap(buf.Bytes()), 1026)
}

func TestGet_ResetsPooledBuffer(t *testing.T) {
	buf := Get()
	buf.MustWrite([]byte{1, 2, 3})
	Put(buf)

	buf2 := Get()
	require.Equal(t, 0, buf2.Len())
	Put(buf2)
}
