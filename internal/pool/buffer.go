// Package pool provides the pooled, growable byte sink the encoder
// writes into, so repeated Encode calls in a hot path don't allocate a
// fresh buffer each time.
package pool

import (
	"io"
	"sync"
)

// DefaultSize is the initial capacity handed out by Get, sized for a
// codec whose typical message is small.
const DefaultSize = 256

// Buffer is a growable byte sink with an explicit read cursor, reset to
// 0 on success so callers can read back what they just wrote.
type Buffer struct {
	b   []byte
	pos int
}

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{b: make([]byte, 0, DefaultSize)}
	},
}

// Get acquires a Buffer from the pool, ready to be written into from
// offset 0.
func Get() *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)
	buf.b = buf.b[:0]
	buf.pos = 0

	return buf
}

// Put returns buf to the pool. Callers must not use buf after Put.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if cap(buf.b) > DefaultSize*64 {
		// Don't let one oversized message permanently bloat the pool.
		return
	}
	bufferPool.Put(buf)
}

// New allocates a fresh, unpooled Buffer. Used when a caller wants a
// sink whose lifetime they manage without pool interaction.
func New() *Buffer {
	return &Buffer{b: make([]byte, 0, DefaultSize)}
}

// Grow ensures the buffer has room for at least n more bytes without
// reallocating.
func (buf *Buffer) Grow(n int) {
	if cap(buf.b)-len(buf.b) >= n {
		return
	}
	grown := make([]byte, len(buf.b), len(buf.b)+n)
	copy(grown, buf.b)
	buf.b = grown
}

// WriteByte appends a single byte.
func (buf *Buffer) WriteByte(b byte) error {
	buf.b = append(buf.b, b)
	return nil
}

// Write appends data to the buffer.
func (buf *Buffer) Write(data []byte) (int, error) {
	buf.b = append(buf.b, data...)
	return len(data), nil
}

// MustWrite appends data to the buffer, growing it if necessary.
func (buf *Buffer) MustWrite(data []byte) {
	buf.b = append(buf.b, data...)
}

// Bytes returns the full written byte slice. The returned slice shares
// the underlying array with buf; callers must not retain it across a
// subsequent Reset/Put.
func (buf *Buffer) Bytes() []byte {
	return buf.b
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Reset clears the buffer and resets the read cursor to 0, retaining
// the allocated backing array for reuse.
func (buf *Buffer) Reset() {
	buf.b = buf.b[:0]
	buf.pos = 0
}

// ResetCursor resets only the read cursor to 0 without discarding
// written bytes, applied after a successful Encode so the caller can
// read back the bytes it just wrote.
func (buf *Buffer) ResetCursor() {
	buf.pos = 0
}

// Read reads up to len(p) bytes starting at the current cursor,
// advancing it, implementing io.Reader.
func (buf *Buffer) Read(p []byte) (int, error) {
	n := copy(p, buf.b[buf.pos:])
	buf.pos += n
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}
