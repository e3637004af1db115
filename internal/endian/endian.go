// Package endian provides the big-endian byte order helpers the codec
// uses for every multi-byte numeric write and read.
//
// MessagePack fixes wire byte order to big-endian, so this package
// exposes a single fixed engine rather than a pluggable one. The
// native-order check remains useful for callers embedding this codec
// in a larger system that also swaps bytes on a hot path.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine is the fixed big-endian byte order used for every MessagePack
// multi-byte numeric field.
var Engine = binary.BigEndian

// IsNativeBigEndian reports whether the host's native byte order is
// big-endian. The codec itself never branches on this (the wire format
// is always big-endian regardless of host order) but it is exposed for
// callers layering performance-sensitive transcoding on top.
func IsNativeBigEndian() bool {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x01
}
