package archive

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// magic identifies an archive container, written as the first 4 header
// bytes so a reader can reject non-archive input before trusting the
// rest of the header.
const magic = uint32(0x6d706b31) // "mpk1"

// headerSize is the fixed byte length of the archive header: a small
// fixed-size prefix in front of the compressed payload.
const headerSize = 4 + 1 + 3 + 4 + 4 + 4

// header is the fixed-size framing in front of every archived message:
//
//	offset 0-3:   magic
//	offset 4:     algorithm
//	offset 5-7:   reserved (zero)
//	offset 8-11:  uncompressed length
//	offset 12-15: compressed length
//	offset 16-19: CRC32 checksum of the uncompressed message
type header struct {
	algorithm       Algorithm
	uncompressedLen uint32
	compressedLen   uint32
	checksum        uint32
}

func (h header) bytes() []byte {
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint32(b[0:4], magic)
	b[4] = byte(h.algorithm)
	// b[5:8] reserved, left zero
	binary.BigEndian.PutUint32(b[8:12], h.uncompressedLen)
	binary.BigEndian.PutUint32(b[12:16], h.compressedLen)
	binary.BigEndian.PutUint32(b[16:20], h.checksum)

	return b
}

func parseHeader(b []byte) (header, error) {
	if len(b) < headerSize {
		return header{}, fmt.Errorf("archive: truncated header (%d bytes)", len(b))
	}
	if got := binary.BigEndian.Uint32(b[0:4]); got != magic {
		return header{}, fmt.Errorf("archive: bad magic %08x", got)
	}

	return header{
		algorithm:       Algorithm(b[4]),
		uncompressedLen: binary.BigEndian.Uint32(b[8:12]),
		compressedLen:   binary.BigEndian.Uint32(b[12:16]),
		checksum:        binary.BigEndian.Uint32(b[16:20]),
	}, nil
}

// Pack compresses a complete encoded MessagePack message with the
// given Algorithm and frames it with a checksummed header, for callers
// that want to persist or transmit an encoded message compactly.
//
// messageBytes is typically the output of msgpack.Marshal; Pack does
// not itself validate that messageBytes is well-formed MessagePack —
// that is Decode's job, applied after Unpack.
func Pack(messageBytes []byte, alg Algorithm) ([]byte, error) {
	codec, err := NewCodec(alg)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(messageBytes)
	if err != nil {
		return nil, fmt.Errorf("archive: compress: %w", err)
	}

	h := header{
		algorithm:       alg,
		uncompressedLen: uint32(len(messageBytes)),
		compressedLen:   uint32(len(compressed)),
		checksum:        crc32.ChecksumIEEE(messageBytes),
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, h.bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Unpack validates the header and checksum of a Pack'd archive and
// returns the original message bytes, ready for msgpack.Unmarshal.
func Unpack(archived []byte) ([]byte, error) {
	h, err := parseHeader(archived)
	if err != nil {
		return nil, err
	}

	payload := archived[headerSize:]
	if uint32(len(payload)) != h.compressedLen {
		return nil, fmt.Errorf("archive: compressed length mismatch: header says %d, got %d", h.compressedLen, len(payload))
	}

	codec, err := NewCodec(h.algorithm)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("archive: decompress: %w", err)
	}

	if uint32(len(out)) != h.uncompressedLen {
		return nil, fmt.Errorf("archive: uncompressed length mismatch: header says %d, got %d", h.uncompressedLen, len(out))
	}
	if crc32.ChecksumIEEE(out) != h.checksum {
		return nil, fmt.Errorf("archive: checksum mismatch, archive is corrupt")
	}

	return out, nil
}
