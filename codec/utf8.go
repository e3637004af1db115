package codec

import (
	"github.com/ignoxx/msgpack/errs"
	"github.com/ignoxx/msgpack/value"
)

// decodeStr reads length raw bytes and validates them as UTF-8,
// returning a value.Str on success.
//
// Sequences of length 1/2/3/4 are recognized by their lead-byte
// pattern (0xxxxxxx / 110xxxxx / 1110xxxx / 11110xxx). A truncated
// sequence or an unrecognized lead byte is always an error, reported
// at the position of the lead byte that starts the bad sequence — the
// first byte of the unparseable construct.
//
// In strict mode (the default) continuation bytes are additionally
// checked for the 10xxxxxx prefix and overlong/surrogate code points
// are rejected. In lenient mode neither check runs, matching decoders
// that only validate sequence length and leave codepoint validity to
// the caller.
func (d *decoder) decodeStr(length int) (value.Value, error) {
	base := d.pos
	data, err := d.readBytes(length)
	if err != nil {
		return nil, err
	}

	if pos, ok := firstUTF8Error(data, d.cfg.strictUTF8); !ok {
		return nil, d.fail(errs.ErrInvalidUTF8, base+pos)
	}

	cp := make([]byte, length)
	copy(cp, data)

	return value.Str(cp), nil
}

// firstUTF8Error scans data for the first invalid UTF-8 sequence,
// returning its offset within data and ok=false if one is found.
func firstUTF8Error(data []byte, strict bool) (int, bool) {
	i := 0
	for i < len(data) {
		lead := data[i]

		var seqLen int
		switch {
		case lead&0x80 == 0x00:
			seqLen = 1
		case lead&0xe0 == 0xc0:
			seqLen = 2
		case lead&0xf0 == 0xe0:
			seqLen = 3
		case lead&0xf8 == 0xf0:
			seqLen = 4
		default:
			return i, false
		}

		if i+seqLen > len(data) {
			return i, false
		}

		if strict {
			for j := 1; j < seqLen; j++ {
				if data[i+j]&0xc0 != 0x80 {
					return i, false
				}
			}
			if !validCodepoint(data[i:i+seqLen], seqLen) {
				return i, false
			}
		}

		i += seqLen
	}

	return 0, true
}

// validCodepoint rejects overlong encodings and lone surrogate halves,
// the strict-mode checks beyond baseline sequence-length validation.
func validCodepoint(seq []byte, seqLen int) bool {
	var cp uint32
	switch seqLen {
	case 1:
		return true
	case 2:
		cp = uint32(seq[0]&0x1f)<<6 | uint32(seq[1]&0x3f)
		return cp >= 0x80
	case 3:
		cp = uint32(seq[0]&0x0f)<<12 | uint32(seq[1]&0x3f)<<6 | uint32(seq[2]&0x3f)
		if cp < 0x800 {
			return false
		}

		return cp < 0xd800 || cp > 0xdfff
	case 4:
		cp = uint32(seq[0]&0x07)<<18 | uint32(seq[1]&0x3f)<<12 | uint32(seq[2]&0x3f)<<6 | uint32(seq[3]&0x3f)
		return cp >= 0x10000 && cp <= 0x10ffff
	default:
		return false
	}
}
