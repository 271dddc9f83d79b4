package wire

import (
	"errors"
)

// Varint decoding errors
var (
	ErrVarintTooLong = errors.New("varint exceeds 10 bytes")
	ErrUnexpectedEOF = errors.New("unexpected EOF while reading varint")
)

// maxVarintLen is the maximum number of bytes in the encoding of a
// 64-bit varint: 9 full 7-bit groups plus one final group.
const maxVarintLen = 10

// DecodeVarint decodes a base-128 varint from the current position.
// The cursor advances past the consumed bytes on success and is left
// untouched on failure.
func (d *Decoder) DecodeVarint() (uint64, error) {
	var result uint64
	var shift uint

	pos := d.pos
	for i := 0; i < maxVarintLen; i++ {
		if pos >= len(d.buf) {
			return 0, ErrUnexpectedEOF
		}

		b := d.buf[pos]
		pos++

		// Lower 7 bits are payload, least-significant group first.
		result |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			d.pos = pos
			return result, nil
		}

		shift += 7
	}

	// Continuation bit still set after the 10th byte.
	return 0, ErrVarintTooLong
}

// AppendVarint appends the base-128 encoding of v to buf.
func AppendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// VarintSize returns the number of bytes needed to encode the given varint.
func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
