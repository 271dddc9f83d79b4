package wire

import (
	"encoding/binary"
)

// DECODER METHODS
//
// Fixed-width values are little-endian on the wire. Without a schema
// there is no way to tell an integer from a float bit pattern, so both
// widths decode to their unsigned integer reading.

// decodeFixed32 decodes a 32-bit fixed-width value, reporting false
// when fewer than 4 bytes remain.
func (d *Decoder) decodeFixed32() (uint32, bool) {
	if d.pos+4 > len(d.buf) {
		return 0, false
	}

	value := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return value, true
}

// decodeFixed64 decodes a 64-bit fixed-width value, reporting false
// when fewer than 8 bytes remain.
func (d *Decoder) decodeFixed64() (uint64, bool) {
	if d.pos+8 > len(d.buf) {
		return 0, false
	}

	value := binary.LittleEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return value, true
}
