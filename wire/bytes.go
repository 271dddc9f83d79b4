package wire

// decodeBytes decodes a length-delimited payload: a varint length
// prefix followed by that many bytes. The returned slice shares the
// underlying input buffer; nothing is copied. It reports false when
// the length prefix fails to decode or declares more bytes than
// remain. On a short payload the cursor is left just past the length
// prefix, so the remainder is the truncated payload itself.
func (d *Decoder) decodeBytes() ([]byte, bool) {
	length, err := d.DecodeVarint()
	if err != nil {
		return nil, false
	}

	if length > uint64(len(d.buf)-d.pos) {
		return nil, false
	}

	data := d.buf[d.pos : d.pos+int(length)]
	d.pos += int(length)
	return data, true
}
