// Package wire decodes the protobuf wire format without a schema. It
// turns a byte buffer into an ordered sequence of (field number,
// wire-typed value) pairs plus any trailing garbage, borrowing spans
// from the input buffer rather than copying. Decoding is total: no
// input, however malformed, produces a panic or an error from
// DecodeOnce.
package wire

// Decoder is a cursor over a caller-owned buffer. It holds no other
// state; decoding the same buffer twice yields identical results.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a decoder positioned at the start of data. The
// decoder reads from data for its whole lifetime and never mutates it.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data}
}

// Remaining returns the unconsumed tail of the buffer.
func (d *Decoder) Remaining() []byte {
	return d.buf[d.pos:]
}

// DecodeOnce performs a single-layer decode of data. Every byte of the
// input is accounted for: it is consumed by one of the returned fields
// or captured as Garbage. Nested messages are not descended into;
// their bytes surface as ValueBytes fields.
func DecodeOnce(data []byte) Message {
	var msg Message
	d := NewDecoder(data)

	for d.pos < len(d.buf) {
		tag, err := d.DecodeVarint()
		if err != nil {
			// The tag itself is undecodable; everything left is garbage.
			msg.Garbage = d.Remaining()
			break
		}

		number, wireType := ParseTag(Tag(tag))
		msg.Fields = append(msg.Fields, Field{
			Number: number,
			Value:  d.decodeValue(wireType),
		})
	}

	return msg
}

// decodeValue consumes the bytes of one value of the given wire type.
// An unrecognized wire type or a truncated value consumes the rest of
// the buffer: there is no reliable way to tell where such a value ends.
func (d *Decoder) decodeValue(wireType WireType) FieldValue {
	switch wireType {
	case WireVarint:
		v, err := d.DecodeVarint()
		if err != nil {
			return d.incomplete(wireType)
		}
		return FieldValue{Kind: ValueVarint, Wire: wireType, Varint: v}

	case WireFixed64:
		v, ok := d.decodeFixed64()
		if !ok {
			return d.incomplete(wireType)
		}
		return FieldValue{Kind: ValueFixed64, Wire: wireType, Fixed64: v}

	case WireBytes:
		b, ok := d.decodeBytes()
		if !ok {
			return d.incomplete(wireType)
		}
		return FieldValue{Kind: ValueBytes, Wire: wireType, Bytes: b}

	case WireFixed32:
		v, ok := d.decodeFixed32()
		if !ok {
			return d.incomplete(wireType)
		}
		return FieldValue{Kind: ValueFixed32, Wire: wireType, Fixed32: v}

	default:
		rest := d.Remaining()
		d.pos = len(d.buf)
		return FieldValue{Kind: ValueInvalid, Wire: wireType, Bytes: rest}
	}
}

// incomplete records the unconsumed remainder on a truncated value and
// consumes it.
func (d *Decoder) incomplete(wireType WireType) FieldValue {
	rest := d.Remaining()
	d.pos = len(d.buf)
	return FieldValue{Kind: ValueIncomplete, Wire: wireType, Bytes: rest}
}
