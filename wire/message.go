package wire

// ValueKind discriminates the variants of a FieldValue.
type ValueKind uint8

const (
	// ValueVarint is a varint value (wire type 0).
	ValueVarint ValueKind = iota

	// ValueFixed64 is a 64-bit little-endian value (wire type 1).
	ValueFixed64

	// ValueBytes is a length-delimited value (wire type 2).
	ValueBytes

	// ValueFixed32 is a 32-bit little-endian value (wire type 5).
	ValueFixed32

	// ValueInvalid is a value whose wire type code is not recognized.
	// The size of such a value cannot be determined, so the rest of the
	// current message's bytes are consumed by this single field.
	ValueInvalid

	// ValueIncomplete is a value whose declared width or length exceeds
	// the bytes remaining in the payload.
	ValueIncomplete
)

func (k ValueKind) String() string {
	switch k {
	case ValueVarint:
		return "varint"
	case ValueFixed64:
		return "fixed64"
	case ValueBytes:
		return "bytes"
	case ValueFixed32:
		return "fixed32"
	case ValueInvalid:
		return "invalid"
	case ValueIncomplete:
		return "incomplete"
	}
	return "unknown"
}

// FieldValue is a decoded protobuf value. Which fields are meaningful
// depends on Kind:
//
//   - ValueVarint: Varint
//   - ValueFixed64: Fixed64
//   - ValueFixed32: Fixed32
//   - ValueBytes: Bytes, the payload span
//   - ValueInvalid: Wire, the unrecognized raw code, and Bytes, the
//     unconsumed remainder of the buffer
//   - ValueIncomplete: Wire, the wire type being decoded, and Bytes,
//     the unconsumed remainder of the buffer
//
// Spans reference the buffer handed to the decoder; they are never
// copies.
type FieldValue struct {
	Kind    ValueKind
	Wire    WireType
	Varint  uint64
	Fixed64 uint64
	Fixed32 uint32
	Bytes   []byte
}

// Field is a single decoded protobuf field.
type Field struct {
	// Number is the field number, taken from the upper bits of the tag
	// with no range validation.
	Number uint64

	// Value is the decoded value.
	Value FieldValue
}

// Message is the result of a single-layer decode.
type Message struct {
	// Fields holds the decoded fields in encounter order.
	Fields []Field

	// Garbage holds trailing bytes whose field tag itself failed to
	// decode. As opposed to a field with a ValueInvalid value, garbage
	// has no field number and so cannot be placed into Fields.
	Garbage []byte
}
