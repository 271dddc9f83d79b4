package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types. Codes outside the
// recognized set are carried through as their raw 3-bit value so the
// caller can report them.
type WireType uint8

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // fixed64, sfixed64, double
	WireBytes   WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // fixed32, sfixed32, float
)

// Recognized reports whether wt is one of the four wire types this
// decoder knows how to size. Codes 3 and 4 (the deprecated group
// markers) and 6, 7 are not recognized.
func (wt WireType) Recognized() bool {
	switch wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	}
	return false
}

// Tag represents a protobuf field tag (field number + wire type).
type Tag uint64

// MakeTag creates a tag from field number and wire type.
func MakeTag(fieldNumber uint64, wireType WireType) Tag {
	return Tag(fieldNumber<<3 | uint64(wireType)&0x7)
}

// ParseTag parses a tag into field number and wire type. Field numbers
// come straight from the upper tag bits: without a schema there is
// nothing to validate them against, so arbitrarily large numbers and
// the reserved 19000-19999 range all pass through.
func ParseTag(tag Tag) (uint64, WireType) {
	return uint64(tag >> 3), WireType(tag & 0x7)
}
