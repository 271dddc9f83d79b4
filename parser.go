package pb2json

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/traceflight/protobuf-2-json/jsonval"
	"github.com/traceflight/protobuf-2-json/wire"
)

// Field numbers 19000-19999 are reserved by the protobuf specification
// and essentially never appear in real payloads. Seeing one is a strong
// signal that bytes parsed by accident rather than by structure.
const (
	reservedFieldMin = 19000
	reservedFieldMax = 19999
)

// outcome is the per-level result of a projection attempt.
type outcome int

const (
	// outcomeRejected: the bytes were judged not to represent a
	// plausible message at this nesting level.
	outcomeRejected outcome = iota

	// outcomePartial: top level only; a malformed field stopped the
	// scan early and the object holds the fields seen before it.
	outcomePartial

	// outcomeFull: every field projected cleanly.
	outcomeFull
)

// project recursively reinterprets data as a protobuf message. depth 0
// is the top-level call; deeper levels apply the stricter
// string-vs-message tie-breaks, since a nested value that reads as
// plain text is more likely a string than a message.
func (p *Parser) project(data []byte, depth int) (*jsonval.Object, outcome) {
	if len(data) == 0 {
		return nil, outcomeRejected
	}

	first := depth == 0

	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth > maxDepth {
		return nil, outcomeRejected
	}

	// Printable text wins the string-vs-message tie outright, before
	// any field parse is attempted.
	validUTF8 := utf8.Valid(data)
	if !first && validUTF8 && !containsControl(data) {
		return nil, outcomeRejected
	}

	msg := wire.DecodeOnce(data)
	if len(msg.Fields) == 0 {
		// An empty field list would render as {}, indistinguishable
		// from nothing parsed.
		return nil, outcomeRejected
	}
	if !first && validUTF8 && (msg.Garbage != nil || anyReserved(msg.Fields)) {
		// Text that happens to contain valid-looking tag bytes parses
		// "by accident"; garbage and reserved field numbers give it
		// away.
		return nil, outcomeRejected
	}

	obj := jsonval.NewObject()
	oc := outcomeFull

scan:
	for _, f := range msg.Fields {
		var v jsonval.Value
		switch f.Value.Kind {
		case wire.ValueVarint:
			v = f.Value.Varint
		case wire.ValueFixed64:
			v = f.Value.Fixed64
		case wire.ValueFixed32:
			v = f.Value.Fixed32
		case wire.ValueBytes:
			if nested, sub := p.project(f.Value.Bytes, depth+1); sub != outcomeRejected {
				v = nested
			} else {
				v = p.encodeBytes(f.Value.Bytes)
			}
		default: // wire.ValueInvalid, wire.ValueIncomplete
			// A malformed field pauses a top-level scan but disqualifies
			// a nested candidate entirely. Asymmetric, and preserved
			// deliberately: callers depend on top-level partial output.
			if !first {
				return nil, outcomeRejected
			}
			oc = outcomePartial
			break scan
		}

		obj.Append(strconv.FormatUint(f.Number, 10), v)
	}

	return obj, oc
}

// encodeBytes produces the JSON leaf for a byte span already judged not
// to be a nested message. Every policy maps every span to some value;
// there is no failure mode.
func (p *Parser) encodeBytes(data []byte) jsonval.Value {
	switch p.BytesEncoding {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(data)
	case EncodingByteArray:
		arr := make(jsonval.Array, len(data))
		for i, b := range data {
			arr[i] = uint64(b)
		}
		return arr
	case EncodingStringLossy:
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	case EncodingHex:
		return hex.EncodeToString(data)
	default: // EncodingAuto
		if utf8.Valid(data) {
			return string(data)
		}
		return base64.StdEncoding.EncodeToString(data)
	}
}

// containsControl reports whether data, assumed valid UTF-8, contains
// any control character.
func containsControl(data []byte) bool {
	for _, r := range string(data) {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

func anyReserved(fields []wire.Field) bool {
	for _, f := range fields {
		if f.Number >= reservedFieldMin && f.Number <= reservedFieldMax {
			return true
		}
	}
	return false
}
