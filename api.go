// Package pb2json converts arbitrary protobuf payloads to JSON without
// a schema. Field names are unknown, so the output object is keyed by
// decimal field number, and length-delimited values are classified as
// nested message, string or opaque bytes by content heuristics. The
// result is best-effort: whether a field was repeated or singular, or a
// varint was zig-zag encoded, is not recoverable from the wire format
// alone.
package pb2json

import (
	"errors"
	"fmt"

	"github.com/traceflight/protobuf-2-json/jsonval"
	"github.com/traceflight/protobuf-2-json/wire"
)

// ErrNotMessage is returned by Parse when the heuristics judge that the
// input does not represent a plausible protobuf message. It is a
// confidence judgment, not a fault; callers should test for it with
// errors.Is the way they would sql.ErrNoRows.
var ErrNotMessage = errors.New("pb2json: data does not look like a protobuf message")

// DefaultMaxDepth is the recursion ceiling applied when Parser.MaxDepth
// is zero. Nesting that deep never occurs in payloads produced by a
// real encoder; the ceiling guards against crafted input.
const DefaultMaxDepth = 64

// BytesEncoding selects how a length-delimited value that is not a
// nested message and not rendered as plain text is encoded into JSON.
type BytesEncoding int

const (
	// EncodingAuto encodes valid UTF-8 as a string and anything else as
	// base64. This is the default.
	EncodingAuto BytesEncoding = iota

	// EncodingBase64 always encodes as a standard base64 string.
	EncodingBase64

	// EncodingByteArray encodes as a JSON array of byte values.
	EncodingByteArray

	// EncodingStringLossy decodes as UTF-8 with invalid sequences
	// replaced by U+FFFD.
	EncodingStringLossy

	// EncodingHex encodes as a lowercase hex string.
	EncodingHex
)

func (e BytesEncoding) String() string {
	switch e {
	case EncodingAuto:
		return "auto"
	case EncodingBase64:
		return "base64"
	case EncodingByteArray:
		return "bytearray"
	case EncodingStringLossy:
		return "stringlossy"
	case EncodingHex:
		return "hex"
	}
	return fmt.Sprintf("BytesEncoding(%d)", int(e))
}

// ParseBytesEncoding parses the textual name of a BytesEncoding as it
// appears in flags and config files.
func ParseBytesEncoding(s string) (BytesEncoding, error) {
	switch s {
	case "auto", "":
		return EncodingAuto, nil
	case "base64":
		return EncodingBase64, nil
	case "bytearray":
		return EncodingByteArray, nil
	case "stringlossy":
		return EncodingStringLossy, nil
	case "hex":
		return EncodingHex, nil
	}
	return 0, fmt.Errorf("unknown bytes encoding %q", s)
}

// Parser converts protobuf payloads to JSON. The zero value is ready to
// use. Parsers are stateless between calls and safe for concurrent use.
type Parser struct {
	// BytesEncoding selects the leaf encoding for opaque byte values.
	BytesEncoding BytesEncoding

	// MaxDepth caps the nesting depth the projector will descend into;
	// zero means DefaultMaxDepth. A candidate past the ceiling is
	// rejected and its bytes fall back to leaf encoding.
	MaxDepth int
}

// New creates a parser with default settings.
func New() *Parser {
	return &Parser{}
}

// WithBytesEncoding creates a parser with the given bytes encoding.
func WithBytesEncoding(enc BytesEncoding) *Parser {
	return &Parser{BytesEncoding: enc}
}

// Parse decodes data as a protobuf message and projects it into a JSON
// object keyed by decimal field number. It returns ErrNotMessage when
// the input cannot plausibly be represented as a message. Parse never
// panics, whatever the input.
func (p *Parser) Parse(data []byte) (*jsonval.Object, error) {
	obj, oc := p.project(data, 0)
	if oc == outcomeRejected {
		return nil, ErrNotMessage
	}
	return obj, nil
}

// ParseOnce performs a single-layer wire decode of data without any
// heuristic interpretation. It is a total function: every input yields
// a Message.
func (p *Parser) ParseOnce(data []byte) wire.Message {
	return wire.DecodeOnce(data)
}
