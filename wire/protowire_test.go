package wire

import (
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// TestDecodeOnce_AgainstProtowire cross-checks the decoder against the
// reference wire implementation on a well-formed payload.
func TestDecodeOnce_AgainstProtowire(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 150)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendBytes(data, []byte("testing"))
	data = protowire.AppendTag(data, 3, protowire.Fixed32Type)
	data = protowire.AppendFixed32(data, 0xDEADBEEF)
	data = protowire.AppendTag(data, 4, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, math.MaxUint64)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendBytes(data, []byte{0x00, 0xFF})
	data = protowire.AppendTag(data, 16, protowire.VarintType)
	data = protowire.AppendVarint(data, math.MaxUint64)

	msg := DecodeOnce(data)
	if msg.Garbage != nil {
		t.Fatalf("unexpected garbage: %x", msg.Garbage)
	}

	// Walk the same buffer with protowire and compare field by field.
	rest := data
	i := 0
	for len(rest) > 0 {
		num, typ, n := protowire.ConsumeField(rest)
		if n < 0 {
			t.Fatalf("protowire rejected field %d: %v", i, protowire.ParseError(n))
		}
		if i >= len(msg.Fields) {
			t.Fatalf("protowire found more than %d fields", len(msg.Fields))
		}

		f := msg.Fields[i]
		if f.Number != uint64(num) {
			t.Errorf("field %d: number %d, protowire says %d", i, f.Number, num)
		}
		if f.Value.Wire != WireType(typ) {
			t.Errorf("field %d: wire type %d, protowire says %d", i, f.Value.Wire, typ)
		}

		_, _, tagLen := protowire.ConsumeTag(rest)
		body := rest[tagLen:]
		switch typ {
		case protowire.VarintType:
			v, _ := protowire.ConsumeVarint(body)
			if f.Value.Varint != v {
				t.Errorf("field %d: varint %d, protowire says %d", i, f.Value.Varint, v)
			}
		case protowire.Fixed32Type:
			v, _ := protowire.ConsumeFixed32(body)
			if f.Value.Fixed32 != v {
				t.Errorf("field %d: fixed32 %d, protowire says %d", i, f.Value.Fixed32, v)
			}
		case protowire.Fixed64Type:
			v, _ := protowire.ConsumeFixed64(body)
			if f.Value.Fixed64 != v {
				t.Errorf("field %d: fixed64 %d, protowire says %d", i, f.Value.Fixed64, v)
			}
		case protowire.BytesType:
			v, _ := protowire.ConsumeBytes(body)
			if string(f.Value.Bytes) != string(v) {
				t.Errorf("field %d: bytes %x, protowire says %x", i, f.Value.Bytes, v)
			}
		}

		rest = rest[n:]
		i++
	}

	if i != len(msg.Fields) {
		t.Errorf("decoded %d fields, protowire found %d", len(msg.Fields), i)
	}
}
