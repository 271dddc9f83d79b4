package pb2json_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	pb2json "github.com/traceflight/protobuf-2-json"
)

// Example demonstrates schemaless conversion of a protobuf payload.
func ExampleParser_Parse() {
	data, _ := hex.DecodeString("0d1c0000001203596f751a024d65202b2a0a0a066162633132331200")

	parser := pb2json.New()
	obj, err := parser.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(obj)
	fmt.Println(string(out))
	// Output: {"1":28,"2":"You","3":"Me","4":43,"5":{"1":"abc123","2":""}}
}

// Opaque bytes can be surfaced as raw byte values instead of strings.
func ExampleWithBytesEncoding() {
	data, _ := hex.DecodeString("4a050001020304")

	parser := pb2json.WithBytesEncoding(pb2json.EncodingByteArray)
	obj, err := parser.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(obj)
	fmt.Println(string(out))
	// Output: {"9":[0,1,2,3,4]}
}

// ParseOnce exposes the raw single-layer decode for wire-level
// inspection.
func ExampleParser_ParseOnce() {
	data, _ := hex.DecodeString("082a1203596f75")

	msg := pb2json.New().ParseOnce(data)
	for _, f := range msg.Fields {
		fmt.Printf("field %d: %s\n", f.Number, f.Value.Kind)
	}
	// Output:
	// field 1: varint
	// field 2: bytes
}
