// Package jsonval provides the JSON value model produced by the
// projector: an insertion-ordered object and a plain array. The
// standard map[string]any round-trip through encoding/json would lose
// field order and push uint64 values through float64; marshaling here
// preserves both exactly.
package jsonval

import (
	"encoding/json"

	"github.com/mailru/easyjson/jwriter"
)

// Value is any JSON-representable value held by an Object or Array.
// The projector produces uint64, uint32, string, Array and *Object;
// other Go scalars marshal through encoding/json.
type Value = any

// Array is a JSON array.
type Array []Value

// Object is a JSON object that remembers insertion order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the member keys in insertion order. The slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	return o.keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key, keeping the key's original position if it
// already exists.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Append stores v under key, grouping repeats: a first occurrence is
// stored as-is, a second converts the member into a 2-element array,
// and further occurrences append to it. Encounter order is preserved.
func (o *Object) Append(key string, v Value) {
	existing, ok := o.values[key]
	if !ok {
		o.Set(key, v)
		return
	}

	if arr, ok := existing.(Array); ok {
		o.values[key] = append(arr, v)
		return
	}
	o.values[key] = Array{existing, v}
}

// MarshalJSON implements json.Marshaler with members in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var w jwriter.Writer
	writeObject(&w, o)
	return w.BuildBytes()
}

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) {
	var w jwriter.Writer
	writeArray(&w, a)
	return w.BuildBytes()
}

func writeObject(w *jwriter.Writer, o *Object) {
	w.RawByte('{')
	for i, key := range o.keys {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(key)
		w.RawByte(':')
		writeValue(w, o.values[key])
	}
	w.RawByte('}')
}

func writeArray(w *jwriter.Writer, a Array) {
	w.RawByte('[')
	for i, v := range a {
		if i > 0 {
			w.RawByte(',')
		}
		writeValue(w, v)
	}
	w.RawByte(']')
}

func writeValue(w *jwriter.Writer, v Value) {
	switch t := v.(type) {
	case nil:
		w.RawString("null")
	case *Object:
		writeObject(w, t)
	case Array:
		writeArray(w, t)
	case string:
		w.String(t)
	case uint64:
		w.Uint64(t)
	case uint32:
		w.Uint32(t)
	case bool:
		w.Bool(t)
	default:
		w.Raw(json.Marshal(t))
	}
}
