package object

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the own enumerable data properties of r in insertion order.
// Accessors are skipped without being invoked, as are function values. Parents are not encoded.
// A nil record encodes as null.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	for _, key := range r.keys {
		p := r.props[key]
		if !p.Enumerable || p.IsAccessor() || isFunc(p.Value) {
			continue
		}
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(key)
		stream.WriteVal(p.Value)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// String returns the JSON view of r.
func (r *Record) String() string {
	if r == nil {
		return "null"
	}
	data, err := r.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
