package clone

import "reflect"

// Category is how Clone treats a value.
type Category int

const (
	// Primitive values are returned unchanged: scalars, strings, funcs, channels, byte slices, errors,
	// maps whose key is not a string, structs and pointers to anything not listed below.
	Primitive Category = iota
	// Timestamp values are time.Time, *time.Time and *timestamppb.Timestamp.
	Timestamp
	// Sequence values are slices, except byte slices, and arrays.
	Sequence
	// Record values are *object.Record and maps keyed by a string kind, named map types included.
	Record
)

var categoryNames = [...]string{
	Primitive: "primitive",
	Timestamp: "timestamp",
	Sequence:  "sequence",
	Record:    "record",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Classify returns the category of v. Every value has exactly one.
func Classify(v any) Category {
	if v == nil {
		return Primitive
	}
	return typeCategory(reflect.TypeOf(v))
}

func typeCategory(t reflect.Type) Category {
	switch t {
	case recordType, plainRecordType:
		return Record
	case timeType, timePtrType, timestampPBType:
		return Timestamp
	}
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Primitive
		}
		return Sequence
	case reflect.Array:
		return Sequence
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return Record
		}
		return Primitive
	default:
		return Primitive
	}
}
