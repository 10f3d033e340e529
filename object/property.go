package object

import "reflect"

// Getter reads an accessor property. this is the record the lookup started from.
type Getter func(this *Record) any

// Setter writes an accessor property. this is the record the assignment targeted.
type Setter func(this *Record, v any)

// Property describes one own property of a Record.
// When Get or Set is set the property is an accessor property and Value and Writable are ignored.
type Property struct {
	Value        any
	Get          Getter
	Set          Setter
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// IsAccessor reports whether p is an accessor property.
func (p Property) IsAccessor() bool {
	return p.Get != nil || p.Set != nil
}

// Data returns a writable, enumerable, configurable data property holding v.
func Data(v any) Property {
	return Property{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

// Accessor returns an enumerable, configurable accessor property.
func Accessor(get Getter, set Setter) Property {
	return Property{Get: get, Set: set, Enumerable: true, Configurable: true}
}

// Field is a keyed Property.
type Field struct {
	Key string
	Property
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}
