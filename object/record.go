// Package object models keyed records with property descriptors, a parent
// link used for inherited lookups and an extensibility flag.
//
// Records are not safe for concurrent mutation.
package object

import (
	"golang.org/x/exp/slices"
)

var base = &Record{props: map[string]Property{}, extensible: true}

// Base returns the root of every parent chain. It has no parent, is always the same record and is never
// copied.
func Base() *Record {
	return base
}

// Record is a keyed value whose lookups fall back to its parent.
type Record struct {
	keys       []string
	props      map[string]Property
	parent     *Record
	extensible bool
}

// New returns an empty extensible record whose parent is Base.
func New() *Record {
	return Create(base)
}

// Create returns a record with the given parent (nil for none) and exactly the given own properties.
// Later fields with the same key replace earlier ones. Extensibility and configurability rules are not
// consulted.
func Create(parent *Record, fields ...Field) *Record {
	r := &Record{
		keys:       make([]string, 0, len(fields)),
		props:      make(map[string]Property, len(fields)),
		parent:     parent,
		extensible: true,
	}
	for _, f := range fields {
		r.put(f.Key, f.Property)
	}
	return r
}

// FromMap returns a record whose parent is Base holding one data property per entry, sorted by key.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	r := New()
	for _, k := range keys {
		r.put(k, Data(m[k]))
	}
	return r
}

func (r *Record) put(key string, p Property) {
	if _, ok := r.props[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.props[key] = p
}

// Parent returns the record consulted for keys r does not own, or nil.
func (r *Record) Parent() *Record {
	return r.parent
}

// Extensible reports whether new properties may be added to r.
func (r *Record) Extensible() bool {
	return r.extensible
}

// PreventExtensions marks r as non-extensible. It cannot be undone.
func (r *Record) PreventExtensions() {
	r.extensible = false
}

// Freeze prevents extensions and makes every own property non-configurable and, for data
// properties, non-writable.
func (r *Record) Freeze() {
	r.extensible = false
	for key, p := range r.props {
		p.Configurable = false
		if !p.IsAccessor() {
			p.Writable = false
		}
		r.props[key] = p
	}
}

// IsFrozen reports whether r is non-extensible and every own property is fixed.
func (r *Record) IsFrozen() bool {
	if r.extensible {
		return false
	}
	for _, p := range r.props {
		if p.Configurable || (!p.IsAccessor() && p.Writable) {
			return false
		}
	}
	return true
}

// Len returns the number of own properties, enumerable or not.
func (r *Record) Len() int {
	return len(r.keys)
}

// Own returns the own property stored under key.
func (r *Record) Own(key string) (Property, bool) {
	p, ok := r.props[key]
	return p, ok
}

// HasOwn reports whether r owns key.
func (r *Record) HasOwn(key string) bool {
	_, ok := r.props[key]
	return ok
}

// Has reports whether key is owned by r or any of its ancestors.
func (r *Record) Has(key string) bool {
	for cur := r; cur != nil; cur = cur.parent {
		if cur.HasOwn(key) {
			return true
		}
	}
	return false
}

// OwnKeys returns every own key, enumerable or not, in insertion order.
func (r *Record) OwnKeys() []string {
	return slices.Clone(r.keys)
}

// Keys returns the own enumerable keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.keys))
	for _, key := range r.keys {
		if r.props[key].Enumerable {
			keys = append(keys, key)
		}
	}
	return keys
}

// Fields returns a copy of every own property in insertion order.
func (r *Record) Fields() []Field {
	fields := make([]Field, 0, len(r.keys))
	for _, key := range r.keys {
		fields = append(fields, Field{Key: key, Property: r.props[key]})
	}
	return fields
}

// Get looks key up on r and then along its parent chain. Accessor properties are read through their
// getter with r as receiver; an accessor without getter reads as nil.
func (r *Record) Get(key string) (any, bool) {
	for cur := r; cur != nil; cur = cur.parent {
		p, ok := cur.props[key]
		if !ok {
			continue
		}
		if !p.IsAccessor() {
			return p.Value, true
		}
		if p.Get == nil {
			return nil, true
		}
		return p.Get(r), true
	}
	return nil, false
}

// Put assigns v to key.
//
// An own writable data property is updated in place. An accessor found on r or an ancestor has its
// setter called with r as receiver. A read-only property found on r or an ancestor rejects the
// assignment. Otherwise a new data property is added to r.
func (r *Record) Put(key string, v any) error {
	for cur := r; cur != nil; cur = cur.parent {
		p, ok := cur.props[key]
		if !ok {
			continue
		}
		if p.IsAccessor() {
			if p.Set == nil {
				return keyError(ErrReadOnly, key)
			}
			p.Set(r, v)
			return nil
		}
		if !p.Writable {
			return keyError(ErrReadOnly, key)
		}
		if cur == r {
			p.Value = v
			r.props[key] = p
			return nil
		}
		break
	}
	if !r.extensible {
		return keyError(ErrNotExtensible, key)
	}
	r.put(key, Data(v))
	return nil
}

// Define adds or replaces the own property key.
//
// A new key requires r to be extensible. A non-configurable property may only be redefined with a
// descriptor that keeps it non-configurable, keeps its enumerability, stays a data property and, if it
// is read-only, keeps the same value and stays read-only. Non-configurable accessors cannot be redefined.
func (r *Record) Define(key string, p Property) error {
	cur, ok := r.props[key]
	if !ok {
		if !r.extensible {
			return keyError(ErrNotExtensible, key)
		}
		r.put(key, p)
		return nil
	}
	if !cur.Configurable && !redefinable(cur, p) {
		return keyError(ErrNotConfigurable, key)
	}
	r.props[key] = p
	return nil
}

func redefinable(cur, p Property) bool {
	if p.Configurable || p.Enumerable != cur.Enumerable {
		return false
	}
	if cur.IsAccessor() || p.IsAccessor() {
		return false
	}
	if cur.Writable {
		return true
	}
	return !p.Writable && sameValue(cur.Value, p.Value)
}

// Delete removes the own property key. Deleting a missing key is a no-op.
func (r *Record) Delete(key string) error {
	p, ok := r.props[key]
	if !ok {
		return nil
	}
	if !p.Configurable {
		return keyError(ErrNotConfigurable, key)
	}
	delete(r.props, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
	return nil
}
