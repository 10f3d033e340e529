// Package clone duplicates values so that the copy is equal to the original but shares none of the
// mutable state the active Policy promises to copy.
//
// Values are sorted into four categories, see Classify. Primitives are returned as they are. Timestamps,
// sequences and records are rebuilt: record property values are always cloned, sequence elements only
// with IncludeArrays, and record parents only with IncludeInheritance.
//
// The input must not contain reference cycles: there is no visited set, so a cyclic graph recurses until
// the stack is exhausted. MaxDepth turns that into an error for callers that cannot vouch for their input.
package clone

// Clone returns a copy of v.
//
// Clone only fails when MaxDepth is configured and exceeded, in which case it panics with an *Error.
// Use TryClone to get the error instead.
func Clone(v any, opts ...Option) any {
	dup, err := TryClone(v, opts...)
	if err != nil {
		panic(err)
	}
	return dup
}

// TryClone is Clone returning the depth error instead of panicking.
func TryClone(v any, opts ...Option) (any, error) {
	if passThrough(v) {
		return v, nil
	}
	return clone(new(options).apply(opts...), v)
}

// Of is Clone for callers that know the type. If the copy has a different type, which only a Copier
// can cause, v is returned.
func Of[T any](v T, opts ...Option) T {
	if dup, ok := Clone(v, opts...).(T); ok {
		return dup
	}
	return v
}

func clone(o *options, v any) (any, error) {
	g := newCloneContext(o)
	defer freeCloneContext(g)
	return g.clone(v)
}
