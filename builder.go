package clone

// Cloner is a reusable clone configuration. It is an immutable value: every chained call returns a
// new Cloner and leaves the receiver untouched, so a Cloner may be shared between goroutines.
//
//	dup := clone.New().IncludeInheritance().And().IncludeArrays().From(v)
type Cloner struct {
	options options
}

// New returns a Cloner configured by opts.
func New(opts ...Option) Cloner {
	var c Cloner
	c.options.apply(opts...)
	return c
}

// IncludeInheritance returns a Cloner that also clones record parents.
func (c Cloner) IncludeInheritance() Cloner {
	c.options.IncludeInheritance = true
	return c
}

// IncludeArrays returns a Cloner that also clones sequence elements.
func (c Cloner) IncludeArrays() Cloner {
	c.options.IncludeArrays = true
	return c
}

// And returns c. It only exists to make chains read naturally.
func (c Cloner) And() Cloner {
	return c
}

func (c Cloner) Policy() Policy {
	return c.options.Policy
}

// From returns a copy of v, see Clone.
func (c Cloner) From(v any) any {
	dup, err := c.TryFrom(v)
	if err != nil {
		panic(err)
	}
	return dup
}

// TryFrom returns a copy of v, see TryClone.
func (c Cloner) TryFrom(v any) (any, error) {
	if passThrough(v) {
		return v, nil
	}
	o := c.options
	return clone(&o, v)
}
