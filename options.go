package clone

import "log/slog"

// Policy controls how deep a clone reaches.
// The zero value copies record property values but shares array elements and parents.
type Policy struct {
	// IncludeInheritance clones the parent chain of records up to, but excluding, object.Base.
	IncludeInheritance bool
	// IncludeArrays clones sequence elements instead of sharing them.
	IncludeArrays bool
}

type options struct {
	Policy
	Logger   *slog.Logger
	MaxDepth uint
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(o *options)

// IncludeInheritance clones parent chains.
func IncludeInheritance() Option {
	return func(o *options) {
		o.IncludeInheritance = true
	}
}

// IncludeArrays clones sequence elements.
func IncludeArrays() Option {
	return func(o *options) {
		o.IncludeArrays = true
	}
}

// WithPolicy replaces the whole policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.Policy = p
	}
}

// Logger sets a logger for clone tracing. Nothing is logged by default.
func Logger(l *slog.Logger) Option {
	return func(o *options) {
		o.Logger = l
	}
}

// MaxDepth bounds how many nested composite values a clone may descend into.
// Zero means unbounded.
func MaxDepth(n uint) Option {
	return func(o *options) {
		o.MaxDepth = n
	}
}
