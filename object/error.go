package object

import (
	"errors"
	"fmt"
)

var (
	// ErrNotExtensible is returned when adding a property to a non-extensible record.
	ErrNotExtensible = errors.New("object: record is not extensible")

	// ErrNotConfigurable is returned when deleting or incompatibly redefining a non-configurable property.
	ErrNotConfigurable = errors.New("object: property is not configurable")

	// ErrReadOnly is returned when assigning to a non-writable property or an accessor without setter.
	ErrReadOnly = errors.New("object: property is read-only")
)

func keyError(err error, key string) error {
	return fmt.Errorf("%w: %q", err, key)
}
