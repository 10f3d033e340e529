package clone

import (
	"fmt"
	"reflect"
	"strings"
)

type Code int

const (
	TooDeep Code = 1
)

// ErrTooDeep matches, via errors.Is, any Error raised because MaxDepth was exceeded.
var ErrTooDeep = &Error{Code: TooDeep}

type Error struct {
	Code     Code
	Labels   []string
	Type     reflect.Type
	MaxDepth uint
}

func (e *Error) Error() string {
	labels := strings.Join(e.Labels, ".")
	switch e.Code {
	case TooDeep:
		if e.Type == nil {
			return "clone: too deep error"
		}
		return fmt.Sprintf("clone: too deep error, %s, type(%s) exceeds max depth %d", labels, e.Type.String(), e.MaxDepth)
	default:
		return ""
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newTooDeepError(labels []string, srcType reflect.Type, maxDepth uint) error {
	return &Error{Code: TooDeep, Labels: labels, Type: srcType, MaxDepth: maxDepth}
}
