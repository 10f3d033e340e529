package clone

import (
	"reflect"
	"strconv"
	"time"

	"github.com/go-leo/clone/object"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// clone routes v to the copier of its category.
func (g *cloneContext) clone(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if dup, ok := selfCopy(v); ok {
		return dup, nil
	}
	srcType := reflect.TypeOf(v)
	category := typeCategory(srcType)
	switch category {
	case Primitive:
		return v, nil
	case Timestamp:
		return cloneTimestamp(v), nil
	}

	err := g.forward(srcType)
	defer g.back()
	if err != nil {
		return nil, err
	}
	if l := g.options.Logger; l != nil {
		l.Debug("clone", "path", g.path(), "category", category.String(), "type", srcType.String())
	}

	switch src := v.(type) {
	case *object.Record:
		return g.cloneRecord(src)
	case map[string]any:
		return g.clonePlainRecord(src)
	case []any:
		return g.cloneAnySlice(src)
	}
	if category == Record {
		return g.cloneMap(reflect.ValueOf(v))
	}
	return g.cloneSequence(reflect.ValueOf(v))
}

// selfCopy duplicates values that know how to copy themselves.
func selfCopy(v any) (any, bool) {
	switch src := v.(type) {
	case *object.Record, *timestamppb.Timestamp:
		return nil, false
	case Copier:
		if isNil(reflect.ValueOf(src)) {
			return v, true
		}
		return src.DeepCopy(), true
	case proto.Message:
		return proto.Clone(src), true
	default:
		return nil, false
	}
}

func canSelfCopy(v any) bool {
	switch v.(type) {
	case Copier, proto.Message:
		return true
	default:
		return false
	}
}

// passThrough reports whether Clone would return v itself.
func passThrough(v any) bool {
	return v == nil || (!canSelfCopy(v) && typeCategory(reflect.TypeOf(v)) == Primitive)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

func cloneTimestamp(v any) any {
	switch src := v.(type) {
	case *time.Time:
		if src == nil {
			return src
		}
		t := *src
		return &t
	case *timestamppb.Timestamp:
		return proto.Clone(src)
	default:
		// time.Time is a value, the copy made by passing it around is already independent.
		return v
	}
}

func (g *cloneContext) cloneAnySlice(src []any) ([]any, error) {
	if src == nil {
		return nil, nil
	}
	tgt := make([]any, len(src), cap(src))
	if !g.options.IncludeArrays {
		copy(tgt, src)
		return tgt, nil
	}
	for i, elem := range src {
		g.push(strconv.Itoa(i))
		dup, err := g.clone(elem)
		g.pop()
		if err != nil {
			return nil, err
		}
		tgt[i] = dup
	}
	return tgt, nil
}

func (g *cloneContext) cloneSequence(srcVal reflect.Value) (any, error) {
	var tgtVal reflect.Value
	if srcVal.Kind() == reflect.Array {
		tgtVal = reflect.New(srcVal.Type()).Elem()
		tgtVal.Set(srcVal)
	} else {
		if srcVal.IsNil() {
			return srcVal.Interface(), nil
		}
		tgtVal = reflect.MakeSlice(srcVal.Type(), srcVal.Len(), srcVal.Cap())
		reflect.Copy(tgtVal, srcVal)
	}
	if !g.options.IncludeArrays {
		return tgtVal.Interface(), nil
	}
	for i := 0; i < srcVal.Len(); i++ {
		g.push(strconv.Itoa(i))
		dup, err := g.clone(srcVal.Index(i).Interface())
		g.pop()
		if err != nil {
			return nil, err
		}
		elem := tgtVal.Index(i)
		elem.Set(fit(dup, elem))
	}
	return tgtVal.Interface(), nil
}

// fit converts dup to the type of src. A copy whose type does not fit keeps src, shared.
func fit(dup any, src reflect.Value) reflect.Value {
	if dup == nil {
		return reflect.Zero(src.Type())
	}
	dupVal := reflect.ValueOf(dup)
	if dupVal.Type().AssignableTo(src.Type()) {
		return dupVal
	}
	return src
}
