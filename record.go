package clone

import (
	"reflect"

	"github.com/go-leo/clone/object"
)

const parentLabel = "(parent)"

// cloneRecord copies src with every own property, enumerable or not. Data property values are cloned,
// accessor pairs are shared and never invoked. The parent is shared unless IncludeInheritance is set,
// in which case every ancestor below object.Base is copied as well.
func (g *cloneContext) cloneRecord(src *object.Record) (*object.Record, error) {
	if src == nil {
		return nil, nil
	}
	tgt, err := g.copyRecord(src)
	if err != nil {
		return nil, err
	}
	mirrorExtensible(src, tgt, g.options.IncludeInheritance)
	return tgt, nil
}

func (g *cloneContext) copyRecord(src *object.Record) (*object.Record, error) {
	fields := src.Fields()
	for i := range fields {
		if fields[i].IsAccessor() {
			continue
		}
		g.push(fields[i].Key)
		v, err := g.clone(fields[i].Value)
		g.pop()
		if err != nil {
			return nil, err
		}
		fields[i].Value = v
	}
	parent, err := g.cloneParent(src.Parent())
	if err != nil {
		return nil, err
	}
	return object.Create(parent, fields...), nil
}

func (g *cloneContext) cloneParent(parent *object.Record) (*object.Record, error) {
	// object.Base is compared by identity and always shared.
	if !g.options.IncludeInheritance || parent == nil || parent == object.Base() {
		return parent, nil
	}
	g.push(parentLabel)
	defer g.pop()
	err := g.forward(recordType)
	defer g.back()
	if err != nil {
		return nil, err
	}
	if l := g.options.Logger; l != nil {
		l.Debug("clone", "path", g.path(), "category", Record.String(), "type", recordType.String())
	}
	return g.copyRecord(parent)
}

// mirrorExtensible makes tgt non-extensible when src is. With inheritance the two parent chains are
// walked in step; ancestors shared by both chains are left alone.
func mirrorExtensible(src, tgt *object.Record, inheritance bool) {
	for src != nil && tgt != nil {
		if src != tgt && !src.Extensible() {
			tgt.PreventExtensions()
		}
		if !inheritance {
			return
		}
		src, tgt = src.Parent(), tgt.Parent()
	}
}

func (g *cloneContext) clonePlainRecord(src map[string]any) (map[string]any, error) {
	if src == nil {
		return nil, nil
	}
	tgt := make(map[string]any, len(src))
	for key, v := range src {
		g.push(key)
		dup, err := g.clone(v)
		g.pop()
		if err != nil {
			return nil, err
		}
		tgt[key] = dup
	}
	return tgt, nil
}

// cloneMap copies any string-keyed map into a new map of the same type.
func (g *cloneContext) cloneMap(srcVal reflect.Value) (any, error) {
	if srcVal.IsNil() {
		return srcVal.Interface(), nil
	}
	tgtVal := reflect.MakeMapWithSize(srcVal.Type(), srcVal.Len())
	iter := srcVal.MapRange()
	for iter.Next() {
		key, elem := iter.Key(), iter.Value()
		g.push(key.String())
		dup, err := g.clone(elem.Interface())
		g.pop()
		if err != nil {
			return nil, err
		}
		tgtVal.SetMapIndex(key, fit(dup, elem))
	}
	return tgtVal.Interface(), nil
}
