package clone

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// cloneContext carries one clone call: its options, how deep it has descended and the key path to the
// value being copied.
type cloneContext struct {
	level   uint
	labels  []string
	options *options
}

func (g *cloneContext) forward(srcType reflect.Type) error {
	g.level++
	if limit := g.options.MaxDepth; limit > 0 && g.level > limit {
		err := newTooDeepError(slices.Clone(g.labels), srcType, limit)
		if l := g.options.Logger; l != nil {
			l.Warn("clone too deep", "path", g.path(), "type", srcType.String(), "max_depth", limit)
		}
		return err
	}
	return nil
}

func (g *cloneContext) back() {
	g.level--
}

func (g *cloneContext) push(label string) {
	g.labels = append(g.labels, label)
}

func (g *cloneContext) pop() {
	g.labels = g.labels[:len(g.labels)-1]
}

func (g *cloneContext) path() string {
	return strings.Join(g.labels, ".")
}

var cloneContextPool sync.Pool

func newCloneContext(o *options) *cloneContext {
	if v := cloneContextPool.Get(); v != nil {
		g := v.(*cloneContext)
		g.level = 0
		g.labels = g.labels[:0]
		g.options = o
		return g
	}
	return &cloneContext{options: o}
}

func freeCloneContext(g *cloneContext) {
	g.options = nil
	cloneContextPool.Put(g)
}
