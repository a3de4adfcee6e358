package nav

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortKey ranks sibling nodes. Build one with ByField, ByFunc or ByPath.
type SortKey interface {
	// key returns the ranking value for node, or nil when it has none.
	key(node *Node) any
}

type fieldKey struct {
	sel *selector
}

func (k fieldKey) key(node *Node) any {
	if node.Record == nil {
		return nil
	}
	return k.sel.get(node.Record)
}

// ByField ranks nodes by a record field. A name beginning with "$" is a
// JSONPath expression; the first match is used. Branch nodes rank last.
func ByField(name string) SortKey {
	return fieldKey{sel: newSelector(name)}
}

type funcKey func(Record, *Node) any

func (k funcKey) key(node *Node) any {
	return k(node.Record, node)
}

// ByFunc ranks nodes by fn(record, node). record is nil for branches.
func ByFunc(fn func(rec Record, node *Node) any) SortKey {
	return funcKey(fn)
}

type pathKey struct{}

func (pathKey) key(node *Node) any {
	return node.Path
}

// ByPath ranks nodes by their reconstructed path.
func ByPath() SortKey {
	return pathKey{}
}

// SortNodes stably reorders siblings at every level by key. Nodes without a
// key sort after every node that has one; ties keep their current order.
func SortNodes(tree []*Node, by SortKey) []*Node {
	sorted := sortBy(tree, by)
	for _, n := range sorted {
		if len(n.Children) > 0 {
			n.Children = SortNodes(n.Children, by)
		}
	}
	return sorted
}

type decorated struct {
	node  *Node
	index int
	key   any
}

func sortBy(nodes []*Node, by SortKey) []*Node {
	mapped := make([]decorated, len(nodes))
	for i, n := range nodes {
		mapped[i] = decorated{node: n, index: i, key: by.key(n)}
	}
	sort.Slice(mapped, func(i, j int) bool {
		if c := compareKeys(mapped[i].key, mapped[j].key); c != 0 {
			return c < 0
		}
		return mapped[i].index < mapped[j].index
	})
	out := make([]*Node, len(mapped))
	for i, d := range mapped {
		out[i] = d.node
	}
	return out
}

// Key classes, in ranking order. Keys of different classes never compare by
// value, which keeps the ordering transitive.
const (
	classNumber = iota
	classString
	classBool
	classTime
	classOther
	classNil
)

func keyClass(v any) int {
	if v == nil {
		return classNil
	}
	if _, ok := toFloat(v); ok {
		return classNumber
	}
	switch v.(type) {
	case string:
		return classString
	case bool:
		return classBool
	case time.Time:
		return classTime
	}
	return classOther
}

// compareKeys orders ranking values by class (numbers, strings, bools,
// times, anything else, nil last), then within a class: numbers
// numerically, strings lexically, false before true, times chronologically
// and everything else by printed form.
func compareKeys(a, b any) int {
	ca, cb := keyClass(a), keyClass(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	switch ca {
	case classNil:
		return 0
	case classNumber:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return cmp.Compare(fa, fb)
	case classString:
		return strings.Compare(a.(string), b.(string))
	case classBool:
		return cmpBool(a.(bool), b.(bool))
	case classTime:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
