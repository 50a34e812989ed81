package vectree

import (
	"fmt"
	"reflect"
	"strings"
)

// Walk visits every node in preorder together with its depth, the root
// being depth 0. Iteration stops early if f returns false.
func (t *Tree[V]) Walk(f func(pos int, level uint, n Node[V]) bool) {
	level := uint(0)
	for i, n := range t.nodes {
		if !f(i, level, n) {
			return
		}
		level = level + 1 - n.Drift
	}
}

// Equal reports whether two trees have identical structure and data. Data
// is compared with reflect.DeepEqual.
func (t *Tree[V]) Equal(other *Tree[V]) bool {
	if len(t.nodes) != len(other.nodes) {
		return false
	}
	for i := range t.nodes {
		if t.nodes[i].Drift != other.nodes[i].Drift {
			return false
		}
		if !reflect.DeepEqual(t.nodes[i].Data, other.nodes[i].Data) {
			return false
		}
	}
	return true
}

// String renders the tree one node per line, children braced below their
// parent.
func (t *Tree[V]) String() string {
	var b strings.Builder
	level := uint(0)
	for _, n := range t.nodes {
		b.WriteString(strings.Repeat("   ", int(level)))
		fmt.Fprintf(&b, "%v", n.Data)
		if n.HasChildren() {
			b.WriteString(" {\n")
			level++
			continue
		}
		b.WriteString("\n")
		for k := uint(1); k < n.Drift; k++ {
			level--
			b.WriteString(strings.Repeat("   ", int(level)))
			b.WriteString("}\n")
		}
	}
	return b.String()
}
