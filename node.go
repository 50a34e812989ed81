package vectree

// Drift values with fixed structural meaning.
const (
	// DriftChild makes the following node in sequence the first child.
	DriftChild uint = 0
	// DriftSibling attaches the following node at the same level.
	DriftSibling uint = 1
)

// Node is one slot of the flat encoding: a payload plus the drift that ties
// it into the sequence. Drift 0 means the next node in sequence is this
// node's first child; drift k>0 means this node is a leaf and k-1 ancestor
// scopes close before the next node attaches.
type Node[V any] struct {
	Drift uint
	Data  V
}

// IsLeaf reports whether the node has no children.
func (n Node[V]) IsLeaf() bool { return n.Drift != 0 }

// HasChildren reports whether the node is followed by its first child.
func (n Node[V]) HasChildren() bool { return n.Drift == 0 }
