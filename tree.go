package vectree

import "fmt"

// Tree stores an ordered rooted tree in a single contiguous slice of
// (drift, data) pairs, children following their parent in depth-first
// preorder.
//
// Invariants, maintained by every operation:
//
// - the drifts of all nodes sum to the node count
//
// - a non-empty tree always ends on a leaf
//
// - every prefix ending on a leaf is itself a valid encoding
//
// Positions are plain indices into the sequence and follow the usual
// contiguous-container rules: any insert or erase invalidates previously
// obtained positions, Subtree views and Cursors.
type Tree[V any] struct {
	nodes []Node[V]
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// FromNodes builds a tree over an existing encoding, for example one
// produced by Nodes on another tree. The slice is handed to the tree and
// must not be modified by the caller afterwards. Returns an error if the
// encoding violates the drift invariants.
func FromNodes[V any](nodes []Node[V]) (*Tree[V], error) {
	if err := checkEncoding(nodes); err != nil {
		return nil, err
	}
	return &Tree[V]{nodes: nodes}, nil
}

// checkEncoding verifies the drift invariants: no node may close more
// scopes than its predecessors opened, and the drifts must sum to the node
// count (which also forces the last node to be a leaf).
func checkEncoding[V any](nodes []Node[V]) error {
	sum := uint(0)
	for i, n := range nodes {
		sum += n.Drift
		if sum > uint(i)+1 {
			return fmt.Errorf("node %d: drift %d closes more scopes than are open", i, n.Drift)
		}
	}
	if sum != uint(len(nodes)) {
		return fmt.Errorf("drift sum %d != node count %d", sum, len(nodes))
	}
	return nil
}

// Len returns the number of nodes.
func (t *Tree[V]) Len() int { return len(t.nodes) }

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool { return len(t.nodes) == 0 }

// At returns the node at the given position of the preorder sequence.
func (t *Tree[V]) At(pos int) Node[V] { return t.nodes[pos] }

// Nodes returns the underlying encoding. The slice is borrowed: it must
// not be modified, and it is invalidated by any mutation of the tree.
func (t *Tree[V]) Nodes() []Node[V] { return t.nodes }

// Reserve grows the underlying capacity to hold at least n nodes without
// further allocation.
func (t *Tree[V]) Reserve(n int) {
	if cap(t.nodes) >= n {
		return
	}
	grown := make([]Node[V], len(t.nodes), n)
	copy(grown, t.nodes)
	t.nodes = grown
}

// Clear removes all nodes, keeping capacity.
func (t *Tree[V]) Clear() {
	t.nodes = t.nodes[:0]
}

// Clone returns a copy sharing no storage with the original.
func (t *Tree[V]) Clone() *Tree[V] {
	cp := make([]Node[V], len(t.nodes))
	copy(cp, t.nodes)
	return &Tree[V]{nodes: cp}
}

// PushRoot inserts data as the new root; the entire existing sequence
// becomes its descendants. Use this for the first node.
// O(n).
func (t *Tree[V]) PushRoot(data V) {
	t.insertAt(0, Node[V]{Drift: DriftChild, Data: data})
	t.nodes[len(t.nodes)-1].Drift++
}

// PushBackDrifted appends data as the new last node, attached backDrift
// levels above the current last node. The tree must be non-empty, and
// backDrift must not reach past the root.
// O(1) amortized.
func (t *Tree[V]) PushBackDrifted(data V, backDrift uint) {
	if len(t.nodes) == 0 {
		panic("PushBackDrifted on empty tree; PushRoot first")
	}
	last := &t.nodes[len(t.nodes)-1]
	if backDrift >= 1+last.Drift {
		panic(fmt.Sprintf("back drift %d reaches past the root (last drift %d)", backDrift, last.Drift))
	}
	drift := 1 + last.Drift - backDrift
	last.Drift = backDrift
	t.nodes = append(t.nodes, Node[V]{Drift: drift, Data: data})
}

// PushBackChild appends data as the first child of the current last node.
func (t *Tree[V]) PushBackChild(data V) {
	t.PushBackDrifted(data, DriftChild)
}

// PushBackSibling appends data as the next sibling of the current last node.
func (t *Tree[V]) PushBackSibling(data V) {
	t.PushBackDrifted(data, DriftSibling)
}

// PushBackLevel appends data at the given depth, the root being depth 0.
// The tree must be non-empty and the depth must not exceed the current
// last node's depth.
// O(1) amortized.
func (t *Tree[V]) PushBackLevel(data V, level uint) {
	if len(t.nodes) == 0 {
		panic("PushBackLevel on empty tree; PushRoot first")
	}
	last := &t.nodes[len(t.nodes)-1]
	if last.Drift <= level {
		panic(fmt.Sprintf("level %d is below the last node (drift %d)", level, last.Drift))
	}
	last.Drift -= level
	t.nodes = append(t.nodes, Node[V]{Drift: 1 + level, Data: data})
}

// PopBack removes the last node, restoring the drift of the node before
// it. The tree must have more than one node; the final node is dropped
// with Clear.
// O(1).
func (t *Tree[V]) PopBack() {
	if len(t.nodes) < 2 {
		panic("PopBack needs a preceding node to fold the removed drift into")
	}
	drift := t.nodes[len(t.nodes)-1].Drift - 1
	t.nodes = t.nodes[:len(t.nodes)-1]
	t.nodes[len(t.nodes)-1].Drift += drift
}

// InsertFirstChild inserts data immediately after pos as its first child.
// The prior first child of pos, if any, becomes the new node's next
// sibling. Returns the new child's position.
// O(n-pos).
func (t *Tree[V]) InsertFirstChild(pos int, data V) int {
	drift := 1 + t.nodes[pos].Drift
	t.nodes[pos].Drift = DriftChild
	t.insertAt(pos+1, Node[V]{Drift: drift, Data: data})
	return pos + 1
}

// InsertChildTree inserts a whole encoded tree as the new first child of
// pos, along with its own subtree. The sub slice must be a valid encoding
// on its own (FromNodes would accept it) and must not alias this tree's
// storage; it is copied in. Returns the position of the last inserted
// node, or pos+1 unchanged when sub is empty.
// O(n+m).
func (t *Tree[V]) InsertChildTree(pos int, sub []Node[V]) int {
	if len(sub) == 0 {
		return pos + 1
	}
	t.insertRangeAt(pos+1, sub)
	drift := 1 + t.nodes[pos].Drift
	t.nodes[pos].Drift = DriftChild
	// Re-accumulate drift across the inserted span so the node after the
	// span attaches at the level it used to.
	next := pos + 1
	for remaining := len(sub); remaining > 1; remaining-- {
		drift = drift + 1 - t.nodes[next].Drift
		next++
	}
	t.nodes[next].Drift = drift
	return next
}

// InsertSibling inserts data immediately before pos, at the same level, as
// a left sibling. Returns the new node's position.
// O(n-pos).
func (t *Tree[V]) InsertSibling(pos int, data V) int {
	t.insertAt(pos, Node[V]{Drift: DriftSibling, Data: data})
	return pos
}

// EraseLeaf removes the leaf at pos, folding its drift into the preceding
// node. pos must name a leaf other than the first node of the sequence.
// O(n-pos).
func (t *Tree[V]) EraseLeaf(pos int) {
	n := t.nodes[pos]
	if !n.IsLeaf() {
		panic(fmt.Sprintf("EraseLeaf at %d: node has children", pos))
	}
	if pos == 0 {
		panic("EraseLeaf cannot remove the first node; use Clear")
	}
	t.nodes[pos-1].Drift += n.Drift - 1
	t.nodes = append(t.nodes[:pos], t.nodes[pos+1:]...)
}

// EraseSubtree removes every descendant of the view's anchor, leaving the
// anchor itself in place as a leaf. The anchor's drift is recomputed from
// the last removed node.
// O(n-pos).
func (t *Tree[V]) EraseSubtree(st Subtree[V]) {
	if st.tree != t {
		panic("EraseSubtree with a view into a different tree")
	}
	c := st.Cursor()
	begin := c.pos
	level := c.open
	for !c.Done() {
		level = c.open
		c.Next()
	}
	end := c.pos
	t.nodes[st.anchor].Drift = t.nodes[end-1].Drift - level
	t.nodes = append(t.nodes[:begin], t.nodes[end:]...)
}

func (t *Tree[V]) insertAt(pos int, n Node[V]) {
	t.nodes = append(t.nodes, Node[V]{})
	copy(t.nodes[pos+1:], t.nodes[pos:])
	t.nodes[pos] = n
}

func (t *Tree[V]) insertRangeAt(pos int, sub []Node[V]) {
	t.nodes = append(t.nodes, sub...)
	copy(t.nodes[pos+len(sub):], t.nodes[pos:])
	copy(t.nodes[pos:], sub)
}
