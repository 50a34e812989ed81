package vectree

import "fmt"

// Subtree is a non-owning view bounding traversal to the descendants of
// the node at its anchor position. Its lifetime is tied to the tree it was
// created from: any insert or erase on the tree invalidates the view.
type Subtree[V any] struct {
	tree   *Tree[V]
	anchor int
}

// SubtreeAt returns a view over the descendants of the node at pos. The
// anchor itself is not part of the view.
func (t *Tree[V]) SubtreeAt(pos int) Subtree[V] {
	if pos < 0 || pos >= len(t.nodes) {
		panic(fmt.Sprintf("SubtreeAt %d out of range [0,%d)", pos, len(t.nodes)))
	}
	return Subtree[V]{tree: t, anchor: pos}
}

// Anchor returns the position of the node whose descendants the view
// bounds.
func (s Subtree[V]) Anchor() int { return s.anchor }

// Cursor starts a fresh preorder traversal of the subtree. Every call
// returns an independent cursor positioned on the anchor's first child,
// or an already-terminal cursor when the anchor is a leaf.
func (s Subtree[V]) Cursor() Cursor[V] {
	open := uint(0)
	if s.tree.nodes[s.anchor].HasChildren() {
		open = 1
	}
	return Cursor[V]{tree: s.tree, pos: s.anchor + 1, open: open}
}

// Count walks the subtree and returns the number of descendants.
func (s Subtree[V]) Count() int {
	n := 0
	for c := s.Cursor(); !c.Done(); c.Next() {
		n++
	}
	return n
}

// Each invokes f for every descendant in preorder, stopping early if f
// returns false.
func (s Subtree[V]) Each(f func(pos int, n Node[V]) bool) {
	for c := s.Cursor(); !c.Done(); c.Next() {
		if !f(c.Pos(), c.Node()) {
			return
		}
	}
}

// Cursor walks one subtree forward, in preorder. It keeps no state beyond
// its position and the count of still-open levels, so advancing never
// needs the absolute bound of the sequence: the traversal ends the moment
// a node's drift closes the anchor's scope.
//
// A cursor is consumed by iterating; re-walking the subtree takes a new
// cursor from the same view.
type Cursor[V any] struct {
	tree *Tree[V]
	pos  int
	open uint
}

// Done reports whether the traversal has left the subtree. All terminal
// cursors are equivalent, regardless of position.
func (c *Cursor[V]) Done() bool { return c.open == 0 }

// Pos returns the current node's position in the tree's sequence. Only
// valid while Done is false.
func (c *Cursor[V]) Pos() int { return c.pos }

// Node returns the current node. Only valid while Done is false.
func (c *Cursor[V]) Node() Node[V] { return c.tree.nodes[c.pos] }

// Level returns the current depth below the anchor, 1 being the anchor's
// direct children.
func (c *Cursor[V]) Level() uint { return c.open }

// Next advances to the next descendant in preorder. If the current node's
// drift closes the anchor's scope, the cursor becomes terminal. Must not
// be called on a terminal cursor.
func (c *Cursor[V]) Next() {
	c.open++
	if c.open < c.tree.nodes[c.pos].Drift {
		c.open = 0
	} else {
		c.open -= c.tree.nodes[c.pos].Drift
	}
	c.pos++
}
