/*
Package vectree stores an ordered rooted tree in one contiguous, growable
slice of (drift, data) pairs.  There are no parent or child pointers and
no per-node heap allocation: each node carries a single unsigned "drift"
that records, relative to the previous node in sequence, how many ancestor
scopes close before it attaches.  Drift 0 marks a node whose first child
follows immediately; drift k>0 marks a leaf after which k-1 levels close.

Uses

- Trees that must live in one memory block, for bulk copy or cache
locality

- Append-biased construction of document/AST-like structures in preorder

- Verbatim serialization: the encoding is already flat and
self-describing, so a tree can be persisted and content-addressed as a
single blob

Encoding

The sequence is the depth-first preorder of the tree.  The drifts of all
nodes sum to the node count, a non-empty tree always ends on a leaf, and
every prefix ending on a leaf is itself a valid tree.  Every mutating
operation preserves these invariants; violating an operation's
precondition (erasing a non-leaf with EraseLeaf, drifting past the root)
is a programming error and panics rather than silently correcting itself.

Traversal of one node's descendants goes through a Subtree view, whose
Cursor stops the instant a drift closes the anchor's scope, without ever
needing the absolute bound of the sequence.

Concurrency

A Tree assumes exclusive access during any mutating call.  Positions,
Subtree views and Cursors follow contiguous-container semantics: any
insert or erase invalidates them, and the caller is responsible for not
using them across a mutation.  Clone gives an independent copy for
sharing between goroutines.

Inspiration

The drift encoding follows the vector_tree structure by HicknHack
Software (https://github.com/hicknhack-software/vector_tree), which trades
pointer chasing for integer distances kept consistent under every append,
insert and erase.
*/
package vectree
