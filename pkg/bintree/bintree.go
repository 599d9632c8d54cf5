// Package bintree provides a generic binary tree node with owned child slots
// and a derived, non-owning parent back-reference.
//
// A [Node] owns its Left and Right children: assigning a node into a slot
// makes this node its parent, and clearing or reassigning a slot detaches the
// previous occupant. The Parent pointer is maintained automatically by
// [Node.SetLeft] and [Node.SetRight] and is only ever used for navigation,
// never for lifetime management. Sibling is derived from Parent on demand and
// never stored.
//
// The package also provides in-order traversal of a subtree via [Flatten] and
// [Walk], which is the canonical way callers observe tree shape and ordering.
//
// Nodes are not safe for concurrent use. Callers mutating overlapping
// subtrees from multiple goroutines must synchronize externally.
package bintree

// Node is a binary tree node holding a value of type T.
//
// Create nodes with [New]. The zero value is usable but holds the zero value
// of T, which is rarely what callers want.
//
// A node has at most one parent. Callers are responsible for not creating
// cycles (a node must never become its own ancestor); the setters do not
// check for this.
type Node[T any] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// New creates a node holding value, with no children and no parent.
func New[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the value stored in the node. The tree shape is not
// affected. This is used by domain layers that collapse a child's payload
// into its parent.
func (n *Node[T]) SetValue(value T) { n.value = value }

// Left returns the left child, or nil if the slot is empty.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil if the slot is empty.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// SetLeft assigns child to the left slot.
//
// Assigning the current occupant is a no-op with no observable side effect.
// Otherwise the previous occupant, if any, is detached (its parent becomes
// nil) before child is attached. Passing nil clears the slot without
// attaching anything.
func (n *Node[T]) SetLeft(child *Node[T]) {
	if n.left == child {
		return
	}
	if n.left != nil {
		n.left.parent = nil
	}
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// SetRight assigns child to the right slot. It behaves exactly like
// [Node.SetLeft] with the slots swapped.
func (n *Node[T]) SetRight(child *Node[T]) {
	if n.right == child {
		return
	}
	if n.right != nil {
		n.right.parent = nil
	}
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// Sibling returns the other child of this node's parent, or nil if the node
// has no parent or the other slot is empty. The sibling relation is derived,
// never stored: for any two siblings a and b, a.Sibling() == b and
// b.Sibling() == a.
func (n *Node[T]) Sibling() *Node[T] {
	if n.parent == nil {
		return nil
	}
	if n.parent.left == n {
		return n.parent.right
	}
	return n.parent.left
}

// IsLeaf reports whether both child slots are empty.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }

// Flatten returns the values of the subtree rooted at root in in-order
// sequence (left subtree, node, right subtree), which corresponds to
// left-to-right visual order. A nil root yields an empty slice; a childless
// root yields a single-element slice.
func Flatten[T any](root *Node[T]) []T {
	var out []T
	Walk(root, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Walk visits the values of the subtree rooted at root in in-order sequence,
// calling fn for each value until fn returns false or the subtree is
// exhausted. Walk reports whether the traversal ran to completion.
//
// Use Walk instead of [Flatten] to stop early or to avoid allocating the
// full sequence.
func Walk[T any](root *Node[T], fn func(T) bool) bool {
	if root == nil {
		return true
	}
	if !Walk(root.left, fn) {
		return false
	}
	if !fn(root.value) {
		return false
	}
	return Walk(root.right, fn)
}
