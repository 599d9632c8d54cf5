package docking

import (
	"errors"

	"github.com/drydock-ui/drydock/pkg/bintree"
)

var (
	// ErrNotAChild is returned when an operation is given a node (or dock)
	// that is not actually a direct child of the receiver. This is an
	// argument error: the caller passed the wrong node.
	ErrNotAChild = errors.New("node is not a child of this node")

	// ErrNoChildren is returned by [TreeNode.AddChildBefore] and
	// [TreeNode.AddChildAfter] when the receiver has no children to insert
	// relative to.
	ErrNoChildren = errors.New("node has no children to insert relative to")

	// ErrCenterPinned is returned when an operation would remove, merge, or
	// assimilate the center segment. The center group permanently occupies
	// its slot.
	ErrCenterPinned = errors.New("center group cannot be detached")

	// ErrEdgePinned is returned by [TreeNode.AssimilateChild] when the child
	// is an edge segment. Edge groups are never collapsed away.
	ErrEdgePinned = errors.New("edge group cannot be assimilated")

	// ErrNilPart is returned by [TreeNode.MergeLeafParts] when either child
	// slot is empty.
	ErrNilPart = errors.New("both child slots must be occupied")

	// ErrPartNotLeaf is returned by [TreeNode.MergeLeafParts] when either
	// child still has substructure. Only terminal segments merge.
	ErrPartNotLeaf = errors.New("both children must be leaf segments")

	// ErrNotLoneChild is returned by [TreeNode.AssimilateChild] when the
	// receiver has two children; only a redundant single-child level can be
	// collapsed.
	ErrNotLoneChild = errors.New("node is not the lone child of this node")

	// ErrNotDockGroup is returned when an operation requires a dock group
	// payload and the node holds some other segment kind.
	ErrNotDockGroup = errors.New("node does not hold a dock group")

	// ErrUnknownDock is returned by [TreeNode.Repartition] when the pivot
	// dock is not contained in the node's dock group. This is an argument
	// error: the caller passed a dock from elsewhere in the layout.
	ErrUnknownDock = errors.New("dock does not belong to this node")
)

// TreeNode is a binary tree node specialized for docking layouts: a
// [bintree.Node] whose payload is a [*Group], extended with the
// invariant-preserving mutation operations a drag-and-drop layer needs.
//
// All base-tree guarantees apply: child slots own their occupants, parent
// pointers are maintained by the setters, and Sibling is derived. On top of
// that the docking operations enforce the segment rules: center groups are
// never detached, edge orientations are never rewritten, and orientations
// are only applied to a parent that actually ends up with two children.
//
// Nodes are created by a [Docker]. TreeNode is not safe for concurrent use;
// the owning UI layer serializes all structural mutations.
type TreeNode bintree.Node[*Group]

func newTreeNode(g *Group) *TreeNode {
	return (*TreeNode)(bintree.New(g))
}

func (n *TreeNode) base() *bintree.Node[*Group] {
	return (*bintree.Node[*Group])(n)
}

// Group returns the segment payload of the node.
func (n *TreeNode) Group() *Group { return n.base().Value() }

// Left returns the left child, or nil.
func (n *TreeNode) Left() *TreeNode { return (*TreeNode)(n.base().Left()) }

// Right returns the right child, or nil.
func (n *TreeNode) Right() *TreeNode { return (*TreeNode)(n.base().Right()) }

// Parent returns the parent node, or nil for a root or detached node.
func (n *TreeNode) Parent() *TreeNode { return (*TreeNode)(n.base().Parent()) }

// Sibling returns the other child of the parent, or nil.
func (n *TreeNode) Sibling() *TreeNode { return (*TreeNode)(n.base().Sibling()) }

// IsLeaf reports whether both child slots are empty.
func (n *TreeNode) IsLeaf() bool { return n.base().IsLeaf() }

// SetLeft assigns the left child slot, with the detach/attach semantics of
// [bintree.Node.SetLeft].
func (n *TreeNode) SetLeft(child *TreeNode) { n.base().SetLeft(child.base()) }

// SetRight assigns the right child slot, with the detach/attach semantics of
// [bintree.Node.SetRight].
func (n *TreeNode) SetRight(child *TreeNode) { n.base().SetRight(child.base()) }

// Flatten returns the segment payloads of the subtree rooted at n in
// left-to-right visual order (in-order traversal).
func (n *TreeNode) Flatten() []*Group {
	return bintree.Flatten(n.base())
}

// Walk visits the subtree rooted at n in left-to-right visual order, calling
// fn for each node until fn returns false.
func (n *TreeNode) Walk(fn func(*TreeNode) bool) {
	var visit func(*TreeNode) bool
	visit = func(m *TreeNode) bool {
		if m == nil {
			return true
		}
		if !visit(m.Left()) {
			return false
		}
		if !fn(m) {
			return false
		}
		return visit(m.Right())
	}
	visit(n)
}

// AddChildLeft inserts child into the left slot of n.
//
// With both slots empty the child simply takes the slot and no orientation
// is applied: orientation only becomes meaningful once the parent has two
// children. With exactly one slot occupied the child takes the left slot —
// sliding the current left occupant over to the free right slot if needed —
// and n's group adopts the desired orientation, except for edge groups
// whose orientation is fixed.
//
// With both slots occupied, a structural wrapper takes over the left slot
// and holds the new child and the displaced occupant side by side, so the
// flattened order becomes [child, old left subtree, n, right subtree]. The
// wrapper adopts the desired orientation when the displaced child is a
// concrete segment; a displaced layout group keeps the wrapper's
// orientation undetermined.
func (n *TreeNode) AddChildLeft(child *TreeNode, o Orientation) {
	left, right := n.Left(), n.Right()
	switch {
	case left == nil && right == nil:
		n.SetLeft(child)
	case left == nil:
		n.SetLeft(child)
		n.Group().SetOrientation(o)
	case right == nil:
		n.SetLeft(child)
		n.SetRight(left)
		n.Group().SetOrientation(o)
	default:
		w := n.newWrapper(left, o)
		n.SetLeft(w)
		w.SetLeft(child)
		w.SetRight(left)
	}
}

// AddChildRight inserts child into the right slot of n. It mirrors
// [TreeNode.AddChildLeft] with the slots swapped: the new child ends up
// after the existing right-side content in flattened order.
func (n *TreeNode) AddChildRight(child *TreeNode, o Orientation) {
	left, right := n.Left(), n.Right()
	switch {
	case left == nil && right == nil:
		n.SetRight(child)
	case right == nil:
		n.SetRight(child)
		n.Group().SetOrientation(o)
	case left == nil:
		n.SetRight(child)
		n.SetLeft(right)
		n.Group().SetOrientation(o)
	default:
		w := n.newWrapper(right, o)
		n.SetRight(w)
		w.SetLeft(right)
		w.SetRight(child)
	}
}

// AddChildBefore inserts child immediately before sibling in flattened
// order, at the same structural depth. sibling must currently occupy one of
// n's child slots.
//
// Returns ErrNoChildren when n has no children, or ErrNotAChild when sibling
// occupies neither slot. The slot-occupancy and orientation rules are those
// of [TreeNode.AddChildLeft]: a free other slot is used directly, otherwise
// the sibling's slot is wrapped so the new child stays adjacent to it.
func (n *TreeNode) AddChildBefore(child, sibling *TreeNode, o Orientation) error {
	left, right := n.Left(), n.Right()
	if left == nil && right == nil {
		return ErrNoChildren
	}
	switch {
	case sibling != nil && sibling == left:
		n.AddChildLeft(child, o)
	case sibling != nil && sibling == right:
		if left == nil {
			n.SetLeft(child)
			n.Group().SetOrientation(o)
		} else {
			w := n.newWrapper(sibling, o)
			n.SetRight(w)
			w.SetLeft(child)
			w.SetRight(sibling)
		}
	default:
		return ErrNotAChild
	}
	return nil
}

// AddChildAfter inserts child immediately after sibling in flattened order,
// at the same structural depth. It mirrors [TreeNode.AddChildBefore].
func (n *TreeNode) AddChildAfter(child, sibling *TreeNode, o Orientation) error {
	left, right := n.Left(), n.Right()
	if left == nil && right == nil {
		return ErrNoChildren
	}
	switch {
	case sibling != nil && sibling == right:
		n.AddChildRight(child, o)
	case sibling != nil && sibling == left:
		if right == nil {
			n.SetRight(child)
			n.Group().SetOrientation(o)
		} else {
			w := n.newWrapper(sibling, o)
			n.SetLeft(w)
			w.SetLeft(sibling)
			w.SetRight(child)
		}
	default:
		return ErrNotAChild
	}
	return nil
}

// newWrapper materializes the structural node that receives a displaced
// child during an occupied-slot insertion. The wrapper takes the requested
// orientation only when the displaced child is a concrete segment; displacing
// a layout group leaves the wrapper undetermined.
func (n *TreeNode) newWrapper(displaced *TreeNode, o Orientation) *TreeNode {
	wo := Undetermined
	if displaced.Group().Kind() != KindLayout {
		wo = o
	}
	return n.Group().docker.NewLayoutNode(wo)
}
