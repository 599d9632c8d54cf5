package docking

import "slices"

// RemoveChild detaches child from n. child must currently occupy one of n's
// child slots; otherwise ErrNotAChild is returned. The center segment is
// never removed via this path and yields ErrCenterPinned.
//
// RemoveChild performs no structural cleanup of its own: collapsing the
// now-redundant level is the caller's job, via [TreeNode.MergeLeafParts] or
// [TreeNode.AssimilateChild].
func (n *TreeNode) RemoveChild(child *TreeNode) error {
	left, right := n.Left(), n.Right()
	if child == nil || (child != left && child != right) {
		return ErrNotAChild
	}
	if child.Group().Kind() == KindCenter {
		return ErrCenterPinned
	}
	if child == left {
		n.SetLeft(nil)
	} else {
		n.SetRight(nil)
	}
	return nil
}

// MergeLeafParts collapses n's two leaf children into a single dock group.
//
// Both child slots must be occupied (ErrNilPart), both children must be
// leaves (ErrPartNotLeaf), neither may hold the center segment
// (ErrCenterPinned), and both must hold dock groups (ErrNotDockGroup).
//
// On success the left child survives in its slot with a freshly constructed
// dock group holding the left docks followed by the right docks, and the
// right slot is cleared, so the survivor has no sibling. The merged group
// inherits n's orientation when it holds more than one dock; a single-dock
// result stays undetermined.
func (n *TreeNode) MergeLeafParts() error {
	left, right := n.Left(), n.Right()
	if left == nil || right == nil {
		return ErrNilPart
	}
	if !left.IsLeaf() || !right.IsLeaf() {
		return ErrPartNotLeaf
	}
	lg, rg := left.Group(), right.Group()
	if lg.Kind() == KindCenter || rg.Kind() == KindCenter {
		return ErrCenterPinned
	}
	if lg.Kind() != KindDock || rg.Kind() != KindDock {
		return ErrNotDockGroup
	}

	docks := append(slices.Clone(lg.docks), rg.docks...)
	o := Undetermined
	if len(docks) > 1 {
		o = n.Group().Orientation()
	}
	merged := n.Group().docker.NewDockGroup(o, docks...)

	n.SetRight(nil)
	left.base().SetValue(merged)
	return nil
}

// AssimilateChild collapses the redundant level formed by child being the
// sole child of n.
//
// child must occupy one of n's slots (ErrNotAChild) and the other slot must
// be empty (ErrNotLoneChild). Center and edge segments are never assimilated
// (ErrCenterPinned, ErrEdgePinned).
//
// If child has substructure, n adopts child's children as its own and takes
// over child's orientation: n assumes child's role in the tree and child is
// discarded. If child is a leaf, its payload is absorbed directly into n and
// both of n's slots become empty.
func (n *TreeNode) AssimilateChild(child *TreeNode) error {
	left, right := n.Left(), n.Right()
	if child == nil || (child != left && child != right) {
		return ErrNotAChild
	}
	if left != nil && right != nil {
		return ErrNotLoneChild
	}
	switch child.Group().Kind() {
	case KindCenter:
		return ErrCenterPinned
	case KindEdge:
		return ErrEdgePinned
	}

	if child.IsLeaf() {
		n.base().SetValue(child.Group())
		n.SetLeft(nil)
		n.SetRight(nil)
		return nil
	}

	cl, cr := child.Left(), child.Right()
	n.Group().SetOrientation(child.Group().Orientation())
	child.SetLeft(nil)
	child.SetRight(nil)
	n.SetLeft(cl)
	n.SetRight(cr)
	return nil
}
