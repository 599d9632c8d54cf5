package docking

import "slices"

// Repartition splits n's dock group around the given pivot dock.
//
// n must hold a dock group (ErrNotDockGroup) and relative must be one of its
// docks (ErrUnknownDock). The group's docks are redistributed into up to
// three parts: the docks strictly before the pivot, the pivot itself, and
// the docks strictly after it. The pivot always gets its own fresh dock
// group — the anchor segment — with the desired orientation, which is
// returned so the caller can immediately dock a dragged panel next to it.
//
// The before and after parts, when present, become dock groups that carry
// the original orientation of n's group when they hold more than one dock
// and stay undetermined otherwise. n's own orientation is never changed by
// the split. When both a before and an after part exist the tree grows one
// level: the before part takes the left slot and a structural wrapper
// (carrying the original orientation) holds the anchor and the after part,
// so the flattened dock order is exactly the original sequence.
//
// After the split n's group no longer holds docks directly; they live in
// the new child segments.
func (n *TreeNode) Repartition(relative *Dock, o Orientation) (*TreeNode, error) {
	g := n.Group()
	if g.Kind() != KindDock {
		return nil, ErrNotDockGroup
	}
	idx := slices.Index(g.docks, relative)
	if idx < 0 {
		return nil, ErrUnknownDock
	}

	d := g.docker
	orig := g.Orientation()
	before := slices.Clone(g.docks[:idx])
	after := slices.Clone(g.docks[idx+1:])
	g.docks = nil

	anchor := d.NewDockNode(o, relative)
	switch {
	case len(before) == 0 && len(after) == 0:
		n.SetLeft(anchor)
	case len(before) == 0:
		n.SetLeft(anchor)
		n.SetRight(d.NewDockNode(partOrientation(after, orig), after...))
	case len(after) == 0:
		n.SetLeft(d.NewDockNode(partOrientation(before, orig), before...))
		n.SetRight(anchor)
	default:
		w := d.NewLayoutNode(orig)
		n.SetLeft(d.NewDockNode(partOrientation(before, orig), before...))
		n.SetRight(w)
		w.SetLeft(anchor)
		w.SetRight(d.NewDockNode(partOrientation(after, orig), after...))
	}
	return anchor, nil
}

// partOrientation returns the orientation for a non-anchor part of a split:
// the original group orientation for multi-dock parts, undetermined for a
// single dock.
func partOrientation(docks []*Dock, orig Orientation) Orientation {
	if len(docks) < 2 {
		return Undetermined
	}
	return orig
}
