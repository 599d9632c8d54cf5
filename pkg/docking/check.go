package docking

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGroup is returned by [CheckTree] when a node has no payload.
	// Every node must be constructed through a Docker with a group.
	ErrNilGroup = errors.New("node has no group")

	// ErrBrokenParentLink is returned by [CheckTree] when a child's parent
	// pointer does not point back at the node owning its slot. This
	// indicates tree corruption outside the provided operations.
	ErrBrokenParentLink = errors.New("child parent pointer does not match owner")

	// ErrStructuralDocks is returned by [CheckTree] when a non-dock group
	// holds docks.
	ErrStructuralDocks = errors.New("non-dock group holds docks")
)

// CheckTree verifies the structural invariants of the subtree rooted at
// root: every node has a group, every occupied child slot has a matching
// parent back-pointer, and only dock groups hold docks. It returns the first
// violation found, wrapped with the offending node's debug form, or nil.
//
// CheckTree is intended for tests and debug tooling; the mutation operations
// maintain these invariants on their own.
func CheckTree(root *TreeNode) error {
	if root == nil {
		return nil
	}
	g := root.Group()
	if g == nil {
		return ErrNilGroup
	}
	if g.Kind() != KindDock && len(g.docks) > 0 {
		return fmt.Errorf("%s: %w", g, ErrStructuralDocks)
	}
	for _, child := range []*TreeNode{root.Left(), root.Right()} {
		if child == nil {
			continue
		}
		if child.Parent() != root {
			return fmt.Errorf("%s: %w", g, ErrBrokenParentLink)
		}
		if err := CheckTree(child); err != nil {
			return err
		}
	}
	return nil
}
