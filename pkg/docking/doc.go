// Package docking provides the docking-tree layout engine: a binary tree
// whose shape represents the on-screen arrangement of split panel regions in
// an IDE-like workspace.
//
// # Overview
//
// Each tree node holds a [Group]: either a pure structural split
// ([KindLayout]), an ordered sequence of docked panels ([KindDock]), the
// fixed main area ([KindCenter]), or a window-edge anchor ([KindEdge]). The
// in-order flattening of the tree is the left-to-right visual order of the
// layout, available through [TreeNode.Flatten].
//
// A [Docker] owns every dock and group in a layout and is the only way to
// construct them. The tree operations call back into it when they need to
// materialize a new segment: a structural wrapper during an occupied-slot
// insertion, the merged group of [TreeNode.MergeLeafParts], or the parts of
// a [TreeNode.Repartition].
//
// # Mutation Operations
//
// The drag-and-drop layer drives the tree exclusively through the operation
// set on [TreeNode]:
//
//   - [TreeNode.AddChildLeft] / [TreeNode.AddChildRight]: slot insertion
//     with wrap-on-occupied semantics
//   - [TreeNode.AddChildBefore] / [TreeNode.AddChildAfter]: insertion
//     relative to an existing child
//   - [TreeNode.RemoveChild]: detach a child without structural cleanup
//   - [TreeNode.MergeLeafParts]: collapse two adjacent leaf dock groups
//   - [TreeNode.AssimilateChild]: remove a redundant single-child level
//   - [TreeNode.Repartition]: split a dock group around a pivot dock
//
// Every operation either succeeds atomically or fails with one of the
// package's sentinel errors before touching the tree; there are no partial
// mutations. Orientation is only ever applied to a parent that ends up with
// two children, and edge groups keep their construction-time orientation
// through every operation.
//
// # Debugging
//
// [TreeNode.String] renders the tree in a compact nested notation, and
// [ToDOT] / [RenderSVG] produce Graphviz output of the tree shape.
// [CheckTree] verifies the structural invariants of a subtree and is used by
// tests and the CLI.
//
// The tree is a shared mutable structure with no internal locking; the
// owning layer serializes all mutating calls.
package docking
