package docking

import "strings"

// String returns a human-readable representation of the subtree rooted at n.
//
// The representation nests child slots in parentheses after the node's own
// segment, with "·" marking an empty slot next to an occupied one:
//
//	edge:h(dock{files} layout:v(dock{main} dock{log}))
//
// Leaf nodes render as their segment alone. String is meant for debugging
// and test output, not for persisting layouts.
func (n *TreeNode) String() string {
	if n == nil {
		return "(empty)"
	}
	var b strings.Builder
	n.writeString(&b)
	return b.String()
}

func (n *TreeNode) writeString(b *strings.Builder) {
	b.WriteString(n.Group().String())
	if n.IsLeaf() {
		return
	}
	b.WriteString("(")
	writeSlot(b, n.Left())
	b.WriteString(" ")
	writeSlot(b, n.Right())
	b.WriteString(")")
}

func writeSlot(b *strings.Builder, n *TreeNode) {
	if n == nil {
		b.WriteString("·")
		return
	}
	n.writeString(b)
}
