package docking

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the subtree rooted at n.
//
// The output is a complete digraph suitable for the dot tool or for
// [RenderSVG]. Node representation:
//
//   - layout groups: ellipse labeled with the orientation
//   - dock groups: rounded box listing the dock titles
//   - center: doubled box labeled "center"
//   - edge groups: plain box labeled with the orientation
//
// Left children are connected with a solid edge, right children with the
// same; slot order is preserved by Graphviz's left-to-right child layout.
func ToDOT(n *TreeNode) string {
	var buf bytes.Buffer
	buf.WriteString("digraph DockingTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if n != nil {
		writeDOTNode(&buf, n, 0)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *TreeNode, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	g := n.Group()
	switch g.Kind() {
	case KindLayout:
		fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", nodeID, g.Orientation().String())
	case KindDock:
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"filled,rounded\"];\n", nodeID, g.String())
	case KindCenter:
		fmt.Fprintf(buf, "  %s [label=\"center\", shape=box, peripheries=2];\n", nodeID)
	case KindEdge:
		fmt.Fprintf(buf, "  %s [label=%q, shape=box];\n", nodeID, "edge "+g.Orientation().String())
	}

	for _, child := range []*TreeNode{n.Left(), n.Right()} {
		if child == nil {
			continue
		}
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(buf, child, next)
	}
	return next
}

// RenderSVG renders the subtree rooted at n as an SVG image.
//
// RenderSVG generates the DOT form via [ToDOT], then uses Graphviz to render
// it. The returned bytes are a complete SVG document. Errors are returned if
// Graphviz cannot initialize, the DOT is malformed, or rendering fails, each
// wrapped with %w for errors.Is/As.
func RenderSVG(ctx context.Context, n *TreeNode) ([]byte, error) {
	dot := ToDOT(n)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
