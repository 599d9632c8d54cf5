package docking

import (
	"errors"
	"slices"
	"testing"
)

func TestRemoveChild(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Horizontal)
	left := d.NewDockNode(Undetermined, d.NewDock("a"))
	right := d.NewDockNode(Undetermined, d.NewDock("b"))
	root.SetLeft(left)
	root.SetRight(right)

	if err := root.RemoveChild(left); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if root.Left() != nil {
		t.Error("left slot should be empty after removal")
	}
	if left.Parent() != nil {
		t.Error("removed child should be detached")
	}
	if root.Right() != right {
		t.Error("removal must not touch the other slot")
	}
}

func TestRemoveChild_NotAChild(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Undetermined)
	stranger := d.NewDockNode(Undetermined, d.NewDock("x"))

	if err := root.RemoveChild(stranger); !errors.Is(err, ErrNotAChild) {
		t.Errorf("RemoveChild(stranger) = %v, want ErrNotAChild", err)
	}

	// A grandchild is not a direct child either.
	mid := d.NewLayoutNode(Undetermined)
	leaf := d.NewDockNode(Undetermined, d.NewDock("y"))
	root.SetLeft(mid)
	mid.SetLeft(leaf)
	if err := root.RemoveChild(leaf); !errors.Is(err, ErrNotAChild) {
		t.Errorf("RemoveChild(grandchild) = %v, want ErrNotAChild", err)
	}
}

func TestRemoveChild_CenterIsPinned(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Undetermined)
	center := d.NewCenterNode()
	root.SetLeft(center)

	if err := root.RemoveChild(center); !errors.Is(err, ErrCenterPinned) {
		t.Errorf("RemoveChild(center) = %v, want ErrCenterPinned", err)
	}
	if root.Left() != center {
		t.Error("failed removal must not mutate the tree")
	}
}

func TestMergeLeafParts(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Horizontal)
	left := d.NewDockNode(Undetermined, d.NewDock("a"))
	right := d.NewDockNode(Vertical, d.NewDock("b"), d.NewDock("c"))
	root.SetLeft(left)
	root.SetRight(right)

	if err := root.MergeLeafParts(); err != nil {
		t.Fatalf("MergeLeafParts: %v", err)
	}

	survivor := root.Left()
	if survivor == nil || root.Right() != nil {
		t.Fatal("left child should survive alone")
	}
	if survivor.Sibling() != nil {
		t.Error("survivor should have no sibling")
	}

	g := survivor.Group()
	if g.DockCount() != 3 {
		t.Fatalf("merged dock count = %d, want 3", g.DockCount())
	}
	titles := dockTitles([]*Group{g})
	if !slices.Equal(titles, []string{"a", "b", "c"}) {
		t.Errorf("merged dock order = %v, want [a b c]", titles)
	}
	if got := g.Orientation(); got != Horizontal {
		t.Errorf("merged orientation = %v, want the parent's horizontal", got)
	}
}

func TestMergeLeafParts_SingleDockStaysUndetermined(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Vertical)
	root.SetLeft(d.NewDockNode(Undetermined, d.NewDock("only")))
	root.SetRight(d.NewDockNode(Undetermined))

	if err := root.MergeLeafParts(); err != nil {
		t.Fatalf("MergeLeafParts: %v", err)
	}
	g := root.Left().Group()
	if g.DockCount() != 1 {
		t.Fatalf("merged dock count = %d, want 1", g.DockCount())
	}
	if got := g.Orientation(); got != Undetermined {
		t.Errorf("single-dock orientation = %v, want undetermined", got)
	}
}

func TestMergeLeafParts_Errors(t *testing.T) {
	d := NewDocker()

	t.Run("missing part", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		root.SetLeft(d.NewDockNode(Undetermined, d.NewDock("a")))
		if err := root.MergeLeafParts(); !errors.Is(err, ErrNilPart) {
			t.Errorf("MergeLeafParts = %v, want ErrNilPart", err)
		}
	})

	t.Run("non-leaf part", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		inner := d.NewLayoutNode(Vertical)
		inner.SetLeft(d.NewDockNode(Undetermined, d.NewDock("a")))
		root.SetLeft(inner)
		root.SetRight(d.NewDockNode(Undetermined, d.NewDock("b")))
		if err := root.MergeLeafParts(); !errors.Is(err, ErrPartNotLeaf) {
			t.Errorf("MergeLeafParts = %v, want ErrPartNotLeaf", err)
		}
	})

	t.Run("center part", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		root.SetLeft(d.NewCenterNode())
		root.SetRight(d.NewDockNode(Undetermined, d.NewDock("a")))
		if err := root.MergeLeafParts(); !errors.Is(err, ErrCenterPinned) {
			t.Errorf("MergeLeafParts = %v, want ErrCenterPinned", err)
		}
	})

	t.Run("structural part", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		root.SetLeft(d.NewLayoutNode(Undetermined))
		root.SetRight(d.NewDockNode(Undetermined, d.NewDock("a")))
		if err := root.MergeLeafParts(); !errors.Is(err, ErrNotDockGroup) {
			t.Errorf("MergeLeafParts = %v, want ErrNotDockGroup", err)
		}
	})
}

func TestAssimilateChild_AdoptsGrandchildren(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Horizontal)
	mid := d.NewLayoutNode(Vertical)
	a := d.NewDockNode(Undetermined, d.NewDock("a"))
	b := d.NewDockNode(Undetermined, d.NewDock("b"))
	root.SetLeft(mid)
	mid.SetLeft(a)
	mid.SetRight(b)

	if err := root.AssimilateChild(mid); err != nil {
		t.Fatalf("AssimilateChild: %v", err)
	}

	if root.Left() != a || root.Right() != b {
		t.Fatal("root should adopt the grandchildren directly")
	}
	if a.Parent() != root || b.Parent() != root {
		t.Error("adopted children should point at root")
	}
	if mid.Parent() != nil || !mid.IsLeaf() {
		t.Error("assimilated node should be fully detached")
	}
	if got := root.Group().Orientation(); got != Vertical {
		t.Errorf("orientation = %v, want the child's vertical", got)
	}
	if err := CheckTree(root); err != nil {
		t.Errorf("CheckTree: %v", err)
	}
}

func TestAssimilateChild_LeafAbsorbsPayload(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Horizontal)
	leaf := d.NewDockNode(Vertical, d.NewDock("a"), d.NewDock("b"))
	root.SetRight(leaf)

	wantDocks := leaf.Group().DockCount()
	wantOrientation := leaf.Group().Orientation()

	if err := root.AssimilateChild(leaf); err != nil {
		t.Fatalf("AssimilateChild: %v", err)
	}

	if !root.IsLeaf() {
		t.Error("root should become a leaf after absorbing the payload")
	}
	if root.Group() != leaf.Group() {
		t.Error("root should hold the child's group directly")
	}
	if root.Group().DockCount() != wantDocks {
		t.Errorf("dock count = %d, want %d", root.Group().DockCount(), wantDocks)
	}
	if root.Group().Orientation() != wantOrientation {
		t.Errorf("orientation = %v, want %v", root.Group().Orientation(), wantOrientation)
	}
}

func TestAssimilateChild_Errors(t *testing.T) {
	d := NewDocker()

	t.Run("not lone child", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		left := d.NewDockNode(Undetermined, d.NewDock("a"))
		root.SetLeft(left)
		root.SetRight(d.NewDockNode(Undetermined, d.NewDock("b")))
		if err := root.AssimilateChild(left); !errors.Is(err, ErrNotLoneChild) {
			t.Errorf("AssimilateChild = %v, want ErrNotLoneChild", err)
		}
	})

	t.Run("not a child", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		root.SetLeft(d.NewDockNode(Undetermined, d.NewDock("a")))
		stranger := d.NewDockNode(Undetermined, d.NewDock("x"))
		if err := root.AssimilateChild(stranger); !errors.Is(err, ErrNotAChild) {
			t.Errorf("AssimilateChild = %v, want ErrNotAChild", err)
		}
	})

	t.Run("center child", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		center := d.NewCenterNode()
		root.SetLeft(center)
		if err := root.AssimilateChild(center); !errors.Is(err, ErrCenterPinned) {
			t.Errorf("AssimilateChild = %v, want ErrCenterPinned", err)
		}
	})

	t.Run("edge child", func(t *testing.T) {
		root := d.NewLayoutNode(Horizontal)
		edge := d.NewEdgeNode(Vertical)
		root.SetLeft(edge)
		if err := root.AssimilateChild(edge); !errors.Is(err, ErrEdgePinned) {
			t.Errorf("AssimilateChild = %v, want ErrEdgePinned", err)
		}
	})
}

func TestRemoveThenAssimilate_CollapsesLevel(t *testing.T) {
	// The usual closing gesture: remove one side, then collapse the level.
	d := NewDocker()
	root := d.NewLayoutNode(Horizontal)
	mid := d.NewLayoutNode(Vertical)
	keep := d.NewDockNode(Undetermined, d.NewDock("keep"))
	closed := d.NewDockNode(Undetermined, d.NewDock("closed"))
	root.SetLeft(mid)
	mid.SetLeft(keep)
	mid.SetRight(closed)

	if err := mid.RemoveChild(closed); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if err := mid.AssimilateChild(keep); err != nil {
		t.Fatalf("AssimilateChild: %v", err)
	}

	titles := dockTitles(root.Flatten())
	if !slices.Equal(titles, []string{"keep"}) {
		t.Errorf("dock order = %v, want [keep]", titles)
	}
	if err := CheckTree(root); err != nil {
		t.Errorf("CheckTree: %v", err)
	}
}
