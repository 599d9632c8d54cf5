package docking

import (
	"errors"
	"testing"
)

func TestCheckTree_NilRoot(t *testing.T) {
	if err := CheckTree(nil); err != nil {
		t.Errorf("nil root should check clean, got %v", err)
	}
}

func TestCheckTree_HealthyTree(t *testing.T) {
	d := NewDocker()
	root := d.NewEdgeNode(Horizontal)
	inner := d.NewLayoutNode(Vertical)
	inner.SetLeft(d.NewDockNode(Undetermined, d.NewDock("main")))
	inner.SetRight(d.NewDockNode(Undetermined, d.NewDock("log")))
	root.SetLeft(d.NewDockNode(Undetermined, d.NewDock("files")))
	root.SetRight(inner)

	if err := CheckTree(root); err != nil {
		t.Errorf("healthy tree should check clean, got %v", err)
	}
}

func TestCheckTree_SurvivesMutations(t *testing.T) {
	d := NewDocker()
	root := d.NewLayoutNode(Undetermined)
	root.AddChildLeft(d.NewDockNode(Undetermined, d.NewDock("a")), Horizontal)
	root.AddChildLeft(d.NewDockNode(Undetermined, d.NewDock("b")), Vertical)
	root.AddChildRight(d.NewDockNode(Undetermined, d.NewDock("c")), Horizontal)
	if err := CheckTree(root); err != nil {
		t.Errorf("tree should stay consistent after insertions, got %v", err)
	}
}

func TestCheckTree_Violations(t *testing.T) {
	t.Run("nil group", func(t *testing.T) {
		n := newTreeNode(nil)
		if err := CheckTree(n); !errors.Is(err, ErrNilGroup) {
			t.Errorf("expected ErrNilGroup, got %v", err)
		}
	})

	t.Run("structural docks", func(t *testing.T) {
		d := NewDocker()
		g := d.NewLayoutGroup(Horizontal)
		g.docks = []*Dock{d.NewDock("smuggled")}
		if err := CheckTree(newTreeNode(g)); !errors.Is(err, ErrStructuralDocks) {
			t.Errorf("expected ErrStructuralDocks, got %v", err)
		}
	})

	t.Run("broken parent link", func(t *testing.T) {
		d := NewDocker()
		root := d.NewLayoutNode(Horizontal)
		child := d.NewDockNode(Undetermined, d.NewDock("a"))
		root.SetLeft(child)
		// Reattach the child under a stranger without going through the
		// owning node, leaving root's slot pointing at a defector.
		stranger := d.NewLayoutNode(Vertical)
		stranger.SetLeft(child)
		if err := CheckTree(root); !errors.Is(err, ErrBrokenParentLink) {
			t.Errorf("expected ErrBrokenParentLink, got %v", err)
		}
	})
}
