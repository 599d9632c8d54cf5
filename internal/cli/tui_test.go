package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drydock-ui/drydock/pkg/docking"
)

func testTree(t *testing.T) *docking.TreeNode {
	t.Helper()
	d := docking.NewDocker()
	root := d.NewEdgeNode(docking.Horizontal)
	root.SetLeft(d.NewDockNode(docking.Undetermined, d.NewDock("files")))
	inner := d.NewLayoutNode(docking.Vertical)
	inner.SetLeft(d.NewDockNode(docking.Undetermined, d.NewDock("editor")))
	inner.SetRight(d.NewDockNode(docking.Undetermined, d.NewDock("log")))
	root.SetRight(inner)
	return root
}

func TestNewTreeModelCollectsHierarchy(t *testing.T) {
	m := NewTreeModel("demo", testTree(t))

	if len(m.Entries) != 5 {
		t.Fatalf("len(Entries) = %d, want 5", len(m.Entries))
	}
	// Root first at depth 0, children below with increasing depth.
	if m.Entries[0].depth != 0 {
		t.Errorf("root depth = %d, want 0", m.Entries[0].depth)
	}
	if m.Entries[1].depth != 1 {
		t.Errorf("first child depth = %d, want 1", m.Entries[1].depth)
	}
	if m.Entries[3].depth != 2 {
		t.Errorf("grandchild depth = %d, want 2", m.Entries[3].depth)
	}
}

func TestTreeModelNavigation(t *testing.T) {
	m := NewTreeModel("demo", testTree(t))

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	next, _ := m.Update(down)
	m = next.(TreeModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(up)
	m = next.(TreeModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(up)
	m = next.(TreeModel)
	if m.Cursor != 0 {
		t.Errorf("cursor should not go negative, got %d", m.Cursor)
	}
}

func TestTreeModelQuit(t *testing.T) {
	m := NewTreeModel("demo", testTree(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestTreeModelView(t *testing.T) {
	m := NewTreeModel("demo", testTree(t))
	view := m.View()

	for _, want := range []string{"Docking Tree: demo", "edge:h", "dock{files}", "Kind", "Orientation"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
