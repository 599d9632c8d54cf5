package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/drydock-ui/drydock/pkg/docking"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TreeModel - Interactive tree browsing
// =============================================================================

// treeEntry is one row of the tree listing: a node plus its depth in the
// hierarchy.
type treeEntry struct {
	node  *docking.TreeNode
	depth int
}

// collectEntries flattens the tree top-down so parents appear above their
// children with increasing indentation.
func collectEntries(n *docking.TreeNode, depth int, out []treeEntry) []treeEntry {
	if n == nil {
		return out
	}
	out = append(out, treeEntry{node: n, depth: depth})
	out = collectEntries(n.Left(), depth+1, out)
	out = collectEntries(n.Right(), depth+1, out)
	return out
}

// TreeModel is the bubbletea model for browsing a docking tree.
type TreeModel struct {
	Title   string
	Entries []treeEntry
	Cursor  int
	Height  int
	Offset  int
}

// NewTreeModel creates a tree browsing model rooted at root.
func NewTreeModel(title string, root *docking.TreeNode) TreeModel {
	return TreeModel{
		Title:   title,
		Entries: collectEntries(root, 0, nil),
		Height:  15,
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Docking Tree: " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		indent := strings.Repeat("  ", e.depth)
		b.WriteString(cursor + indent + style.Render(e.node.Group().String()))
		b.WriteString("\n")
	}

	if len(m.Entries) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detailView(m.Entries[m.Cursor].node))
	}

	return b.String()
}

// detailView renders a small table describing the selected node.
func (m TreeModel) detailView(n *docking.TreeNode) string {
	g := n.Group()

	children := 0
	if n.Left() != nil {
		children++
	}
	if n.Right() != nil {
		children++
	}

	var docks []string
	for _, d := range g.Docks() {
		docks = append(docks, d.Title())
	}

	rows := [][]string{
		{"Kind", g.Kind().String()},
		{"Orientation", g.Orientation().String()},
		{"Docks", strings.Join(docks, ", ")},
		{"Children", fmt.Sprintf("%d", children)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(listDimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return listDimStyle.Padding(0, 1)
			}
			return listNormalStyle.Padding(0, 1)
		}).
		Rows(rows...)

	return t.Render()
}
