package docking

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Orientation describes the split axis of a segment.
type Orientation int

const (
	// Undetermined means no axis has been chosen yet. A dock group holding a
	// single dock always has an undetermined orientation.
	Undetermined Orientation = iota
	// Horizontal splits side by side.
	Horizontal
	// Vertical splits top to bottom.
	Vertical
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "undetermined"
	}
}

// ParseOrientation converts a string into an Orientation. The empty string
// and "undetermined" map to Undetermined. Parsing is case-insensitive and
// accepts the single-letter shorthands "h" and "v".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "undetermined":
		return Undetermined, nil
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	default:
		return Undetermined, fmt.Errorf("unknown orientation %q", s)
	}
}

// Kind distinguishes the segment variants a tree node can hold. The set is
// closed: every tree operation switches exhaustively over it.
type Kind int

const (
	// KindLayout is a pure structural split node. It never holds docks.
	KindLayout Kind = iota
	// KindDock holds an ordered sequence of docked panels.
	KindDock
	// KindCenter is the fixed main dock area. It is never removed, merged,
	// or assimilated.
	KindCenter
	// KindEdge is a structural node anchored to a window edge. Its
	// orientation is fixed at construction.
	KindEdge
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindDock:
		return "dock"
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Dock is an individual user-facing panel placed inside a dock group. Docks
// are created and owned by a [Docker]; the tree only holds references to
// them.
type Dock struct {
	id    uuid.UUID
	title string
}

// ID returns the unique identifier assigned by the owning Docker.
func (d *Dock) ID() uuid.UUID { return d.id }

// Title returns the user-facing panel title.
func (d *Dock) Title() string { return d.title }

// Group is the payload of a docking tree node: one segment of the layout.
// Groups are created by a [Docker]; the zero value is not usable.
//
// Every group has a mutable orientation, except edge groups whose
// orientation is fixed at construction. Only dock groups hold docks.
type Group struct {
	id          uuid.UUID
	kind        Kind
	orientation Orientation
	docks       []*Dock
	docker      *Docker
}

// ID returns the unique identifier assigned by the owning Docker.
func (g *Group) ID() uuid.UUID { return g.id }

// Kind returns the segment variant.
func (g *Group) Kind() Kind { return g.kind }

// Orientation returns the current split axis of the group.
func (g *Group) Orientation() Orientation { return g.orientation }

// SetOrientation changes the split axis of the group. Edge groups have a
// fixed orientation; setting it on an edge group is a no-op.
func (g *Group) SetOrientation(o Orientation) {
	if g.kind == KindEdge {
		return
	}
	g.orientation = o
}

// Docks returns a copy of the ordered dock sequence. It is empty for every
// kind other than KindDock.
func (g *Group) Docks() []*Dock { return slices.Clone(g.docks) }

// DockCount returns the number of docks held by the group.
func (g *Group) DockCount() int { return len(g.docks) }

// String returns a short debug form such as "dock:h{files outline}".
func (g *Group) String() string {
	var b strings.Builder
	b.WriteString(g.kind.String())
	if g.orientation != Undetermined {
		b.WriteString(":")
		b.WriteString(g.orientation.String()[:1])
	}
	if g.kind == KindDock {
		b.WriteString("{")
		for i, d := range g.docks {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(d.Title())
		}
		b.WriteString("}")
	}
	return b.String()
}
