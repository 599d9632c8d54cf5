package docking

import (
	"slices"

	"github.com/google/uuid"
)

// Docker is the owning registry for docks, groups, and tree nodes. It hands
// out uuid-identified payload instances and wraps them in tree nodes. The
// tree operations call back into the Docker only when they must materialize
// a new segment (a structural wrapper, a merged dock group, or the parts of
// a repartition).
//
// A Docker owns the docks it creates for the lifetime of the layout; tree
// nodes merely reference them. Docker is not safe for concurrent use.
type Docker struct {
	docks  map[uuid.UUID]*Dock
	groups map[uuid.UUID]*Group
}

// NewDocker creates an empty registry.
func NewDocker() *Docker {
	return &Docker{
		docks:  make(map[uuid.UUID]*Dock),
		groups: make(map[uuid.UUID]*Group),
	}
}

// NewDock creates and registers a dock with the given panel title.
func (d *Docker) NewDock(title string) *Dock {
	dock := &Dock{id: uuid.New(), title: title}
	d.docks[dock.id] = dock
	return dock
}

// Dock returns the registered dock with the given ID, or nil.
func (d *Docker) Dock(id uuid.UUID) *Dock { return d.docks[id] }

// NewLayoutGroup creates a pure structural split group.
func (d *Docker) NewLayoutGroup(o Orientation) *Group {
	return d.register(&Group{kind: KindLayout, orientation: o})
}

// NewDockGroup creates a dock group holding the given docks in order.
func (d *Docker) NewDockGroup(o Orientation, docks ...*Dock) *Group {
	return d.register(&Group{kind: KindDock, orientation: o, docks: slices.Clone(docks)})
}

// NewCenterGroup creates the fixed main dock area segment.
func (d *Docker) NewCenterGroup() *Group {
	return d.register(&Group{kind: KindCenter})
}

// NewEdgeGroup creates a window-edge segment. The orientation is fixed for
// the lifetime of the group.
func (d *Docker) NewEdgeGroup(o Orientation) *Group {
	return d.register(&Group{kind: KindEdge, orientation: o})
}

// NewNode wraps a group in a fresh tree node with no children and no parent.
func (d *Docker) NewNode(g *Group) *TreeNode {
	return newTreeNode(g)
}

// NewLayoutNode creates a structural split group and wraps it in a node.
func (d *Docker) NewLayoutNode(o Orientation) *TreeNode {
	return newTreeNode(d.NewLayoutGroup(o))
}

// NewDockNode creates a dock group and wraps it in a node.
func (d *Docker) NewDockNode(o Orientation, docks ...*Dock) *TreeNode {
	return newTreeNode(d.NewDockGroup(o, docks...))
}

// NewCenterNode creates the center segment and wraps it in a node.
func (d *Docker) NewCenterNode() *TreeNode {
	return newTreeNode(d.NewCenterGroup())
}

// NewEdgeNode creates an edge segment and wraps it in a node.
func (d *Docker) NewEdgeNode(o Orientation) *TreeNode {
	return newTreeNode(d.NewEdgeGroup(o))
}

func (d *Docker) register(g *Group) *Group {
	g.id = uuid.New()
	g.docker = d
	d.groups[g.id] = g
	return g
}
