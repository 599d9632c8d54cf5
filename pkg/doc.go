// Package pkg provides the core libraries for Drydock docking-tree layouts.
//
// # Overview
//
// Drydock models a dockable window layout as a binary tree whose nodes carry
// layout segments. The pkg directory is organized into a small set of areas:
//
//  1. [bintree] - Generic binary tree with parent-maintained child slots
//  2. [docking] - Domain layer: segments, registry, and tree mutations
//  3. [scenario] - TOML layout-building scripts and their executor
//  4. [errors], [observability], [buildinfo] - Shared application plumbing
//
// # Architecture
//
// The typical data flow through Drydock:
//
//	Scenario file (TOML)
//	         ↓
//	    [scenario] package (decode + validate + execute)
//	         ↓
//	    [docking] package (tree mutations over [bintree])
//	         ↓
//	    text / DOT / SVG output
//
// # Quick Start
//
// Build a tree by hand and export it:
//
//	import (
//	    "context"
//	    "github.com/drydock-ui/drydock/pkg/docking"
//	)
//
//	// 1. Create a registry and a root segment
//	d := docking.NewDocker()
//	root := d.NewEdgeNode(docking.Horizontal)
//
//	// 2. Dock panels
//	root.AddChildLeft(d.NewDockNode(docking.Undetermined, d.NewDock("editor")), docking.Horizontal)
//	root.AddChildLeft(d.NewDockNode(docking.Undetermined, d.NewDock("files")), docking.Horizontal)
//
//	// 3. Inspect or export
//	fmt.Println(root)
//	svg, _ := docking.RenderSVG(context.Background(), root)
//
// # Main Packages
//
// [bintree] - Value-carrying binary tree node generic over its payload.
// Child slot assignment maintains parent pointers; traversal is in-order so
// the flattened sequence matches the on-screen left-to-right order.
//
// [docking] - Segments (layout, dock, center, edge) with orientations, the
// Docker registry that owns docks and groups, and the mutation operations:
// directional insertion, removal, leaf merging, child assimilation, and
// repartitioning a dock group around a pivot.
//
// [scenario] - Declarative TOML scripts that build trees step by step,
// driving the CLI and integration tests.
package pkg
