package scenario

import (
	"context"
	"strings"
	"time"

	"github.com/drydock-ui/drydock/pkg/docking"
	"github.com/drydock-ui/drydock/pkg/errors"
	"github.com/drydock-ui/drydock/pkg/observability"
)

// Result is the outcome of executing a scenario: the materialized tree plus
// the registry it was built against and the node bindings by id.
type Result struct {
	Name   string
	Docker *docking.Docker
	Root   *docking.TreeNode
	Nodes  map[string]*docking.TreeNode
}

// Run executes a validated scenario against a fresh registry and returns the
// resulting tree. Steps apply in order; the first failing step aborts the
// run with an error naming the step index and operation.
//
// Run emits [observability.ScenarioHooks] events around the scenario and
// each step.
func Run(ctx context.Context, f *File) (*Result, error) {
	hooks := observability.Scenario()
	hooks.OnScenarioStart(ctx, f.Name, len(f.Steps))
	start := time.Now()

	res, err := run(ctx, f, hooks)
	hooks.OnScenarioComplete(ctx, f.Name, time.Since(start), err)
	return res, err
}

func run(ctx context.Context, f *File, hooks observability.ScenarioHooks) (*Result, error) {
	d := docking.NewDocker()

	root, err := materialize(d, f.Root)
	if err != nil {
		return nil, err
	}
	nodes := map[string]*docking.TreeNode{RootID: root}
	for _, spec := range f.Nodes {
		n, err := materialize(d, spec)
		if err != nil {
			return nil, err
		}
		nodes[spec.ID] = n
	}

	res := &Result{Name: f.Name, Docker: d, Root: root, Nodes: nodes}
	for i, s := range f.Steps {
		hooks.OnStepStart(ctx, f.Name, i, s.Op)
		stepStart := time.Now()
		err := applyStep(res, s)
		hooks.OnStepComplete(ctx, f.Name, i, s.Op, time.Since(stepStart), err)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "step %d (%s on %q) failed", i, s.Op, s.Target)
		}
	}
	return res, nil
}

// materialize turns a node declaration into a live tree node, creating its
// docks in the registry.
func materialize(d *docking.Docker, spec NodeSpec) (*docking.TreeNode, error) {
	o, err := docking.ParseOrientation(spec.Orientation)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "node %q", spec.ID)
	}

	switch strings.ToLower(spec.Kind) {
	case "layout":
		return d.NewLayoutNode(o), nil
	case "dock":
		docks := make([]*docking.Dock, len(spec.Docks))
		for i, title := range spec.Docks {
			docks[i] = d.NewDock(title)
		}
		return d.NewDockNode(o, docks...), nil
	case "center":
		return d.NewCenterNode(), nil
	case "edge":
		return d.NewEdgeNode(o), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidScenario, "node %q has unknown kind %q", spec.ID, spec.Kind)
	}
}

func applyStep(res *Result, s Step) error {
	target := res.Nodes[s.Target]
	o, err := docking.ParseOrientation(s.Orientation)
	if err != nil {
		return err
	}

	switch s.Op {
	case "add-left":
		target.AddChildLeft(res.Nodes[s.Child], o)
		return nil
	case "add-right":
		target.AddChildRight(res.Nodes[s.Child], o)
		return nil
	case "add-before":
		return target.AddChildBefore(res.Nodes[s.Child], res.Nodes[s.Sibling], o)
	case "add-after":
		return target.AddChildAfter(res.Nodes[s.Child], res.Nodes[s.Sibling], o)
	case "remove":
		return target.RemoveChild(res.Nodes[s.Child])
	case "merge":
		return target.MergeLeafParts()
	case "assimilate":
		return target.AssimilateChild(res.Nodes[s.Child])
	case "repartition":
		dock, err := findDock(target, s.Dock)
		if err != nil {
			return err
		}
		anchor, err := target.Repartition(dock, o)
		if err != nil {
			return err
		}
		if s.As != "" {
			res.Nodes[s.As] = anchor
		}
		return nil
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown op %q", s.Op)
	}
}

// findDock resolves a dock title within the target node's own group.
func findDock(n *docking.TreeNode, title string) (*docking.Dock, error) {
	for _, d := range n.Group().Docks() {
		if d.Title() == title {
			return d, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNodeNotFound, "no dock titled %q in target group", title)
}
