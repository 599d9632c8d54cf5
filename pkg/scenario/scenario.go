// Package scenario decodes and executes TOML layout-building scenarios.
//
// A scenario is a build script for a docking tree: it declares a root
// segment, a set of named nodes, and an ordered list of mutation steps to
// apply. Scenarios drive the CLI's layout and inspect commands and double as
// an integration-test harness for the docking operations.
//
// # File Format
//
//	name = "ide-layout"
//
//	[root]
//	kind = "edge"
//	orientation = "horizontal"
//
//	[[nodes]]
//	id = "files"
//	kind = "dock"
//	docks = ["files"]
//
//	[[steps]]
//	op = "add-left"
//	target = "root"
//	child = "files"
//	orientation = "vertical"
//
// Step operations: add-left, add-right, add-before, add-after, remove,
// merge, assimilate, repartition. Node references use the declared ids, with
// "root" always bound to the root node. A repartition step may bind its
// anchor under a fresh id via "as".
package scenario

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/drydock-ui/drydock/pkg/docking"
	"github.com/drydock-ui/drydock/pkg/errors"
)

// RootID is the implicit node id bound to the scenario's root.
const RootID = "root"

// File is a decoded scenario file.
type File struct {
	Name  string     `toml:"name"`
	Root  NodeSpec   `toml:"root"`
	Nodes []NodeSpec `toml:"nodes"`
	Steps []Step     `toml:"steps"`
}

// NodeSpec declares a tree node to materialize before the steps run.
type NodeSpec struct {
	ID          string   `toml:"id"`
	Kind        string   `toml:"kind"`
	Orientation string   `toml:"orientation"`
	Docks       []string `toml:"docks"`
}

// Step is a single mutation to apply to the tree.
type Step struct {
	Op          string `toml:"op"`
	Target      string `toml:"target"`
	Child       string `toml:"child"`
	Sibling     string `toml:"sibling"`
	Dock        string `toml:"dock"`
	Orientation string `toml:"orientation"`
	As          string `toml:"as"`
}

// stepOps is the set of recognized step operations, mapped to whether the
// step requires a child reference.
var stepOps = map[string]bool{
	"add-left":    true,
	"add-right":   true,
	"add-before":  true,
	"add-after":   true,
	"remove":      true,
	"assimilate":  true,
	"merge":       false,
	"repartition": false,
}

// validKinds is the set of recognized node kinds.
var validKinds = map[string]bool{
	"layout": true,
	"dock":   true,
	"center": true,
	"edge":   true,
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read scenario file %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates scenario TOML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the scenario for structural problems before execution:
// valid kinds and orientations, unique node ids, recognized step operations,
// and resolvable node references. Errors carry the offending node id or step
// index.
func (f *File) Validate() error {
	if f.Name == "" {
		return errors.New(errors.ErrCodeInvalidScenario, "scenario has no name")
	}
	if err := validateNodeSpec(f.Root, true); err != nil {
		return err
	}

	ids := map[string]bool{RootID: true}
	for _, n := range f.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidScenario, "node declaration missing id")
		}
		if ids[n.ID] {
			return errors.New(errors.ErrCodeInvalidScenario, "duplicate node id %q", n.ID)
		}
		if err := validateNodeSpec(n, false); err != nil {
			return err
		}
		ids[n.ID] = true
	}

	for i, s := range f.Steps {
		if err := validateStep(s, i, ids); err != nil {
			return err
		}
	}
	return nil
}

func validateNodeSpec(n NodeSpec, isRoot bool) error {
	id := n.ID
	if isRoot {
		id = RootID
	}
	if n.Kind == "" {
		return errors.New(errors.ErrCodeInvalidScenario, "node %q has no kind", id)
	}
	if !validKinds[strings.ToLower(n.Kind)] {
		return errors.New(errors.ErrCodeInvalidScenario, "node %q has unknown kind %q", id, n.Kind)
	}
	if strings.ToLower(n.Kind) != "dock" && len(n.Docks) > 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "node %q: only dock nodes may declare docks", id)
	}
	if _, err := docking.ParseOrientation(n.Orientation); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScenario, err, "node %q", id)
	}
	return nil
}

func validateStep(s Step, i int, ids map[string]bool) error {
	stepErr := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeInvalidScenario, "step %d: %s", i, fmt.Sprintf(format, args...))
	}

	needsChild, ok := stepOps[s.Op]
	if !ok {
		return stepErr("unknown op %q", s.Op)
	}
	if s.Target == "" {
		return stepErr("missing target")
	}
	if !ids[s.Target] {
		return stepErr("unknown target %q", s.Target)
	}
	if needsChild {
		if s.Child == "" {
			return stepErr("op %q requires a child", s.Op)
		}
		if !ids[s.Child] {
			return stepErr("unknown child %q", s.Child)
		}
	}
	if _, err := docking.ParseOrientation(s.Orientation); err != nil {
		return stepErr("%v", err)
	}
	switch s.Op {
	case "add-before", "add-after":
		if s.Sibling == "" {
			return stepErr("op %q requires a sibling", s.Op)
		}
		if !ids[s.Sibling] {
			return stepErr("unknown sibling %q", s.Sibling)
		}
	case "repartition":
		if s.Dock == "" {
			return stepErr("repartition requires a dock")
		}
		if s.As != "" {
			if ids[s.As] {
				return stepErr("binding %q shadows an existing node", s.As)
			}
			ids[s.As] = true
		}
	}
	return nil
}
