package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/drydock-ui/drydock/pkg/docking"
	"github.com/drydock-ui/drydock/pkg/errors"
	"github.com/drydock-ui/drydock/pkg/observability"
	"github.com/drydock-ui/drydock/pkg/scenario"
)

// layoutCommand creates the layout command for running scenario files.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [scenario.toml]",
		Short: "Run a layout scenario and print the resulting tree",
		Long: `Run a layout scenario and print the resulting tree.

The layout command reads a TOML scenario file describing a root segment,
named nodes, and an ordered list of docking operations. It applies the
operations against a fresh registry and reports the resulting tree: the
nested textual form plus the flattened left-to-right order of segments.

With -f dot or -f svg the tree is exported as a Graphviz debug rendering
instead of text.`,
		Example: `  # Print the resulting tree as text
  drydock layout ide.toml

  # Verify structural invariants after the run
  drydock layout ide.toml --check

  # Export a Graphviz picture of the tree shape
  drydock layout ide.toml -f svg -o ide.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], format, output, check)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for dot/svg export")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text (default), dot, svg")
	cmd.Flags().BoolVar(&check, "check", false, "verify structural invariants after the run")

	return cmd
}

// runLayout loads the scenario, executes it, and emits the requested output.
func (c *CLI) runLayout(ctx context.Context, input, format, output string, check bool) error {
	if err := errors.ValidateFormat(format); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)

	f, err := scenario.Load(input)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", input, err)
	}
	logger.Debugf("loaded scenario %q with %d steps", f.Name, len(f.Steps))

	prog := newProgress(logger)
	res, err := scenario.Run(ctx, f)
	if err != nil {
		printError("Scenario failed: %s", errors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Applied %d steps", len(f.Steps)))

	if check {
		if err := docking.CheckTree(res.Root); err != nil {
			printWarning("Invariant violation: %s", err)
			return err
		}
		printDetail("invariants verified")
	}

	switch strings.ToLower(format) {
	case "dot":
		return c.exportDOT(ctx, res, output)
	case "svg":
		return c.exportSVG(ctx, res, output)
	default:
		printSuccess("Layout built")
		printKeyValue("Scenario", res.Name)
		printKeyValue("Tree", res.Root.String())
		printKeyValue("Order", flattenSummary(res.Root))
		return nil
	}
}

// flattenSummary renders the in-order segment sequence on one line.
func flattenSummary(root *docking.TreeNode) string {
	groups := root.Flatten()
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

func (c *CLI) exportDOT(ctx context.Context, res *scenario.Result, output string) error {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, "dot")
	start := time.Now()

	dot := docking.ToDOT(res.Root)
	var err error
	if output == "" {
		fmt.Print(dot)
	} else if err = writeFile([]byte(dot), output); err == nil {
		printSuccess("DOT export written")
		printFile(output)
	}
	hooks.OnRenderComplete(ctx, "dot", len(dot), time.Since(start), err)
	return err
}

func (c *CLI) exportSVG(ctx context.Context, res *scenario.Result, output string) error {
	if output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "svg export requires --output")
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, "svg")
	start := time.Now()

	svg, err := docking.RenderSVG(ctx, res.Root)
	if err == nil {
		err = writeFile(svg, output)
	}
	hooks.OnRenderComplete(ctx, "svg", len(svg), time.Since(start), err)
	if err != nil {
		return err
	}

	printSuccess("SVG export written")
	printFile(output)
	return nil
}
