package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/drydock-ui/drydock/pkg/scenario"
)

// inspectCommand creates the inspect command for browsing scenario results.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [scenario.toml]",
		Short: "Run a layout scenario and browse the tree interactively",
		Long: `Run a layout scenario and browse the resulting tree interactively.

The inspect command executes the scenario like 'layout' does, then opens a
terminal browser over the tree: parents above their children, one segment
per row, with a detail panel for the selected node.`,
		Example: `  drydock inspect ide.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string) error {
	f, err := scenario.Load(input)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", input, err)
	}

	res, err := scenario.Run(ctx, f)
	if err != nil {
		return err
	}

	model := NewTreeModel(res.Name, res.Root)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector: %w", err)
	}
	return nil
}
