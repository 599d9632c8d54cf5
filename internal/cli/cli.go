// Package cli implements the drydock command-line interface.
//
// This package provides commands for running layout scenarios against the
// docking engine and inspecting the resulting trees. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Run a scenario file and print or export the resulting tree
//   - inspect: Run a scenario file and browse the tree interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drydock-ui/drydock/pkg/buildinfo"
	"github.com/drydock-ui/drydock/pkg/errors"
)

// appName is the application name used for display.
const appName = "drydock"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Drydock builds and inspects docking-tree layouts",
		Long:         `Drydock is a CLI tool for building docking-tree layouts from scenario files and inspecting the resulting tree structure, making it easier to understand how docking operations reshape a layout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// writeFile writes export output after validating the destination path.
func writeFile(data []byte, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
