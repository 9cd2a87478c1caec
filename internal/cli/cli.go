// Package cli implements the drafter command-line interface.
//
// This package provides commands for converting drawings between the
// native JSON format and DXF, inspecting drawing files, and running the
// HTTP host that exposes the file operations to a frontend. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - export: Convert a native JSON drawing to DXF
//   - import: Convert a DXF file to the native JSON format
//   - inspect: Summarize the contents of a drawing or DXF file
//   - serve: Run the HTTP host for the file operations
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drafterhq/drafter/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "drafter"

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
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Drafter converts 2D drawings between JSON and DXF",
		Long:         `Drafter is a toolkit for 2D vector drawings: it persists drawings in a simple JSON format and converts them to and from the DXF CAD format.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
