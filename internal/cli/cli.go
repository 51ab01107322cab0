// Package cli implements the mctext command-line interface.
//
// The CLI is a thin wrapper over the mctext library: it converts between the
// legacy and JSON formats, previews documents in the terminal, measures
// text and renders it to PNG. It is built on cobra, logs through
// charmbracelet/log and reads defaults from an optional TOML file.
//
// # Commands
//
//   - render: draw rich text to a PNG image
//   - convert: translate between legacy, JSON and plain text
//   - print: preview rich text with ANSI styling
//   - measure: report the pixel width of text
//   - colors: list the named color palette
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI's
// logger is also installed as the library logger, so font loading and
// decoding diagnostics show up with --verbose.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/mctext"
)

const appName = "mctext"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance logging to w at level, and installs its
// logger as the mctext library logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	mctext.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Parse, convert and render Minecraft rich text",
		Long:         `mctext works with Minecraft-style rich text: §-coded legacy strings and JSON text components. It converts between the formats, previews them in the terminal and renders them to PNG with the game's drop shadow.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file with [render] defaults")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.printCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.colorsCommand())

	return root
}
