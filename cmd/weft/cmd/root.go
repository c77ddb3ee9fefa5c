// Package cmd implements the weft CLI commands.
//
// The root command dispatches to subcommands (run, tree, list). Every
// command resolves the optional weft.yaml or weft.toml project file before
// it runs; --verbose selects debug logging.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/weft/pkg/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	verbose    bool
	dir        string
	configPath string
	config     *config.Resolved
}

// commands are constructors registered by the files of this package.
var commands []func(c *CLI) *cobra.Command

func registerCommand(fn func(c *CLI) *cobra.Command) {
	commands = append(commands, fn)
}

// New creates a CLI writing command output to out and logs to logOut.
func New(out, logOut io.Writer) *CLI {
	return &CLI{
		Out:    out,
		Logger: newLogger(logOut, log.InfoLevel),
	}
}

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "weft",
	})
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "weft",
		Short: "weft runs declarative terminal UIs",
		Long: `weft rebuilds a lightweight view tree from application state every
cycle and reconciles it against a long-lived widget tree.

Use "weft <command> --help" for more information about a command.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("weft %s (built %s)\n", Version, BuildTime))
	root.SetOut(c.Out)

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.dir, "dir", ".", "project directory to read weft.yaml or weft.toml from")
	flags.StringVar(&c.configPath, "config", "", "explicit configuration file")

	for _, fn := range commands {
		root.AddCommand(fn(c))
	}
	return root
}

// setup resolves configuration and the log level before any command runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(c.dir)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(config.FindProjectRoot(dir), c.configPath)
	if err != nil {
		return err
	}
	c.config = resolved
	if c.verbose || resolved.Verbose {
		c.Logger.SetLevel(log.DebugLevel)
	}
	c.Logger.Debug("configuration resolved",
		"app", resolved.AppName,
		"file", resolved.ConfigFile,
		"size", fmt.Sprintf("%gx%g", resolved.Width, resolved.Height),
	)
	return nil
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, args []string) error {
	c := New(os.Stdout, os.Stderr)
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
