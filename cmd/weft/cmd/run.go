package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/weft/internal/demos"
	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/debug"
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/shell/term"
)

func init() {
	registerCommand((*CLI).runCommand)
}

func (c *CLI) runCommand() *cobra.Command {
	var debugPort int
	cmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run a demo in the terminal",
		Long: `Run a demo application in the terminal. Quit with ctrl+c or esc.

With --debug-port (or debug.port in the project file) an inspection
server serves the live widget tree on 127.0.0.1.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demos.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("debug-port") {
				debugPort = c.config.DebugPort
			}
			return c.run(cmd.Context(), args[0], debugPort)
		},
	}
	cmd.Flags().IntVar(&debugPort, "debug-port", 0, "serve the widget tree on this port (0 disables)")
	return cmd
}

func (c *CLI) run(ctx context.Context, name string, debugPort int) error {
	demo, err := demos.Lookup(name)
	if err != nil {
		return err
	}

	opts := []app.Option{
		app.WithLogger(c.Logger),
		app.WithMeasurer(term.Measurer{}),
		app.WithSize(graphics.Size{Width: c.config.Width, Height: c.config.Height}),
	}
	if debugPort > 0 {
		opts = append(opts, app.WithSnapshots())
	}
	runner := demo.Start(demos.Settings{Spacing: c.config.Spacing}, opts...)

	if debugPort > 0 {
		srv, err := debug.Start(debugPort, runner, c.Logger)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				c.Logger.Error("debug server shutdown", "err", err)
			}
		}()
	}

	c.Logger.Info("starting", "demo", demo.Name, "app", c.config.AppName)
	return term.Run(ctx, runner,
		term.WithLogger(c.Logger),
		term.WithQuitKeys("ctrl+c", "esc"),
	)
}
