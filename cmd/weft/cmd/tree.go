package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/weft/internal/demos"
	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/debug"
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/shell/term"
)

// Output formats of the tree command.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

func init() {
	registerCommand((*CLI).treeCommand)
}

func (c *CLI) treeCommand() *cobra.Command {
	var (
		format string
		font   bool
	)
	cmd := &cobra.Command{
		Use:   "tree <demo>",
		Short: "Print the laid out widget tree of a demo",
		Long: `Build a demo, lay it out at the configured window size and print its
widget tree as JSON, Graphviz DOT or SVG.

Sizes are in terminal cells unless --font measures text with the bitmap
font in pixels.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demos.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := c.tree(args[0], font)
			if err != nil {
				return err
			}
			return c.writeTree(cmd, node, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, dot or svg")
	cmd.Flags().BoolVar(&font, "font", false, "measure text in pixels with the bitmap font")
	return cmd
}

func (c *CLI) tree(name string, font bool) (debug.Node, error) {
	demo, err := demos.Lookup(name)
	if err != nil {
		return debug.Node{}, err
	}
	var measurer graphics.TextMeasurer = term.Measurer{}
	if font {
		measurer = graphics.DefaultMeasurer()
	}
	runner := demo.Start(demos.Settings{Spacing: c.config.Spacing},
		app.WithLogger(c.Logger.WithPrefix(name)),
		app.WithMeasurer(measurer),
		app.WithSize(graphics.Size{Width: c.config.Width, Height: c.config.Height}),
		app.WithSnapshots(),
	)
	if err := runner.Render(); err != nil {
		return debug.Node{}, err
	}
	node, ok := runner.Snapshot()
	if !ok {
		return debug.Node{}, fmt.Errorf("demo %q produced no widget tree", name)
	}
	c.Logger.Debug("laid out", "demo", name, "widgets", node.Count())
	return node, nil
}

func (c *CLI) writeTree(cmd *cobra.Command, node debug.Node, format string) error {
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case formatJSON:
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case formatDOT:
		_, err := fmt.Fprint(out, debug.ToDOT(node))
		return err
	case formatSVG:
		svg, err := debug.RenderSVG(cmd.Context(), debug.ToDOT(node))
		if err != nil {
			return err
		}
		_, err = out.Write(svg)
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatJSON, formatDOT, formatSVG)
	}
}

