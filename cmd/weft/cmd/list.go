package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/weft/internal/demos"
)

var (
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleSummary = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func init() {
	registerCommand((*CLI).listCommand)
}

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			width := 0
			for _, d := range demos.All() {
				width = max(width, lipgloss.Width(d.Name))
			}
			for _, d := range demos.All() {
				name := styleName.Width(width + 2).Render(d.Name)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name+styleSummary.Render(d.Summary)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
