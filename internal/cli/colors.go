package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/mctext"
)

func (c *CLI) colorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the named colors and their legacy codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printColors(cmd.OutOrStdout())
		},
	}
}

// printColors writes one row per palette entry: a swatch, the legacy code,
// the name, the hex value and the shadow color.
func printColors(w io.Writer) error {
	if _, err := fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("   %-4s %-14s %-8s %s", "code", "name", "color", "shadow"))); err != nil {
		return err
	}
	for _, e := range mctext.NamedColors() {
		col := mctext.Named(e.Color)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(col.Hex())).Render("  ")
		row := fmt.Sprintf("%s %-4s %-14s %-8s %s",
			swatch,
			string([]rune{mctext.Marker, e.Code}),
			e.Name,
			col.Hex(),
			StyleValue.Render(mctext.ShadowColor(col).Hex()))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
