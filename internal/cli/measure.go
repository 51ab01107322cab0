package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/mctext"
	"github.com/gogpu/mctext/text"
)

func (c *CLI) measureCommand() *cobra.Command {
	var (
		from   string
		family string
		flags  RenderConfig
	)

	cmd := &cobra.Command{
		Use:   "measure [text]",
		Short: "Report the rendered width of rich text",
		Long: `Measure prints the width in pixels of the text laid out on one line,
its line height and the number of visible characters. With --family
enchanting or illager the plain text is measured with that font.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, ok := mctext.ParseFontFamily(family)
			if !ok {
				return fmt.Errorf("unknown font family %q (want minecraft, enchanting or illager)", family)
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := parseDocument(input, from)
			if err != nil {
				return err
			}
			cfg, err := c.renderConfig(cmd, flags)
			if err != nil {
				return err
			}
			fs, err := cfg.fontSystem()
			if err != nil {
				return err
			}

			var width float64
			if fam == mctext.FamilyMinecraft {
				l := text.NewLayoutEngine(fs).Layout(doc, text.NewLayoutOptions(cfg.Size))
				width = l.Width
			} else {
				width = fs.MeasureTextFamily(doc.PlainText(), cfg.Size, fam)
			}
			metrics := fs.FontForFamily(fam).Metrics(cfg.Size)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", StyleDim.Render("width: "), StyleNumber.Render(fmt.Sprintf("%.2f", width)))
			fmt.Fprintf(out, "%s %s\n", StyleDim.Render("height:"), StyleNumber.Render(fmt.Sprintf("%.2f", metrics.LineHeight())))
			fmt.Fprintf(out, "%s %s\n", StyleDim.Render("chars: "), StyleNumber.Render(fmt.Sprint(doc.CharCount())))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", formatAuto, "input format: auto, legacy, json or plain")
	cmd.Flags().StringVar(&family, "family", "minecraft", "font family: minecraft, enchanting or illager")
	def := DefaultConfig().Render
	cmd.Flags().Float64Var(&flags.Size, "size", def.Size, "font size in pixels")
	cmd.Flags().StringVar(&flags.Version, "font-version", def.Version, "font set: modern or legacy")
	cmd.Flags().StringVar(&flags.Engine, "engine", def.Engine, "font engine")
	cmd.Flags().StringVar(&flags.FontDir, "font-dir", def.FontDir, "directory with modern/ and legacy/ font files")

	return cmd
}
