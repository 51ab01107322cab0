package cli

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/mctext/term"
)

func (c *CLI) printCommand() *cobra.Command {
	var (
		from  string
		color bool
	)

	cmd := &cobra.Command{
		Use:   "print [text]",
		Short: "Preview rich text in the terminal",
		Long: `Print shows rich text with ANSI colors and styles. Obfuscated text
blinks. Styling is disabled when the output is not a terminal unless
--color is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := parseDocument(input, from)
			if err != nil {
				return err
			}

			var opts []term.Option
			if color {
				opts = append(opts, term.WithColorProfile(termenv.TrueColor))
			}
			r := term.NewRenderer(cmd.OutOrStdout(), opts...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Render(doc))
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", formatAuto, "input format: auto, legacy, json or plain")
	cmd.Flags().BoolVar(&color, "color", false, "force 24-bit color output")

	return cmd
}
