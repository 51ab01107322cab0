package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) convertCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert [text]",
		Short: "Convert rich text between legacy, JSON and plain text",
		Example: `  mctext convert '§cred §lbold'
  mctext convert --to legacy '{"text":"","extra":[{"text":"hi","color":"gold"}]}'
  echo '§aok' | mctext convert --to plain`,
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
			out, err := formatDocument(doc, to)
			if err != nil {
				return err
			}
			c.Logger.Debug("converted", "from", from, "to", to, "spans", doc.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", formatAuto, "input format: auto, legacy, json or plain")
	cmd.Flags().StringVar(&to, "to", formatJSON, "output format: legacy, json or plain")

	return cmd
}
