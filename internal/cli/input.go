package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/mctext"
)

// Input and output formats.
const (
	formatAuto   = "auto"   // JSON when the input looks like a component, else legacy
	formatLegacy = "legacy" // §-coded text
	formatJSON   = "json"   // JSON text component
	formatPlain  = "plain"  // unformatted text
)

// readInput returns the text argument, or standard input when the argument
// is absent or "-". A single trailing newline is dropped from stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// detectFormat guesses the format of s: JSON objects and strings are
// components, anything else is legacy text.
func detectFormat(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, `"`) {
		return formatJSON
	}
	return formatLegacy
}

// parseDocument decodes s in format.
func parseDocument(s, format string) (mctext.Document, error) {
	if format == formatAuto {
		format = detectFormat(s)
	}
	switch format {
	case formatLegacy:
		return mctext.ParseLegacy(s), nil
	case formatJSON:
		return mctext.ParseJSON(s)
	case formatPlain:
		return mctext.NewDocument(mctext.Span{Text: s}), nil
	default:
		return mctext.Document{}, fmt.Errorf("unknown input format %q (want auto, legacy, json or plain)", format)
	}
}

// formatDocument encodes doc in format.
func formatDocument(doc mctext.Document, format string) (string, error) {
	switch format {
	case formatLegacy:
		return doc.ToLegacy(), nil
	case formatJSON:
		return doc.ToJSON(), nil
	case formatPlain:
		return doc.PlainText(), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want legacy, json or plain)", format)
	}
}
