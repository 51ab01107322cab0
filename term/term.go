// Package term previews mctext documents in a terminal.
//
// Each span becomes an ANSI-styled run: colors are emitted as 24-bit
// foreground colors (downsampled by the terminal profile), the style flags
// map to the matching SGR attributes, and obfuscated text blinks.
//
//	fmt.Println(term.Render(mctext.ParseLegacy("§6Gold §lbold")))
package term

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gogpu/mctext"
)

// Renderer converts documents to styled strings for one output.
type Renderer struct {
	lg *lipgloss.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColorProfile forces the color profile instead of detecting it from
// the output. termenv.Ascii disables styling entirely.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(p)
	}
}

// NewRenderer returns a Renderer whose capabilities are detected from w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{lg: lipgloss.NewRenderer(w)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render styles every span of doc and concatenates the result.
func (r *Renderer) Render(doc mctext.Document) string {
	var b strings.Builder
	for _, s := range doc.All() {
		if s.Text == "" {
			continue
		}
		b.WriteString(r.spanStyle(s).Render(s.Text))
	}
	return b.String()
}

// RenderLegacy parses s as §-coded text and renders it.
func (r *Renderer) RenderLegacy(s string) string {
	return r.Render(mctext.ParseLegacy(s))
}

func (r *Renderer) spanStyle(s mctext.Span) lipgloss.Style {
	st := r.lg.NewStyle().
		TabWidth(lipgloss.NoTabConversion).
		Bold(s.Style.Bold).
		Italic(s.Style.Italic).
		Underline(s.Style.Underlined).
		Strikethrough(s.Style.Strikethrough).
		Blink(s.Style.Obfuscated)
	if s.Color.IsSet() {
		st = st.Foreground(lipgloss.Color(s.Color.Hex()))
	}
	return st
}

var stdout = NewRenderer(os.Stdout)

// Render styles doc for standard output.
func Render(doc mctext.Document) string {
	return stdout.Render(doc)
}

// RenderLegacy styles §-coded text for standard output.
func RenderLegacy(s string) string {
	return stdout.RenderLegacy(s)
}
