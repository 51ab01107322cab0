package text

import (
	"strings"

	"github.com/gogpu/mctext"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Alignment specifies text horizontal alignment within the layout width.
type Alignment int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// ParseAlignment parses "left", "center" or "right", ignoring case.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

// DefaultLineSpacing asks layout to use the font's ascent plus descent as
// the distance between baselines.
const DefaultLineSpacing = -1

// LayoutOptions configures text layout and rendering.
type LayoutOptions struct {
	// Size is the font size in pixels.
	Size float64

	// MaxWidth is the maximum line width in pixels.
	// If <= 0, no line wrapping is performed.
	MaxWidth float64

	// Shadow draws a darkened copy of every glyph one pixel down and right.
	Shadow bool

	// Align specifies horizontal text alignment.
	Align Alignment

	// LineSpacing is the distance between consecutive baselines in pixels.
	// Values <= 0 (DefaultLineSpacing) use the font's ascent plus descent.
	LineSpacing float64
}

// NewLayoutOptions returns left-aligned, unwrapped, unshadowed options at size.
func NewLayoutOptions(size float64) LayoutOptions {
	return LayoutOptions{
		Size:        size,
		Align:       AlignLeft,
		LineSpacing: DefaultLineSpacing,
	}
}

// WithMaxWidth returns a copy of o wrapping lines at w pixels.
func (o LayoutOptions) WithMaxWidth(w float64) LayoutOptions {
	o.MaxWidth = w
	return o
}

// WithShadow returns a copy of o with the drop shadow toggled.
func (o LayoutOptions) WithShadow(shadow bool) LayoutOptions {
	o.Shadow = shadow
	return o
}

// WithAlign returns a copy of o with alignment a.
func (o LayoutOptions) WithAlign(a Alignment) LayoutOptions {
	o.Align = a
	return o
}

// WithLineSpacing returns a copy of o with a fixed baseline distance.
func (o LayoutOptions) WithLineSpacing(spacing float64) LayoutOptions {
	o.LineSpacing = spacing
	return o
}

// PositionedGlyph is one character placed by layout.
type PositionedGlyph struct {
	// Char is the character to draw.
	Char rune
	// X is the pen position, alignment offset included.
	X float64
	// Y is the baseline of the glyph's line.
	Y float64
	// SpanIndex is the index of the source span in the Document.
	SpanIndex int
	// Advance is the horizontal advance of the glyph.
	Advance float64
	// Variant is the font variant selected by the span's style.
	Variant mctext.FontVariant
}

// Line represents a positioned line of text ready for rendering.
type Line struct {
	// Glyphs holds the line's glyphs left to right.
	Glyphs []PositionedGlyph

	// Width is the total advance width of the line.
	Width float64

	// X is the alignment offset applied to every glyph of the line.
	X float64

	// Baseline is the baseline Y position of this line within the layout.
	Baseline float64
}

// TextLayout represents the result of text layout.
// Coordinates are relative to the top-left corner of the text block.
type TextLayout struct {
	// Lines contains all lines of laid out text.
	Lines []Line

	// Width is the maximum width among all lines.
	Width float64

	// Height is the distance from the top of the first line to the bottom
	// of the last.
	Height float64

	// Ascent and Descent are the regular-face line metrics used for
	// baseline placement.
	Ascent  float64
	Descent float64
}

// LayoutEngine places the characters of a Document using the metrics of a
// FontSystem. It is stateless and safe for concurrent use.
type LayoutEngine struct {
	fs *FontSystem
}

// NewLayoutEngine returns a LayoutEngine reading metrics from fs.
func NewLayoutEngine(fs *FontSystem) *LayoutEngine {
	return &LayoutEngine{fs: fs}
}

// Layout wraps and positions doc.
//
// Words are separated by runs of whitespace. With a MaxWidth, words are
// added to the current line while they fit; a word that does not fit starts
// a new line and the whitespace before it is dropped. A word wider than
// MaxWidth sits alone on its line. Without a MaxWidth the whole document is
// a single line.
//
// The first baseline is the regular face's ascent; each further line is
// LineSpacing below the previous one. Layout is deterministic: the same
// document, options and fonts always give the same positions.
func (e *LayoutEngine) Layout(doc mctext.Document, opts LayoutOptions) *TextLayout {
	metrics := e.fs.Font(mctext.VariantRegular).Metrics(opts.Size)
	out := &TextLayout{Ascent: metrics.Ascent, Descent: metrics.Descent}

	items := e.shapeItems(doc, opts.Size)
	if len(items) == 0 {
		return out
	}

	lineHeight := opts.LineSpacing
	if lineHeight <= 0 {
		lineHeight = metrics.LineHeight()
	}

	ranges := breakLines(items, tokenize(items), opts.MaxWidth)
	out.Lines = make([]Line, len(ranges))
	for i, r := range ranges {
		out.Lines[i] = placeLine(items[r.start:r.end], metrics.Ascent+float64(i)*lineHeight)
		out.Width = max(out.Width, out.Lines[i].Width)
	}
	out.Height = float64(len(out.Lines)-1)*lineHeight + metrics.LineHeight()

	applyAlignment(out, opts.Align, opts.MaxWidth)
	return out
}

// placeLine positions items left to right on baseline y.
func placeLine(items []item, y float64) Line {
	line := Line{Baseline: y, Glyphs: make([]PositionedGlyph, 0, len(items))}
	x := 0.0
	for _, it := range items {
		if !it.control {
			line.Glyphs = append(line.Glyphs, PositionedGlyph{
				Char:      it.r,
				X:         x,
				Y:         y,
				SpanIndex: it.span,
				Advance:   it.advance,
				Variant:   it.variant,
			})
		}
		x += it.advance
	}
	line.Width = x
	return line
}

// applyAlignment shifts every line by its alignment offset. The reference
// width is MaxWidth when wrapping, else the widest line.
func applyAlignment(l *TextLayout, align Alignment, maxWidth float64) {
	ref := l.Width
	if maxWidth > 0 {
		ref = maxWidth
	}
	for i := range l.Lines {
		line := &l.Lines[i]
		switch align {
		case AlignCenter:
			line.X = (ref - line.Width) / 2
		case AlignRight:
			line.X = ref - line.Width
		default:
			continue
		}
		for j := range line.Glyphs {
			line.Glyphs[j].X += line.X
		}
	}
}
