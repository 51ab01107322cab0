package text

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/mctext"
)

// Decoration geometry as fractions of the font size.
const (
	// decorationRatio is the bar thickness: one pixel of the 8px game font.
	decorationRatio = 1.0 / 8
	// strikethroughRatio is the height of the strike bar above the baseline.
	strikethroughRatio = 0.3
)

// RenderContext lays out and paints documents through a TextRenderer.
// It is safe for concurrent use as long as each call gets its own renderer.
type RenderContext struct {
	fs     *FontSystem
	layout *LayoutEngine
}

// NewRenderContext returns a RenderContext using the fonts of fs.
func NewRenderContext(fs *FontSystem) *RenderContext {
	return &RenderContext{fs: fs, layout: NewLayoutEngine(fs)}
}

// Layout runs the layout engine with the context's fonts.
func (c *RenderContext) Layout(doc mctext.Document, opts LayoutOptions) *TextLayout {
	return c.layout.Layout(doc, opts)
}

// Render lays out doc and paints it with the top-left corner of the text
// block at (x, y). It returns the layout that was painted.
func (c *RenderContext) Render(r TextRenderer, doc mctext.Document, x, y float64, opts LayoutOptions) *TextLayout {
	l := c.Layout(doc, opts)
	c.RenderLayout(r, doc, l, x, y, opts)
	return l
}

// RenderLegacy parses s as §-coded text and renders it like Render.
func (c *RenderContext) RenderLegacy(r TextRenderer, s string, x, y float64, opts LayoutOptions) *TextLayout {
	return c.Render(r, mctext.ParseLegacy(s), x, y, opts)
}

// RenderLayout paints a layout previously computed for doc.
//
// Glyphs are painted in layout order. With Shadow set, each glyph's shadow
// is painted immediately before the glyph itself, so a shadow never covers
// an earlier glyph's foreground. Spans without a color paint white.
// Obfuscated text is painted as is.
func (c *RenderContext) RenderLayout(r TextRenderer, doc mctext.Document, l *TextLayout, x, y float64, opts LayoutOptions) {
	if l == nil {
		return
	}
	for _, line := range l.Lines {
		for _, g := range line.Glyphs {
			if g.SpanIndex < 0 || g.SpanIndex >= doc.Len() {
				continue
			}
			span := doc.At(g.SpanIndex)
			col := span.Color
			if !col.IsSet() {
				col = mctext.Named(mctext.White)
			}

			penX, penY := x+g.X, y+g.Y
			font := c.fs.Font(g.Variant)
			if opts.Shadow {
				off := float64(mctext.ShadowOffset)
				c.paintGlyph(r, font, g, span.Style, penX+off, penY+off, l.Ascent, opts.Size, mctext.ShadowColor(col).Color())
			}
			c.paintGlyph(r, font, g, span.Style, penX, penY, l.Ascent, opts.Size, col.Color())
		}
	}
}

// paintGlyph paints one glyph and its decorations with the pen at
// (penX, penY) on the baseline.
func (c *RenderContext) paintGlyph(r TextRenderer, font *Font, g PositionedGlyph, style mctext.Style, penX, penY, ascent, size float64, col color.RGBA) {
	m, coverage := font.Rasterize(g.Char, size)
	if len(coverage) > 0 {
		r.DrawGlyph(RasterizedGlyph{
			X:        int(math.Floor(penX)) + m.XMin,
			Y:        int(math.Floor(penY)) - m.Height - m.YMin,
			Width:    m.Width,
			Height:   m.Height,
			Coverage: coverage,
		}, col)
	}

	if !style.Underlined && !style.Strikethrough {
		return
	}
	thickness := max(1, int(math.Round(size*decorationRatio)))
	x0 := int(math.Floor(penX))
	x1 := int(math.Floor(penX + g.Advance))
	if x1 <= x0 {
		return
	}
	base := int(math.Floor(penY))
	if style.Underlined {
		top := base + thickness
		r.FillRect(image.Rect(x0, top, x1, top+thickness), col)
	}
	if style.Strikethrough {
		top := base - int(math.Round(min(size*strikethroughRatio, ascent)))
		r.FillRect(image.Rect(x0, top, x1, top+thickness), col)
	}
}
