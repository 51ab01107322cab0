package text

import (
	"image"
	"image/draw"
	"math"
	"unicode"

	"github.com/gogpu/mctext"
)

// RenderResult is a rendered RGBA8 image.
type RenderResult struct {
	Width  int
	Height int
	// Data holds Width*Height pixels as non-premultiplied R, G, B, A bytes,
	// row-major.
	Data []byte
}

// Image wraps the result as an *image.NRGBA sharing Data.
func (r RenderResult) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Data,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// newRenderResult converts a premultiplied image into a RenderResult.
func newRenderResult(src *image.RGBA) RenderResult {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return RenderResult{Width: b.Dx(), Height: b.Dy(), Data: dst.Pix}
}

// Render draws doc into a new transparent w×h image with the text block's
// top-left corner at the origin.
func Render(fs *FontSystem, doc mctext.Document, w, h int, opts LayoutOptions) RenderResult {
	r := NewSoftwareRenderer(w, h)
	NewRenderContext(fs).Render(r, doc, 0, 0, opts)
	return newRenderResult(r.Image())
}

// RenderLegacy is like Render for §-coded text.
func RenderLegacy(fs *FontSystem, s string, w, h int, opts LayoutOptions) RenderResult {
	return Render(fs, mctext.ParseLegacy(s), w, h, opts)
}

// RenderFamily draws plain text on a single line in white using the single
// face of family, with no wrapping, styling or shadow.
func RenderFamily(fs *FontSystem, s string, w, h int, size float64, family mctext.FontFamily) RenderResult {
	r := NewSoftwareRenderer(w, h)
	font := fs.FontForFamily(family)
	white := mctext.Named(mctext.White).Color()

	baseline := font.Metrics(size).Ascent
	x := 0.0
	for _, ch := range s {
		if unicode.IsControl(ch) {
			continue
		}
		m, coverage := font.Rasterize(ch, size)
		if len(coverage) > 0 {
			r.DrawGlyph(RasterizedGlyph{
				X:        int(math.Floor(x)) + m.XMin,
				Y:        int(math.Floor(baseline)) - m.Height - m.YMin,
				Width:    m.Width,
				Height:   m.Height,
				Coverage: coverage,
			}, white)
		}
		x += m.AdvanceWidth
	}
	return newRenderResult(r.Image())
}
