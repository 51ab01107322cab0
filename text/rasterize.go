package text

import (
	"image"
	"image/color"

	"github.com/gogpu/mctext/internal/blend"
)

// RasterizedGlyph is a glyph coverage bitmap placed in buffer coordinates.
type RasterizedGlyph struct {
	// X and Y are the buffer position of the bitmap's top-left pixel.
	X, Y int
	// Width and Height are the bitmap dimensions.
	Width, Height int
	// Coverage holds Width*Height bytes in row-major order.
	Coverage []byte
}

// Bounds returns the buffer rectangle covered by the glyph.
func (g RasterizedGlyph) Bounds() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
}

// TextRenderer receives the paint operations of a RenderContext.
// Colors are opaque; coverage carries the per-pixel alpha.
type TextRenderer interface {
	// DrawGlyph composites a glyph mask in color c.
	DrawGlyph(g RasterizedGlyph, c color.RGBA)

	// FillRect composites a solid rectangle in color c.
	FillRect(r image.Rectangle, c color.RGBA)
}

// SoftwareRenderer composites onto an *image.RGBA with source-over
// blending. Pixels outside the image are dropped.
//
// A SoftwareRenderer is not safe for concurrent use; give each goroutine its
// own buffer.
type SoftwareRenderer struct {
	img *image.RGBA
}

// NewSoftwareRenderer returns a renderer over a new transparent w×h image.
// Negative sizes are treated as zero.
func NewSoftwareRenderer(w, h int) *SoftwareRenderer {
	return &SoftwareRenderer{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// NewSoftwareRendererFor returns a renderer drawing into img.
func NewSoftwareRendererFor(img *image.RGBA) *SoftwareRenderer {
	return &SoftwareRenderer{img: img}
}

// Image returns the target image.
func (r *SoftwareRenderer) Image() *image.RGBA {
	return r.img
}

// DrawGlyph implements TextRenderer.
func (r *SoftwareRenderer) DrawGlyph(g RasterizedGlyph, c color.RGBA) {
	if len(g.Coverage) < g.Width*g.Height {
		return
	}
	clip := g.Bounds().Intersect(r.img.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := g.Coverage[(y-g.Y)*g.Width:]
		off := r.img.PixOffset(clip.Min.X, y)
		for x := clip.Min.X; x < clip.Max.X; x++ {
			blend.MaskOver(r.img.Pix[off:off+4], c.R, c.G, c.B, row[x-g.X])
			off += 4
		}
	}
}

// FillRect implements TextRenderer.
func (r *SoftwareRenderer) FillRect(rect image.Rectangle, c color.RGBA) {
	clip := rect.Canon().Intersect(r.img.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		off := r.img.PixOffset(clip.Min.X, y)
		for x := clip.Min.X; x < clip.Max.X; x++ {
			blend.MaskOver(r.img.Pix[off:off+4], c.R, c.G, c.B, 0xff)
			off += 4
		}
	}
}
