package text

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextParser implements FontParser using go-text/typesetting for font
// decoding and golang.org/x/image/vector for coverage.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	f, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	desc, _ := font.Describe(ld, nil)
	return &gotextParsedFont{font: f, family: desc.Family}, nil
}

// gotextParsedFont implements ParsedFont on a go-text font.Font.
//
// font.Font is read-only and safe for concurrent use, unlike font.Face, so
// every call wraps it in a fresh Face.
type gotextParsedFont struct {
	font   *font.Font
	family string
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.family
}

// scale converts font units to pixels at size.
func (f *gotextParsedFont) scale(size float64) float64 {
	upem := f.font.Upem()
	if upem == 0 {
		return 0
	}
	return size / float64(upem)
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	_, ok := font.NewFace(f.font).NominalGlyph(r)
	return ok
}

// Advance implements ParsedFont.Advance.
func (f *gotextParsedFont) Advance(r rune, size float64) float64 {
	face := font.NewFace(f.font)
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return float64(face.HorizontalAdvance(gid)) * f.scale(size)
}

// LineMetrics implements ParsedFont.LineMetrics.
func (f *gotextParsedFont) LineMetrics(size float64) (LineMetrics, bool) {
	ext, ok := font.NewFace(f.font).FontHExtents()
	if !ok || ext.Ascender <= 0 {
		return LineMetrics{}, false
	}
	s := f.scale(size)
	return LineMetrics{
		Ascent:  float64(ext.Ascender) * s,
		Descent: math.Abs(float64(ext.Descender)) * s,
		LineGap: float64(ext.LineGap) * s,
	}, true
}

// Rasterize implements ParsedFont.Rasterize.
func (f *gotextParsedFont) Rasterize(r rune, size float64) (GlyphMetrics, []byte) {
	face := font.NewFace(f.font)
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return GlyphMetrics{}, nil
	}
	s := f.scale(size)
	m := GlyphMetrics{AdvanceWidth: float64(face.HorizontalAdvance(gid)) * s}

	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return m, nil
	}

	// Bounds in font units, Y up.
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for i := range outline.Segments {
		for _, p := range outline.Segments[i].ArgsSlice() {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}

	x0 := int(math.Floor(float64(minX) * s))
	x1 := int(math.Ceil(float64(maxX) * s))
	y0 := int(math.Floor(float64(minY) * s))
	y1 := int(math.Ceil(float64(maxY) * s))
	m.XMin, m.YMin = x0, y0
	m.Width, m.Height = x1-x0, y1-y0
	if m.Width <= 0 || m.Height <= 0 {
		m.Width, m.Height = 0, 0
		return m, nil
	}

	// Raster space has its origin at the top-left of the bitmap, Y down.
	tx := func(p ot.SegmentPoint) (float32, float32) {
		return float32(float64(p.X)*s) - float32(x0), float32(y1) - float32(float64(p.Y)*s)
	}

	rast := vector.NewRasterizer(m.Width, m.Height)
	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				rast.ClosePath()
			}
			rast.MoveTo(tx(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			rast.LineTo(tx(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			rast.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			dx, dy := tx(seg.Args[2])
			rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		rast.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, m.Width, m.Height))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return m, mask.Pix
}
