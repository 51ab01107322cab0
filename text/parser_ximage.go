package text

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f, faces: make(map[float64]font.Face)}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// opentype faces keep scratch buffers, so every face access happens under mu.
type ximageParsedFont struct {
	font *opentype.Font

	mu    sync.Mutex
	buf   sfnt.Buffer
	faces map[float64]font.Face
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *ximageParsedFont) HasGlyph(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

// Advance implements ParsedFont.Advance.
func (f *ximageParsedFont) Advance(r rune, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(size)
	if face == nil {
		return 0
	}
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fixedToFloat64(adv)
}

// Rasterize implements ParsedFont.Rasterize.
func (f *ximageParsedFont) Rasterize(r rune, size float64) (GlyphMetrics, []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(size)
	if face == nil {
		return GlyphMetrics{}, nil
	}

	dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return GlyphMetrics{}, nil
	}
	m := GlyphMetrics{
		XMin:         dr.Min.X,
		YMin:         -dr.Max.Y,
		Width:        dr.Dx(),
		Height:       dr.Dy(),
		AdvanceWidth: fixedToFloat64(adv),
	}
	if m.Width == 0 || m.Height == 0 {
		return m, nil
	}
	// The face reuses its mask between calls.
	return m, copyCoverage(mask, maskp, m.Width, m.Height)
}

// LineMetrics implements ParsedFont.LineMetrics.
func (f *ximageParsedFont) LineMetrics(size float64) (LineMetrics, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(size)
	if face == nil {
		return LineMetrics{}, false
	}
	fm := face.Metrics()
	if fm.Ascent <= 0 {
		return LineMetrics{}, false
	}
	ascent := fixedToFloat64(fm.Ascent)
	descent := fixedToFloat64(fm.Descent)
	return LineMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: max(fixedToFloat64(fm.Height)-ascent-descent, 0),
	}, true
}

// face returns the cached face for size. f.mu must be held.
func (f *ximageParsedFont) face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	f.faces[size] = face
	return face
}

// copyCoverage copies a w×h region of mask starting at p into a new
// row-major buffer.
func copyCoverage(mask image.Image, p image.Point, w, h int) []byte {
	out := make([]byte, w*h)
	if a, ok := mask.(*image.Alpha); ok {
		for y := range h {
			off := a.PixOffset(p.X, p.Y+y)
			copy(out[y*w:(y+1)*w], a.Pix[off:off+w])
		}
		return out
	}
	for y := range h {
		for x := range w {
			out[y*w+x] = color.AlphaModel.Convert(mask.At(p.X+x, p.Y+y)).(color.Alpha).A
		}
	}
	return out
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
