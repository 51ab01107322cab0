package text

import (
	"fmt"
	"os"
	"unicode"
)

// Font is one loaded face of a FontSystem.
// It applies the measurement rules shared by layout and rendering on top of
// the engine's ParsedFont: control characters have no advance and no
// coverage, and the space character uses a fixed advance of 0.4 × size.
//
// Font is safe for concurrent use.
// Font must not be copied after creation (enforced by copyCheck).
type Font struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Font itself.
	addr *Font

	parsed ParsedFont
	name   string
	glyphs *lru[glyphKey, glyphBitmap] // nil when caching is disabled
}

// NewFont parses font data (TTF or OTF) with the configured engine.
// Only WithEngine and WithGlyphCacheSize are meaningful here; asset
// options are ignored.
func NewFont(data []byte, opts ...SystemOption) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSystemConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newFont(data, config)
}

// NewFontFromFile loads a Font from a font file path.
func NewFontFromFile(path string, opts ...SystemOption) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFont(data, opts...)
}

func newFont(data []byte, config systemConfig) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	parser, ok := getParser(config.parserName)
	if !ok {
		slogger().Warn("text: unknown font engine, using default", "engine", config.parserName, "default", defaultParserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	f := &Font{parsed: parsed}
	f.addr = f // Self-reference for copy detection
	f.name = parsed.Name()
	if f.name == "" {
		f.name = "Unknown Font"
	}
	if config.cacheSize > 0 {
		f.glyphs = newLRU[glyphKey, glyphBitmap](config.cacheSize)
	}
	return f, nil
}

// Name returns the font family name.
func (f *Font) Name() string {
	f.copyCheck()
	return f.name
}

// Parsed returns the engine font for advanced operations.
func (f *Font) Parsed() ParsedFont {
	f.copyCheck()
	return f.parsed
}

// HasGlyph reports whether the font can draw r.
func (f *Font) HasGlyph(r rune) bool {
	f.copyCheck()
	return r == ' ' || (!unicode.IsControl(r) && f.parsed.HasGlyph(r))
}

// Advance returns the pen advance of r at size.
func (f *Font) Advance(r rune, size float64) float64 {
	f.copyCheck()
	switch {
	case r == ' ':
		return size * spaceAdvanceRatio
	case unicode.IsControl(r):
		return 0
	}
	return f.parsed.Advance(r, size)
}

// Rasterize renders r at size. Spaces and control characters produce no
// coverage; the returned advance follows Advance.
//
// Bitmaps are cached per Font, so the returned coverage may be shared and
// must not be modified.
func (f *Font) Rasterize(r rune, size float64) (GlyphMetrics, []byte) {
	f.copyCheck()
	if r == ' ' || unicode.IsControl(r) {
		return GlyphMetrics{AdvanceWidth: f.Advance(r, size)}, nil
	}
	if f.glyphs == nil {
		return f.rasterize(r, size)
	}
	g := f.glyphs.getOrCreate(glyphKey{r, size}, func() glyphBitmap {
		m, coverage := f.rasterize(r, size)
		return glyphBitmap{m, coverage}
	})
	return g.metrics, g.coverage
}

func (f *Font) rasterize(r rune, size float64) (GlyphMetrics, []byte) {
	m, coverage := f.parsed.Rasterize(r, size)
	if len(coverage) != m.Width*m.Height {
		// Engines must hand back a full bitmap; treat anything else as blank.
		m.Width, m.Height = 0, 0
		coverage = nil
	}
	return m, coverage
}

// LineMetrics returns the engine's line metrics at size, or false when the
// font does not provide them.
func (f *Font) LineMetrics(size float64) (LineMetrics, bool) {
	f.copyCheck()
	return f.parsed.LineMetrics(size)
}

// Metrics returns the line metrics at size, approximating them from size
// when the font has none.
func (f *Font) Metrics(size float64) LineMetrics {
	if m, ok := f.LineMetrics(size); ok {
		return m
	}
	slogger().Warn("text: font has no line metrics, using fallback", "font", f.name, "size", size)
	return fallbackLineMetrics(size)
}

// Measure returns the summed advance of every character of s at size.
func (f *Font) Measure(s string, size float64) float64 {
	w := 0.0
	for _, r := range s {
		w += f.Advance(r, size)
	}
	return w
}

// copyCheck panics if Font was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (f *Font) copyCheck() {
	if f.addr != f {
		panic("text: Font must not be copied by value")
	}
}
