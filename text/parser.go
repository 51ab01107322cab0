package text

import (
	"slices"
	"sync"
)

// FontParser is an interface for font engine backends.
// This abstraction allows swapping the font library that decodes font files
// and rasterizes glyphs.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Sizes are in pixels and every returned value is already scaled to size.
//
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Advance returns the horizontal advance of r at size.
	Advance(r rune, size float64) float64

	// Rasterize renders r at size. The coverage buffer holds
	// Width*Height bytes in row-major order; it is empty for blank glyphs.
	Rasterize(r rune, size float64) (GlyphMetrics, []byte)

	// LineMetrics returns the line metrics at size, or false when the font
	// does not provide them.
	LineMetrics(size float64) (LineMetrics, bool)
}

// GlyphMetrics positions a rasterized glyph relative to its pen position
// on the baseline.
type GlyphMetrics struct {
	// XMin is the offset of the bitmap's left edge from the pen position.
	XMin int
	// YMin is the offset of the bitmap's bottom edge above the baseline.
	// Glyphs with descenders have a negative YMin.
	YMin int
	// Width and Height are the bitmap dimensions.
	Width  int
	Height int
	// AdvanceWidth is the horizontal pen advance.
	AdvanceWidth float64
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own engine implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p, true
	}
	return parserRegistry[defaultParserName], false
}
