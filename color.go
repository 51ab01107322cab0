package mctext

import (
	"fmt"
	"image/color"
)

// NamedColor is one of the 16 fixed Minecraft chat colors.
// The zero value is Black.
type NamedColor uint8

// The named chat colors, in legacy-code order (0-9, a-f).
const (
	Black NamedColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

// numNamedColors is the size of the named-color palette.
const numNamedColors = 16

type namedColorInfo struct {
	name    string
	code    rune
	r, g, b uint8
}

// palette holds the fixed (name, code, rgb) triple for every NamedColor,
// indexed by the NamedColor value.
var palette = [numNamedColors]namedColorInfo{
	Black:       {"black", '0', 0, 0, 0},
	DarkBlue:    {"dark_blue", '1', 0, 0, 170},
	DarkGreen:   {"dark_green", '2', 0, 170, 0},
	DarkAqua:    {"dark_aqua", '3', 0, 170, 170},
	DarkRed:     {"dark_red", '4', 170, 0, 0},
	DarkPurple:  {"dark_purple", '5', 170, 0, 170},
	Gold:        {"gold", '6', 255, 170, 0},
	Gray:        {"gray", '7', 170, 170, 170},
	DarkGray:    {"dark_gray", '8', 85, 85, 85},
	Blue:        {"blue", '9', 85, 85, 255},
	Green:       {"green", 'a', 85, 255, 85},
	Aqua:        {"aqua", 'b', 85, 255, 255},
	Red:         {"red", 'c', 255, 85, 85},
	LightPurple: {"light_purple", 'd', 255, 85, 255},
	Yellow:      {"yellow", 'e', 255, 255, 85},
	White:       {"white", 'f', 255, 255, 255},
}

// Valid reports whether c is one of the 16 named colors.
func (c NamedColor) Valid() bool {
	return c < numNamedColors
}

// Name returns the lowercase identifier used by the JSON format (e.g. "dark_red").
func (c NamedColor) Name() string {
	if !c.Valid() {
		return unknownStr
	}
	return palette[c].name
}

// String implements fmt.Stringer.
func (c NamedColor) String() string {
	return c.Name()
}

// Code returns the legacy formatting character for the color (0-9, a-f).
func (c NamedColor) Code() rune {
	if !c.Valid() {
		return 0
	}
	return palette[c].code
}

// RGB returns the fixed display color.
func (c NamedColor) RGB() (r, g, b uint8) {
	if !c.Valid() {
		return 0, 0, 0
	}
	p := palette[c]
	return p.r, p.g, p.b
}

// NamedColorFromCode returns the named color for a legacy code character.
// Hex letters are matched case-insensitively.
func NamedColorFromCode(code rune) (NamedColor, bool) {
	switch {
	case code >= '0' && code <= '9':
		return NamedColor(code - '0'), true
	case code >= 'a' && code <= 'f':
		return NamedColor(code-'a') + 10, true
	case code >= 'A' && code <= 'F':
		return NamedColor(code-'A') + 10, true
	default:
		return 0, false
	}
}

// NamedColorFromName returns the named color for a lowercase identifier.
func NamedColorFromName(name string) (NamedColor, bool) {
	for i := range palette {
		if palette[i].name == name {
			return NamedColor(i), true
		}
	}
	return 0, false
}

// NamedColorEntry is one row of the named-color table.
type NamedColorEntry struct {
	Color   NamedColor
	Name    string
	Code    rune
	R, G, B uint8
}

// NamedColors returns the full named-color table in legacy-code order.
// The returned slice is a fresh copy and may be modified by the caller.
func NamedColors() []NamedColorEntry {
	out := make([]NamedColorEntry, numNamedColors)
	for i, p := range palette {
		out[i] = NamedColorEntry{
			Color: NamedColor(i),
			Name:  p.name,
			Code:  p.code,
			R:     p.r,
			G:     p.g,
			B:     p.b,
		}
	}
	return out
}

type colorKind uint8

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
)

// TextColor is either a NamedColor or an arbitrary RGB triple.
//
// The zero value means "no color" and is used for spans that carry no
// explicit color. TextColor values are comparable: Named(Red) and
// RGB(255, 85, 85) render identically but are not equal.
type TextColor struct {
	kind    colorKind
	named   NamedColor
	r, g, b uint8
}

// NoColor is the absent color.
var NoColor = TextColor{}

// Named returns a TextColor for a palette entry.
func Named(c NamedColor) TextColor {
	return TextColor{kind: colorNamed, named: c}
}

// RGB returns a TextColor for an arbitrary 24-bit color.
func RGB(r, g, b uint8) TextColor {
	return TextColor{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c carries a color.
func (c TextColor) IsSet() bool {
	return c.kind != colorNone
}

// IsNamed reports whether c is a palette color.
func (c TextColor) IsNamed() bool {
	return c.kind == colorNamed
}

// Named returns the palette color and true if c is a named color.
func (c TextColor) Named() (NamedColor, bool) {
	if c.kind != colorNamed {
		return 0, false
	}
	return c.named, true
}

// RGB returns the display color. Named colors resolve through the palette;
// an unset color resolves to black.
func (c TextColor) RGB() (r, g, b uint8) {
	switch c.kind {
	case colorNamed:
		return c.named.RGB()
	case colorRGB:
		return c.r, c.g, c.b
	default:
		return 0, 0, 0
	}
}

// Hex renders the color as "#rrggbb" with lowercase digits.
func (c TextColor) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Color converts c to an opaque color.RGBA.
func (c TextColor) Color() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// String returns the JSON identifier for named colors and the hex form
// otherwise.
func (c TextColor) String() string {
	switch c.kind {
	case colorNamed:
		return c.named.Name()
	case colorRGB:
		return c.Hex()
	default:
		return "none"
	}
}

// ParseColor resolves a lowercase color name ("dark_red"), a single legacy
// code character ("c") or a "#RRGGBB" hex string.
// It reports false when the input matches none of these forms.
func ParseColor(s string) (TextColor, bool) {
	if s == "" {
		return NoColor, false
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if len(s) == 1 {
		if c, ok := NamedColorFromCode(rune(s[0])); ok {
			return Named(c), true
		}
		return NoColor, false
	}
	if c, ok := NamedColorFromName(s); ok {
		return Named(c), true
	}
	return NoColor, false
}

// parseHexColor parses exactly six hex digits.
func parseHexColor(hex string) (TextColor, bool) {
	if len(hex) != 6 {
		return NoColor, false
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return NoColor, false
		}
		v[i] = hi<<4 | lo
	}
	return RGB(v[0], v[1], v[2]), true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ShadowOffset is the pixel offset of the drop shadow, applied to both axes.
const ShadowOffset = 1

// ShadowColor returns the darkened companion color drawn beneath shadowed
// text: every channel divided by four, truncating.
func ShadowColor(c TextColor) TextColor {
	r, g, b := c.RGB()
	return RGB(r/4, g/4, b/4)
}

// NearestNamed returns the palette color closest to c in RGB space.
// Named colors map to themselves.
func NearestNamed(c TextColor) NamedColor {
	if n, ok := c.Named(); ok {
		return n
	}
	r, g, b := c.RGB()
	best, bestDist := White, -1
	for i, p := range palette {
		dr := int(r) - int(p.r)
		dg := int(g) - int(p.g)
		db := int(b) - int(p.b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = NamedColor(i), d
		}
	}
	return best
}

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"
