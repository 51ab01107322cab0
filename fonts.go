package mctext

import "strings"

// FontFamily selects one of the bundled typefaces.
type FontFamily uint8

const (
	// FamilyMinecraft is the default chat font, available in all variants
	// and both versions.
	FamilyMinecraft FontFamily = iota
	// FamilyEnchanting is the Standard Galactic Alphabet used by enchanting
	// tables. It has a single regular face.
	FamilyEnchanting
	// FamilyIllager is the Illageralt runic font. It has a single regular face.
	FamilyIllager
)

// String returns the string representation of the family.
func (f FontFamily) String() string {
	switch f {
	case FamilyMinecraft:
		return "Minecraft"
	case FamilyEnchanting:
		return "Enchanting"
	case FamilyIllager:
		return "Illager"
	default:
		return unknownStr
	}
}

// ParseFontFamily returns the family named s, ignoring case.
func ParseFontFamily(s string) (FontFamily, bool) {
	for f := FamilyMinecraft; f <= FamilyIllager; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, true
		}
	}
	return FamilyMinecraft, false
}

// SupportsStyles reports whether the family has bold and italic faces.
// Requests for other variants of a family without styles fall back to its
// regular face.
func (f FontFamily) SupportsStyles() bool {
	return f == FamilyMinecraft
}

// FontVersion selects which generation of the game's font assets is used.
type FontVersion uint8

const (
	// VersionModern is the current font set.
	VersionModern FontVersion = iota
	// VersionLegacy is the pre-1.13 font set.
	VersionLegacy
)

// String returns the string representation of the version.
func (v FontVersion) String() string {
	switch v {
	case VersionModern:
		return "Modern"
	case VersionLegacy:
		return "Legacy"
	default:
		return unknownStr
	}
}

// ParseFontVersion returns the version named s, ignoring case.
func ParseFontVersion(s string) (FontVersion, bool) {
	for v := VersionModern; v <= VersionLegacy; v++ {
		if strings.EqualFold(s, v.String()) {
			return v, true
		}
	}
	return VersionModern, false
}

// FontVariant is one of the four faces of a styled family.
type FontVariant uint8

const (
	// VariantRegular is the upright, normal-weight face.
	VariantRegular FontVariant = iota
	// VariantBold is the bold face.
	VariantBold
	// VariantItalic is the italic face.
	VariantItalic
	// VariantBoldItalic is the bold italic face.
	VariantBoldItalic
)

// NumVariants is the number of font variants.
const NumVariants = 4

// String returns the string representation of the variant.
func (v FontVariant) String() string {
	switch v {
	case VariantRegular:
		return "Regular"
	case VariantBold:
		return "Bold"
	case VariantItalic:
		return "Italic"
	case VariantBoldItalic:
		return "BoldItalic"
	default:
		return unknownStr
	}
}

// VariantFromStyle maps the bold/italic combination to its variant.
func VariantFromStyle(bold, italic bool) FontVariant {
	switch {
	case bold && italic:
		return VariantBoldItalic
	case bold:
		return VariantBold
	case italic:
		return VariantItalic
	default:
		return VariantRegular
	}
}
