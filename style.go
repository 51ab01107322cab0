package mctext

// Style holds the five independent formatting toggles of a span.
// The zero value is unstyled text.
type Style struct {
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
}

// IsZero reports whether no toggle is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Variant returns the font variant selected by the bold and italic toggles.
func (s Style) Variant() FontVariant {
	return VariantFromStyle(s.Bold, s.Italic)
}

// covers reports whether every toggle set in o is also set in s.
func (s Style) covers(o Style) bool {
	return (s.Bold || !o.Bold) &&
		(s.Italic || !o.Italic) &&
		(s.Underlined || !o.Underlined) &&
		(s.Strikethrough || !o.Strikethrough) &&
		(s.Obfuscated || !o.Obfuscated)
}
