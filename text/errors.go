package text

import (
	"errors"
	"fmt"

	"github.com/gogpu/mctext"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilAssets is returned when a FontSystem is configured with nil assets.
	ErrNilAssets = errors.New("text: assets cannot be nil")
)

// MissingFontError is returned when the assets lack a face a FontSystem needs.
type MissingFontError struct {
	Family  mctext.FontFamily
	Variant mctext.FontVariant
	Version mctext.FontVersion
}

func (e *MissingFontError) Error() string {
	return fmt.Sprintf("text: missing font %s %s (%s)", e.Family, e.Variant, e.Version)
}

// Is reports whether target is ErrEmptyFontData, so callers can treat
// absent and empty font files alike.
func (e *MissingFontError) Is(target error) bool {
	return target == ErrEmptyFontData
}
