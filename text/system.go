package text

import (
	"fmt"

	"github.com/gogpu/mctext"
)

// FontSystem owns every font used to lay out and render rich text.
//
// A FontSystem loads, once, the four styled Minecraft faces of its version,
// the styled faces of the other version when the assets carry them, and the
// single faces of the enchanting and illager families. After construction it
// is read-only and safe for concurrent use.
//
// FontSystem must not be copied after creation (enforced by copyCheck).
type FontSystem struct {
	addr *FontSystem

	version    mctext.FontVersion
	minecraft  [2][mctext.NumVariants]*Font
	enchanting *Font
	illager    *Font
}

// NewFontSystem loads the fonts for version. By default the Go font family
// from DefaultAssets stands in for the game fonts.
func NewFontSystem(version mctext.FontVersion, opts ...SystemOption) (*FontSystem, error) {
	config := defaultSystemConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.assetsErr != nil {
		return nil, config.assetsErr
	}
	if config.assets == nil {
		config.assets = DefaultAssets()
	}
	if int(version) >= len(versionDirs) {
		return nil, fmt.Errorf("text: unknown font version %d", version)
	}

	fs := &FontSystem{version: version}
	fs.addr = fs

	for v := range fs.minecraft {
		ver := mctext.FontVersion(v)
		for i := range mctext.NumVariants {
			variant := mctext.FontVariant(i)
			data := config.assets.data(mctext.FamilyMinecraft, variant, ver)
			if len(data) == 0 {
				if ver == version {
					return nil, &MissingFontError{Family: mctext.FamilyMinecraft, Variant: variant, Version: ver}
				}
				continue
			}
			f, err := loadFont(data, config, mctext.FamilyMinecraft, variant, ver)
			if err != nil {
				return nil, err
			}
			fs.minecraft[v][i] = f
		}
	}

	var err error
	if fs.enchanting, err = loadSingle(config, mctext.FamilyEnchanting, version); err != nil {
		return nil, err
	}
	if fs.illager, err = loadSingle(config, mctext.FamilyIllager, version); err != nil {
		return nil, err
	}
	return fs, nil
}

func loadSingle(config systemConfig, family mctext.FontFamily, version mctext.FontVersion) (*Font, error) {
	data := config.assets.data(family, mctext.VariantRegular, version)
	if len(data) == 0 {
		return nil, &MissingFontError{Family: family, Variant: mctext.VariantRegular, Version: version}
	}
	return loadFont(data, config, family, mctext.VariantRegular, version)
}

func loadFont(data []byte, config systemConfig, family mctext.FontFamily, variant mctext.FontVariant, version mctext.FontVersion) (*Font, error) {
	f, err := newFont(data, config)
	if err != nil {
		return nil, fmt.Errorf("text: loading %s %s (%s): %w", family, variant, version, err)
	}
	slogger().Debug("text: font loaded",
		"family", family.String(),
		"variant", variant.String(),
		"version", version.String(),
		"name", f.Name())
	return f, nil
}

// Version returns the font version the system was built for.
func (fs *FontSystem) Version() mctext.FontVersion {
	fs.copyCheck()
	return fs.version
}

// Font returns the Minecraft face for variant in the system's version.
func (fs *FontSystem) Font(variant mctext.FontVariant) *Font {
	return fs.FontFor(mctext.FamilyMinecraft, variant)
}

// FontFor returns the face for family and variant. Families without styles
// always return their single face.
func (fs *FontSystem) FontFor(family mctext.FontFamily, variant mctext.FontVariant) *Font {
	return fs.FontForVersion(family, variant, fs.version)
}

// FontForVersion is like FontFor but selects the Minecraft faces of
// version. When those faces were not loaded the system's own version is
// used instead.
func (fs *FontSystem) FontForVersion(family mctext.FontFamily, variant mctext.FontVariant, version mctext.FontVersion) *Font {
	fs.copyCheck()
	switch family {
	case mctext.FamilyEnchanting:
		return fs.enchanting
	case mctext.FamilyIllager:
		return fs.illager
	}
	if int(variant) >= mctext.NumVariants {
		variant = mctext.VariantRegular
	}
	if int(version) < len(fs.minecraft) {
		if f := fs.minecraft[version][variant]; f != nil {
			return f
		}
	}
	return fs.minecraft[fs.version][variant]
}

// FontForFamily returns the regular face of family.
func (fs *FontSystem) FontForFamily(family mctext.FontFamily) *Font {
	return fs.FontFor(family, mctext.VariantRegular)
}

// MeasureText returns the width of text at size using the regular
// Minecraft face. Control characters are skipped and spaces advance by
// 0.4 × size.
func (fs *FontSystem) MeasureText(text string, size float64) float64 {
	return fs.Font(mctext.VariantRegular).Measure(text, size)
}

// MeasureTextFamily is like MeasureText but uses the regular face of family.
func (fs *FontSystem) MeasureTextFamily(text string, size float64, family mctext.FontFamily) float64 {
	return fs.FontForFamily(family).Measure(text, size)
}

// AscentRatio returns the ascent of variant as a fraction of the font size,
// so callers can place a baseline without running layout.
func (fs *FontSystem) AscentRatio(variant mctext.FontVariant) float64 {
	const refSize = 64
	return fs.Font(variant).Metrics(refSize).Ascent / refSize
}

// copyCheck panics if FontSystem was copied by value.
func (fs *FontSystem) copyCheck() {
	if fs.addr != fs {
		panic("text: FontSystem must not be copied by value")
	}
}
