package text

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/mctext"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Assets holds the raw font files a FontSystem loads.
// A nil entry means the face is not available.
type Assets struct {
	// Minecraft holds the four styled faces of the default family, per version.
	Minecraft [2][mctext.NumVariants][]byte
	// Enchanting is the single face of the enchanting table family.
	Enchanting []byte
	// Illager is the single face of the illager family.
	Illager []byte
}

// minecraftFiles are the file names of the styled faces, by variant.
var minecraftFiles = [mctext.NumVariants]string{
	mctext.VariantRegular:    "minecraft.ttf",
	mctext.VariantBold:       "minecraft-bold.ttf",
	mctext.VariantItalic:     "minecraft-italic.ttf",
	mctext.VariantBoldItalic: "minecraft-bold-italic.ttf",
}

// versionDirs are the subdirectory names of each font version.
var versionDirs = [2]string{
	mctext.VersionModern: "modern",
	mctext.VersionLegacy: "legacy",
}

const (
	enchantingFile = "enchanting.ttf"
	illagerFile    = "illager.ttf"
)

// DefaultAssets returns the Go font family as stand-ins for the game fonts:
// the proportional Go faces for the modern set, Go Mono for the legacy set,
// Go Smallcaps for enchanting and Go Medium for illager text.
func DefaultAssets() *Assets {
	return &Assets{
		Minecraft: [2][mctext.NumVariants][]byte{
			mctext.VersionModern: {
				mctext.VariantRegular:    goregular.TTF,
				mctext.VariantBold:       gobold.TTF,
				mctext.VariantItalic:     goitalic.TTF,
				mctext.VariantBoldItalic: gobolditalic.TTF,
			},
			mctext.VersionLegacy: {
				mctext.VariantRegular:    gomono.TTF,
				mctext.VariantBold:       gomonobold.TTF,
				mctext.VariantItalic:     gomonoitalic.TTF,
				mctext.VariantBoldItalic: gomonobolditalic.TTF,
			},
		},
		Enchanting: gosmallcaps.TTF,
		Illager:    gomedium.TTF,
	}
}

// LoadAssetsDir reads font files laid out as
//
//	<dir>/modern/minecraft.ttf
//	<dir>/modern/minecraft-bold.ttf
//	<dir>/modern/minecraft-italic.ttf
//	<dir>/modern/minecraft-bold-italic.ttf
//	<dir>/legacy/... (same four names)
//	<dir>/modern/enchanting.ttf
//	<dir>/modern/illager.ttf
//
// Missing files are left nil; any other read error is returned.
func LoadAssetsDir(dir string) (*Assets, error) {
	a := &Assets{}
	for v, sub := range versionDirs {
		for variant, name := range minecraftFiles {
			data, err := readOptional(filepath.Join(dir, sub, name))
			if err != nil {
				return nil, err
			}
			a.Minecraft[v][variant] = data
		}
	}

	var err error
	if a.Enchanting, err = readOptional(filepath.Join(dir, versionDirs[mctext.VersionModern], enchantingFile)); err != nil {
		return nil, err
	}
	if a.Illager, err = readOptional(filepath.Join(dir, versionDirs[mctext.VersionModern], illagerFile)); err != nil {
		return nil, err
	}
	return a, nil
}

// readOptional reads path, returning nil data if it does not exist.
func readOptional(path string) ([]byte, error) {
	// #nosec G304 -- Font directory is provided by the user
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return data, nil
}

// data returns the font file for a family, variant and version, following
// the fallback rules of FontSystem.
func (a *Assets) data(family mctext.FontFamily, variant mctext.FontVariant, version mctext.FontVersion) []byte {
	switch family {
	case mctext.FamilyEnchanting:
		return a.Enchanting
	case mctext.FamilyIllager:
		return a.Illager
	default:
		if int(version) >= len(a.Minecraft) || int(variant) >= mctext.NumVariants {
			return nil
		}
		return a.Minecraft[version][variant]
	}
}
