package text

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/mctext"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fakeParser is a deterministic engine for exact layout arithmetic.
//
// The first data byte sets the advance as a twentieth of the size
// (10 → size/2). Glyphs are (advance-1)×(0.7·size) boxes standing on the
// baseline, fully covered except for a half-covered top row. A second
// data byte disables line metrics. Runes from U+2000 up are unmapped.
type fakeParser struct{}

const fakeEngine = "fake"

func init() {
	RegisterParser(fakeEngine, fakeParser{})
}

func (fakeParser) Parse(data []byte) (ParsedFont, error) {
	if len(data) == 0 {
		return nil, errors.New("fake: no data")
	}
	return &fakeFont{factor: float64(data[0]) / 20, noMetrics: len(data) > 1}, nil
}

type fakeFont struct {
	factor    float64
	noMetrics bool
}

func (f *fakeFont) Name() string { return "Fake" }

func (f *fakeFont) HasGlyph(r rune) bool { return r < 0x2000 }

func (f *fakeFont) Advance(r rune, size float64) float64 {
	if !f.HasGlyph(r) {
		return 0
	}
	return size * f.factor
}

func (f *fakeFont) Rasterize(r rune, size float64) (GlyphMetrics, []byte) {
	if !f.HasGlyph(r) {
		return GlyphMetrics{}, nil
	}
	adv := f.Advance(r, size)
	m := GlyphMetrics{Width: int(adv) - 1, Height: int(size * 7 / 10), AdvanceWidth: adv}
	cov := make([]byte, m.Width*m.Height)
	for i := range cov {
		cov[i] = 0xff
		if i < m.Width {
			cov[i] = 0x80
		}
	}
	return m, cov
}

func (f *fakeFont) LineMetrics(size float64) (LineMetrics, bool) {
	if f.noMetrics {
		return LineMetrics{}, false
	}
	return LineMetrics{Ascent: size * 7 / 10, Descent: size * 3 / 10}, true
}

// fakeAssets gives regular faces an advance of size/2 and bold faces 0.6·size.
func fakeAssets() *Assets {
	regular, bold := []byte{10}, []byte{12}
	return &Assets{
		Minecraft: [2][mctext.NumVariants][]byte{
			mctext.VersionModern: {regular, bold, regular, bold},
		},
		Enchanting: []byte{8},
		Illager:    []byte{16},
	}
}

func newFakeSystem(t *testing.T) *FontSystem {
	t.Helper()
	fs, err := NewFontSystem(mctext.VersionModern, WithAssets(fakeAssets()), WithEngine(fakeEngine))
	if err != nil {
		t.Fatalf("NewFontSystem() error = %v", err)
	}
	return fs
}

func TestParsers(t *testing.T) {
	names := Parsers()
	for _, want := range []string{"ximage", "gotext", fakeEngine} {
		if !slices.Contains(names, want) {
			t.Errorf("Parsers() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Parsers() = %v, want sorted", names)
	}
}

func TestGetParserFallback(t *testing.T) {
	p, ok := getParser("does-not-exist")
	if ok {
		t.Error("getParser() reported unknown engine as found")
	}
	if _, isDefault := p.(*ximageParser); !isDefault {
		t.Errorf("getParser() fallback = %T, want *ximageParser", p)
	}
}

func TestEnginesParse(t *testing.T) {
	for _, engine := range []string{"ximage", "gotext"} {
		t.Run(engine, func(t *testing.T) {
			p, _ := getParser(engine)
			parsed, err := p.Parse(goregular.TTF)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if parsed.Name() != "Go" {
				t.Errorf("Name() = %q, want %q", parsed.Name(), "Go")
			}
			if !parsed.HasGlyph('A') {
				t.Error("HasGlyph('A') = false")
			}
			if parsed.HasGlyph('\U0001F600') {
				t.Error("HasGlyph(emoji) = true for Go Regular")
			}

			if _, err := p.Parse([]byte("not a font")); err == nil {
				t.Error("Parse(garbage) expected error")
			}
		})
	}
}

func TestEnginesAgree(t *testing.T) {
	xp, _ := getParser("ximage")
	gp, _ := getParser("gotext")
	xf, err := xp.Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	gf, err := gp.Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}

	const size = 32
	for _, r := range "AgW!" {
		t.Run(string(r), func(t *testing.T) {
			if xa, ga := xf.Advance(r, size), gf.Advance(r, size); math.Abs(xa-ga) > 0.5 {
				t.Errorf("Advance: ximage %v, gotext %v", xa, ga)
			}

			xm, xc := xf.Rasterize(r, size)
			gm, gc := gf.Rasterize(r, size)
			if len(xc) != xm.Width*xm.Height || len(gc) != gm.Width*gm.Height {
				t.Fatalf("coverage size mismatch: ximage %d for %dx%d, gotext %d for %dx%d",
					len(xc), xm.Width, xm.Height, len(gc), gm.Width, gm.Height)
			}
			if xm.Width == 0 || gm.Width == 0 {
				t.Fatal("visible glyph rasterized empty")
			}
			for _, d := range []struct {
				name   string
				xv, gv int
			}{
				{"XMin", xm.XMin, gm.XMin},
				{"YMin", xm.YMin, gm.YMin},
				{"Width", xm.Width, gm.Width},
				{"Height", xm.Height, gm.Height},
			} {
				if diff := d.xv - d.gv; diff < -1 || diff > 1 {
					t.Errorf("%s: ximage %d, gotext %d", d.name, d.xv, d.gv)
				}
			}
		})
	}

	xl, xok := xf.LineMetrics(size)
	gl, gok := gf.LineMetrics(size)
	if !xok || !gok {
		t.Fatalf("LineMetrics ok = %v/%v", xok, gok)
	}
	if math.Abs(xl.Ascent-gl.Ascent) > 1 || math.Abs(xl.Descent-gl.Descent) > 1 {
		t.Errorf("LineMetrics: ximage %+v, gotext %+v", xl, gl)
	}
}

func TestDescenderBelowBaseline(t *testing.T) {
	for _, engine := range []string{"ximage", "gotext"} {
		t.Run(engine, func(t *testing.T) {
			p, _ := getParser(engine)
			f, err := p.Parse(goregular.TTF)
			if err != nil {
				t.Fatal(err)
			}
			g, _ := f.Rasterize('g', 32)
			if g.YMin >= 0 {
				t.Errorf("'g' YMin = %d, want negative", g.YMin)
			}
			a, _ := f.Rasterize('a', 32)
			if a.YMin < -1 {
				t.Errorf("'a' YMin = %d, want about 0", a.YMin)
			}
		})
	}
}
