package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFont(t *testing.T) {
	for _, engine := range []string{"ximage", "gotext"} {
		t.Run(engine, func(t *testing.T) {
			f, err := NewFont(goregular.TTF, WithEngine(engine))
			if err != nil {
				t.Fatalf("NewFont() error = %v", err)
			}
			if f.Name() != "Go" {
				t.Errorf("Name() = %q, want %q", f.Name(), "Go")
			}
			if f.Parsed() == nil {
				t.Error("Parsed() = nil")
			}
		})
	}
}

func TestNewFontErrors(t *testing.T) {
	if _, err := NewFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFont(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFont([]byte("definitely not a font")); err == nil {
		t.Error("NewFont(garbage) expected error")
	}
}

func TestNewFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := NewFontFromFile(path)
	if err != nil {
		t.Fatalf("NewFontFromFile() error = %v", err)
	}
	if f.Name() != "Go" {
		t.Errorf("Name() = %q", f.Name())
	}

	_, err = NewFontFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestNewFontUnknownEngine(t *testing.T) {
	f, err := NewFont(goregular.TTF, WithEngine("no-such-engine"))
	if err != nil {
		t.Fatalf("NewFont() error = %v", err)
	}
	if _, ok := f.Parsed().(*ximageParsedFont); !ok {
		t.Errorf("Parsed() = %T, want default engine", f.Parsed())
	}
}

func TestFontMeasurementRules(t *testing.T) {
	f, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	const size = 20

	if got := f.Advance(' ', size); got != 8 {
		t.Errorf("Advance(space) = %v, want 8", got)
	}
	if got := f.Advance('\x07', size); got != 0 {
		t.Errorf("Advance(control) = %v, want 0", got)
	}
	if got := f.Advance('W', size); got <= 0 {
		t.Errorf("Advance('W') = %v, want positive", got)
	}
	if got := f.Advance('\U0001F600', size); got != 0 {
		t.Errorf("Advance(unmapped) = %v, want 0", got)
	}

	if !f.HasGlyph(' ') || f.HasGlyph('\n') {
		t.Error("HasGlyph: space must be drawable and control characters not")
	}

	want := f.Advance('a', size) + 8 + f.Advance('b', size)
	if got := f.Measure("a b", size); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
	if got := f.Measure("a\x00", size); got != f.Advance('a', size) {
		t.Errorf("Measure() counted a control character: %v", got)
	}
}

func TestFontRasterize(t *testing.T) {
	f, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	m, cov := f.Rasterize(' ', 10)
	if cov != nil || m.Width != 0 || m.AdvanceWidth != 4 {
		t.Errorf("Rasterize(space) = %+v, %d bytes", m, len(cov))
	}
	if _, cov := f.Rasterize('\x1b', 10); cov != nil {
		t.Error("Rasterize(control) produced coverage")
	}

	m, cov = f.Rasterize('H', 24)
	if m.Width == 0 || m.Height == 0 || len(cov) != m.Width*m.Height {
		t.Fatalf("Rasterize('H') = %+v, %d bytes", m, len(cov))
	}
	full := false
	for _, c := range cov {
		if c == 0xff {
			full = true
			break
		}
	}
	if !full {
		t.Error("'H' has no fully covered pixel")
	}
}

func TestFontMetricsFallback(t *testing.T) {
	f, err := NewFont([]byte{10, 0}, WithEngine(fakeEngine))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.LineMetrics(10); ok {
		t.Fatal("fake font reported line metrics")
	}
	m := f.Metrics(10)
	if m.Ascent != 8 || m.Descent != 2 || m.LineHeight() != 10 {
		t.Errorf("Metrics() = %+v", m)
	}
}

func TestFontConcurrentUse(t *testing.T) {
	for _, engine := range []string{"ximage", "gotext"} {
		t.Run(engine, func(t *testing.T) {
			f, err := NewFont(goregular.TTF, WithEngine(engine))
			if err != nil {
				t.Fatal(err)
			}
			want := f.Measure("concurrent", 16)

			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for _, r := range "concurrent" {
						f.Rasterize(r, 16)
					}
					if got := f.Measure("concurrent", 16); got != want {
						t.Errorf("Measure() = %v, want %v", got, want)
					}
				}()
			}
			wg.Wait()
		})
	}
}

func TestFontCopyProtection(t *testing.T) {
	f, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when copying Font")
		}
	}()
	copyFont(f).Name()
}

// copyFont copies the fields of src into a new Font, leaving addr pointing
// at the original the way a value copy would.
func copyFont(src *Font) *Font {
	dst := &Font{}
	dst.addr = src.addr
	dst.parsed = src.parsed
	dst.name = src.name
	return dst
}
