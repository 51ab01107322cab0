package text

import (
	"reflect"
	"testing"

	"github.com/gogpu/mctext"
)

// TestAlignmentString tests Alignment.String method.
func TestAlignmentString(t *testing.T) {
	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignLeft, "Left"},
		{AlignCenter, "Center"},
		{AlignRight, "Right"},
		{Alignment(99), unknownStr},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.align.String(); got != tt.want {
				t.Errorf("Alignment(%d).String() = %q, want %q", tt.align, got, tt.want)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in     string
		want   Alignment
		wantOK bool
	}{
		{"left", AlignLeft, true},
		{"Center", AlignCenter, true},
		{"RIGHT", AlignRight, true},
		{"justify", AlignLeft, false},
	}
	for _, tt := range tests {
		got, ok := ParseAlignment(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseAlignment(%q) = %v, %v", tt.in, got, ok)
		}
	}
}

func TestLayoutOptionsBuilders(t *testing.T) {
	base := NewLayoutOptions(16)
	if base.LineSpacing != DefaultLineSpacing || base.MaxWidth != 0 || base.Shadow || base.Align != AlignLeft {
		t.Errorf("NewLayoutOptions() = %+v", base)
	}

	o := base.WithMaxWidth(100).WithShadow(true).WithAlign(AlignRight).WithLineSpacing(20)
	want := LayoutOptions{Size: 16, MaxWidth: 100, Shadow: true, Align: AlignRight, LineSpacing: 20}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
	if base.MaxWidth != 0 {
		t.Error("With* modified the receiver")
	}
}

// lineTexts returns the characters of every line.
func lineTexts(l *TextLayout) []string {
	out := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		rs := make([]rune, len(line.Glyphs))
		for j, g := range line.Glyphs {
			rs[j] = g.Char
		}
		out[i] = string(rs)
	}
	return out
}

func TestLayoutWrap(t *testing.T) {
	fs := newFakeSystem(t)
	engine := NewLayoutEngine(fs)

	// At size 10 letters advance 5 and spaces 4.
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"no wrap", "aa bb cc", 0, []string{"aa bb cc"}},
		{"a b just above a", "a b", 5.01, []string{"a", "b"}},
		{"exact fit", "aa bb cc", 24, []string{"aa bb", "cc"}},
		{"one past fit", "aa bb cc", 23.9, []string{"aa", "bb", "cc"}},
		{"oversized word alone", "abcdefgh xy", 20, []string{"abcdefgh", "xy"}},
		{"oversized word later", "xy abcdefgh z", 20, []string{"xy", "abcdefgh", "z"}},
		{"leading and trailing space kept", " a ", 100, []string{" a "}},
		{"whitespace run dropped at break", "aaaa    bbbb", 30, []string{"aaaa", "bbbb"}},
		{"whitespace only", "   ", 5, []string{"   "}},
		{"newline is whitespace", "a\nb", 0, []string{"ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mctext.NewBuilder().Span(tt.text).Build()
			l := engine.Layout(doc, NewLayoutOptions(10).WithMaxWidth(tt.maxWidth))
			if got := lineTexts(l); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayoutPositions(t *testing.T) {
	fs := newFakeSystem(t)
	doc := mctext.NewBuilder().Span("ab").Bold().Then(" c").Build()

	l := NewLayoutEngine(fs).Layout(doc, NewLayoutOptions(10))
	if len(l.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(l.Lines))
	}

	want := []PositionedGlyph{
		{Char: 'a', X: 0, Y: 7, SpanIndex: 0, Advance: 6, Variant: mctext.VariantBold},
		{Char: 'b', X: 6, Y: 7, SpanIndex: 0, Advance: 6, Variant: mctext.VariantBold},
		{Char: ' ', X: 12, Y: 7, SpanIndex: 1, Advance: 4, Variant: mctext.VariantRegular},
		{Char: 'c', X: 16, Y: 7, SpanIndex: 1, Advance: 5, Variant: mctext.VariantRegular},
	}
	if !reflect.DeepEqual(l.Lines[0].Glyphs, want) {
		t.Errorf("glyphs =\n%+v\nwant\n%+v", l.Lines[0].Glyphs, want)
	}
	if l.Lines[0].Width != 21 || l.Width != 21 {
		t.Errorf("width = %v/%v, want 21", l.Lines[0].Width, l.Width)
	}
	if l.Height != 10 {
		t.Errorf("height = %v, want 10", l.Height)
	}
}

func TestLayoutBaselines(t *testing.T) {
	fs := newFakeSystem(t)
	doc := mctext.NewBuilder().Span("aa bb cc").Build()

	tests := []struct {
		name       string
		spacing    float64
		wantBase   []float64
		wantHeight float64
	}{
		{"font default", DefaultLineSpacing, []float64{7, 17, 27}, 30},
		{"fixed spacing", 20, []float64{7, 27, 47}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewLayoutOptions(10).WithMaxWidth(10).WithLineSpacing(tt.spacing)
			l := NewLayoutEngine(fs).Layout(doc, opts)
			if len(l.Lines) != len(tt.wantBase) {
				t.Fatalf("got %d lines, want %d", len(l.Lines), len(tt.wantBase))
			}
			for i, line := range l.Lines {
				if line.Baseline != tt.wantBase[i] {
					t.Errorf("line %d baseline = %v, want %v", i, line.Baseline, tt.wantBase[i])
				}
				for _, g := range line.Glyphs {
					if g.Y != line.Baseline {
						t.Errorf("line %d glyph %q Y = %v", i, g.Char, g.Y)
					}
				}
			}
			if l.Height != tt.wantHeight {
				t.Errorf("height = %v, want %v", l.Height, tt.wantHeight)
			}
		})
	}
}

func TestLayoutAlignment(t *testing.T) {
	fs := newFakeSystem(t)
	doc := mctext.NewBuilder().Span("aaaa b").Build()

	tests := []struct {
		name     string
		align    Alignment
		maxWidth float64
		wantX    []float64 // first glyph X per line
	}{
		{"left", AlignLeft, 22, []float64{0, 0}},
		{"center max width", AlignCenter, 22, []float64{1, 8.5}},
		{"right max width", AlignRight, 22, []float64{2, 17}},
		{"center no wrap", AlignCenter, 0, []float64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewLayoutOptions(10).WithMaxWidth(tt.maxWidth).WithAlign(tt.align)
			l := NewLayoutEngine(fs).Layout(doc, opts)
			if len(l.Lines) != len(tt.wantX) {
				t.Fatalf("got %d lines, want %d", len(l.Lines), len(tt.wantX))
			}
			for i, line := range l.Lines {
				if got := line.Glyphs[0].X; got != tt.wantX[i] {
					t.Errorf("line %d X = %v, want %v", i, got, tt.wantX[i])
				}
				if line.X != tt.wantX[i] {
					t.Errorf("line %d offset = %v, want %v", i, line.X, tt.wantX[i])
				}
			}
		})
	}
}

func TestLayoutSkipsControlCharacters(t *testing.T) {
	fs := newFakeSystem(t)
	doc := mctext.NewBuilder().Span("a\x01b\tc").Build()
	l := NewLayoutEngine(fs).Layout(doc, NewLayoutOptions(10))

	if got := lineTexts(l); !reflect.DeepEqual(got, []string{"abc"}) {
		t.Errorf("lines = %q, want [abc]", got)
	}
	if l.Width != 15 {
		t.Errorf("width = %v, want 15", l.Width)
	}
}

func TestLayoutNormalizesNFC(t *testing.T) {
	fs := newFakeSystem(t)
	doc := mctext.NewBuilder().Span("e\u0301").Build()
	l := NewLayoutEngine(fs).Layout(doc, NewLayoutOptions(10))
	if got := lineTexts(l); !reflect.DeepEqual(got, []string{"\u00e9"}) {
		t.Errorf("lines = %q, want [\u00e9]", got)
	}
}

func TestLayoutEmpty(t *testing.T) {
	fs := newFakeSystem(t)
	l := NewLayoutEngine(fs).Layout(mctext.Document{}, NewLayoutOptions(10))
	if len(l.Lines) != 0 || l.Width != 0 || l.Height != 0 {
		t.Errorf("empty layout = %+v", l)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	fs := newFakeSystem(t)
	doc := mctext.ParseLegacy("§cHello §lworld§r, this wraps around")
	opts := NewLayoutOptions(10).WithMaxWidth(40).WithAlign(AlignCenter)

	a := NewLayoutEngine(fs).Layout(doc, opts)
	b := NewLayoutEngine(fs).Layout(doc, opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("layout is not deterministic")
	}
}

func TestLayoutFallbackMetrics(t *testing.T) {
	a := fakeAssets()
	noMetrics := []byte{10, 0}
	a.Minecraft[mctext.VersionModern][mctext.VariantRegular] = noMetrics
	fs, err := NewFontSystem(mctext.VersionModern, WithAssets(a), WithEngine(fakeEngine))
	if err != nil {
		t.Fatal(err)
	}

	l := NewLayoutEngine(fs).Layout(mctext.NewBuilder().Span("a").Build(), NewLayoutOptions(10))
	if l.Lines[0].Baseline != 8 {
		t.Errorf("fallback baseline = %v, want 8", l.Lines[0].Baseline)
	}
	if l.Height != 10 {
		t.Errorf("fallback height = %v, want 10", l.Height)
	}
}

func TestLayoutWrapRealFont(t *testing.T) {
	fs, err := NewFontSystem(mctext.VersionModern)
	if err != nil {
		t.Fatal(err)
	}
	const size = 16
	doc := mctext.NewBuilder().Span("a b").Build()
	opts := NewLayoutOptions(size).WithMaxWidth(fs.MeasureText("a", size) + 0.5)

	l := NewLayoutEngine(fs).Layout(doc, opts)
	if got := lineTexts(l); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("lines = %q, want [a b]", got)
	}
}
