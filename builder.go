package mctext

// Builder assembles a Document run by run.
//
// Each run starts unstyled and uncolored; formatting calls apply only to
// the run opened by the most recent Span or Then call:
//
//	doc := mctext.NewBuilder().
//	    Span("hello ").Color(mctext.Named(mctext.Red)).Bold().
//	    Then("world").Italic().
//	    Build()
//
// A Builder is not safe for concurrent use.
type Builder struct {
	spans   []Span
	pending Span
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Span flushes the current run and opens a new one holding text, with
// color and style reset.
func (b *Builder) Span(text string) *Builder {
	b.flush()
	b.pending = Span{Text: text}
	return b
}

// Then is an alias for Span that reads naturally in chains.
func (b *Builder) Then(text string) *Builder {
	return b.Span(text)
}

// Color sets the color of the current run.
func (b *Builder) Color(c TextColor) *Builder {
	b.pending.Color = c
	return b
}

// ColorNamed sets a palette color on the current run.
func (b *Builder) ColorNamed(c NamedColor) *Builder {
	return b.Color(Named(c))
}

// ColorString parses s with ParseColor and applies the result to the
// current run. Unrecognized input leaves the current color unchanged.
func (b *Builder) ColorString(s string) *Builder {
	if c, ok := ParseColor(s); ok {
		b.pending.Color = c
	}
	return b
}

// Bold makes the current run bold.
func (b *Builder) Bold() *Builder {
	b.pending.Style.Bold = true
	return b
}

// Italic makes the current run italic.
func (b *Builder) Italic() *Builder {
	b.pending.Style.Italic = true
	return b
}

// Underlined underlines the current run.
func (b *Builder) Underlined() *Builder {
	b.pending.Style.Underlined = true
	return b
}

// Strikethrough strikes through the current run.
func (b *Builder) Strikethrough() *Builder {
	b.pending.Style.Strikethrough = true
	return b
}

// Obfuscated marks the current run as obfuscated.
func (b *Builder) Obfuscated() *Builder {
	b.pending.Style.Obfuscated = true
	return b
}

// Style replaces the whole style of the current run.
func (b *Builder) Style(s Style) *Builder {
	b.pending.Style = s
	return b
}

// Build flushes the current run and returns the finished Document.
// The Builder can keep being used afterwards; later runs do not affect
// the returned Document.
func (b *Builder) Build() Document {
	b.flush()
	out := make([]Span, len(b.spans))
	copy(out, b.spans)
	return Document{spans: out}
}

// flush moves the pending run into the finalized spans.
func (b *Builder) flush() {
	b.spans = appendSpan(b.spans, b.pending)
	b.pending = Span{}
}
