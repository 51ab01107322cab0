package mctext

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Span is a run of text sharing one color and style.
type Span struct {
	Text  string
	Color TextColor
	Style Style
}

// sameFormat reports whether s and o resolve to the same color and style.
func (s Span) sameFormat(o Span) bool {
	return s.Color == o.Color && s.Style == o.Style
}

// Document is an ordered, immutable sequence of spans.
//
// A Document never holds empty spans or two adjacent spans with the same
// color and style; every constructor merges them. The zero value is an
// empty Document. Documents are safe to share between goroutines.
type Document struct {
	spans []Span
}

// NewDocument builds a Document from spans, dropping empty ones and merging
// neighbours that share color and style.
func NewDocument(spans ...Span) Document {
	var out []Span
	for _, s := range spans {
		out = appendSpan(out, s)
	}
	return Document{spans: out}
}

// appendSpan appends s to spans, merging it into the last span when the
// formatting matches. Spans with empty text are dropped.
func appendSpan(spans []Span, s Span) []Span {
	if s.Text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].sameFormat(s) {
		spans[n-1].Text += s.Text
		return spans
	}
	return append(spans, s)
}

// Len returns the number of spans.
func (d Document) Len() int {
	return len(d.spans)
}

// IsEmpty reports whether the document holds no text.
func (d Document) IsEmpty() bool {
	return len(d.spans) == 0
}

// At returns the i-th span. It panics if i is out of range.
func (d Document) At(i int) Span {
	return d.spans[i]
}

// Spans returns a copy of the span sequence.
func (d Document) Spans() []Span {
	out := make([]Span, len(d.spans))
	copy(out, d.spans)
	return out
}

// All returns an iterator over the spans and their indices.
func (d Document) All() iter.Seq2[int, Span] {
	return func(yield func(int, Span) bool) {
		for i, s := range d.spans {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Concat returns a new Document holding the spans of d followed by the
// spans of other. Neither operand is modified.
func (d Document) Concat(other Document) Document {
	out := make([]Span, 0, len(d.spans)+len(other.spans))
	out = append(out, d.spans...)
	for _, s := range other.spans {
		out = appendSpan(out, s)
	}
	return Document{spans: out}
}

// PlainText concatenates the text of every span without formatting.
func (d Document) PlainText() string {
	var b strings.Builder
	for _, s := range d.spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// CharCount returns the number of Unicode scalar values in the document.
func (d Document) CharCount() int {
	n := 0
	for _, s := range d.spans {
		n += utf8.RuneCountInString(s.Text)
	}
	return n
}

// String returns the plain text.
func (d Document) String() string {
	return d.PlainText()
}

// Equal reports whether d and o hold the same spans.
func (d Document) Equal(o Document) bool {
	if len(d.spans) != len(o.spans) {
		return false
	}
	for i := range d.spans {
		if d.spans[i] != o.spans[i] {
			return false
		}
	}
	return true
}

// Span starts a Builder seeded with the spans of d and opens a new run
// with the given text.
func (d Document) Span(text string) *Builder {
	b := &Builder{spans: d.Spans()}
	return b.Span(text)
}
