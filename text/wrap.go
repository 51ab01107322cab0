package text

import (
	"unicode"

	"github.com/gogpu/mctext"
	"golang.org/x/text/unicode/norm"
)

// item is one character of the document with its measured advance.
type item struct {
	r       rune
	span    int
	variant mctext.FontVariant
	advance float64
	space   bool
	control bool
}

// shapeItems flattens doc into measured characters. Span text is NFC
// normalized first so combining sequences map to precomposed glyphs.
func (e *LayoutEngine) shapeItems(doc mctext.Document, size float64) []item {
	var items []item
	for i, s := range doc.All() {
		variant := s.Style.Variant()
		f := e.fs.Font(variant)
		for _, r := range norm.NFC.String(s.Text) {
			items = append(items, item{
				r:       r,
				span:    i,
				variant: variant,
				advance: f.Advance(r, size),
				space:   unicode.IsSpace(r),
				control: unicode.IsControl(r),
			})
		}
	}
	return items
}

// token is a maximal run of items that are all whitespace or all not.
type token struct {
	start, end int
	width      float64
	space      bool
}

// tokenize splits items into alternating word and whitespace runs.
func tokenize(items []item) []token {
	var tokens []token
	for i, it := range items {
		if n := len(tokens); n > 0 && tokens[n-1].space == it.space {
			tokens[n-1].end = i + 1
			tokens[n-1].width += it.advance
			continue
		}
		tokens = append(tokens, token{start: i, end: i + 1, width: it.advance, space: it.space})
	}
	return tokens
}

// lineRange is a half-open range of items forming one line.
type lineRange struct {
	start, end int
}

// breakLines greedily packs word tokens into lines no wider than maxWidth.
// Whitespace before a word that moves to a new line is dropped; leading and
// trailing whitespace of the document is kept.
func breakLines(items []item, tokens []token, maxWidth float64) []lineRange {
	if maxWidth <= 0 {
		return []lineRange{{0, len(items)}}
	}

	var (
		lines   []lineRange
		cur     = lineRange{start: -1}
		width   float64
		pending *token // whitespace seen before the next word
	)
	for i := range tokens {
		tok := &tokens[i]
		if tok.space {
			pending = tok
			continue
		}

		switch {
		case cur.start < 0:
			// First word of the document; keep leading whitespace.
			cur.start, width = tok.start, tok.width
			if pending != nil {
				cur.start, width = pending.start, pending.width+tok.width
			}
		case width+pendingWidth(pending)+tok.width <= maxWidth:
			width += pendingWidth(pending) + tok.width
		default:
			lines = append(lines, cur)
			cur.start, width = tok.start, tok.width
		}
		cur.end = tok.end
		pending = nil
	}

	if cur.start < 0 {
		// Whitespace only.
		return []lineRange{{0, len(items)}}
	}
	if pending != nil {
		cur.end = pending.end
	}
	return append(lines, cur)
}

func pendingWidth(t *token) float64 {
	if t == nil {
		return 0
	}
	return t.width
}
