package mctext

import (
	"strings"
	"unicode/utf8"
)

// Marker is the section sign that introduces a legacy formatting code.
const Marker = '§'

// Legacy formatting letters. Letters are matched case-insensitively.
const (
	codeObfuscated    = 'k'
	codeBold          = 'l'
	codeStrikethrough = 'm'
	codeUnderlined    = 'n'
	codeItalic        = 'o'
	codeReset         = 'r'
)

// legacyState is the resolved formatting while scanning legacy text.
type legacyState struct {
	color TextColor
	style Style
}

// apply interprets one code character. It reports false if code is not a
// recognised color, style or reset code.
func (st *legacyState) apply(code rune) bool {
	if c, ok := NamedColorFromCode(code); ok {
		st.color = Named(c)
		st.style = Style{}
		return true
	}
	switch toLowerASCII(code) {
	case codeObfuscated:
		st.style.Obfuscated = true
	case codeBold:
		st.style.Bold = true
	case codeStrikethrough:
		st.style.Strikethrough = true
	case codeUnderlined:
		st.style.Underlined = true
	case codeItalic:
		st.style.Italic = true
	case codeReset:
		*st = legacyState{}
	default:
		return false
	}
	return true
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ParseLegacy converts §-coded text into a Document.
//
// A marker followed by a color code selects that color and clears all
// style toggles. A marker followed by k, l, m, n or o turns a toggle on;
// §r clears color and style. A marker followed by any other character, or
// by nothing, is kept as literal text. ParseLegacy never fails.
func ParseLegacy(s string) Document {
	var (
		spans []Span
		st    legacyState
		run   strings.Builder
		// runState is the formatting of the text accumulated in run.
		runState legacyState
	)
	flush := func() {
		spans = appendSpan(spans, Span{Text: run.String(), Color: runState.color, Style: runState.style})
		run.Reset()
	}
	emit := func(text string) {
		if run.Len() > 0 && runState != st {
			flush()
		}
		runState = st
		run.WriteString(text)
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != Marker {
			emit(s[i : i+size])
			i += size
			continue
		}
		next := i + size
		if next >= len(s) {
			emit(s[i:])
			break
		}
		code, codeSize := utf8.DecodeRuneInString(s[next:])
		if !st.apply(code) {
			emit(s[i : next+codeSize])
		}
		i = next + codeSize
	}
	if run.Len() > 0 {
		flush()
	}
	return Document{spans: spans}
}

// ToLegacy serializes the document as §-coded text.
//
// Codes are emitted in a fixed order: color first, then bold, italic,
// underlined, strikethrough and obfuscated. Since the format has no code to
// turn a single toggle off, a span that drops a toggle or its color is
// preceded by §r. RGB colors are written as the nearest named color.
func (d Document) ToLegacy() string {
	var (
		b  strings.Builder
		st legacyState
	)
	for _, s := range d.spans {
		want := legacyState{style: s.Style}
		if s.Color.IsSet() {
			want.color = Named(NearestNamed(s.Color))
		}

		if (st.color.IsSet() && !want.color.IsSet()) || !want.style.covers(st.style) {
			writeCode(&b, codeReset)
			st = legacyState{}
		}
		if want.color != st.color {
			n, _ := want.color.Named()
			writeCode(&b, n.Code())
			st.color = want.color
			st.style = Style{}
		}
		if want.style.Bold && !st.style.Bold {
			writeCode(&b, codeBold)
		}
		if want.style.Italic && !st.style.Italic {
			writeCode(&b, codeItalic)
		}
		if want.style.Underlined && !st.style.Underlined {
			writeCode(&b, codeUnderlined)
		}
		if want.style.Strikethrough && !st.style.Strikethrough {
			writeCode(&b, codeStrikethrough)
		}
		if want.style.Obfuscated && !st.style.Obfuscated {
			writeCode(&b, codeObfuscated)
		}
		st.style = want.style

		b.WriteString(s.Text)
	}
	return b.String()
}

func writeCode(b *strings.Builder, code rune) {
	b.WriteRune(Marker)
	b.WriteRune(code)
}

// StripCodes removes every recognised formatting code from s, keeping
// malformed markers as literal text.
func StripCodes(s string) string {
	return ParseLegacy(s).PlainText()
}

// CountVisibleChars returns the number of Unicode scalar values left in s
// once formatting codes are removed.
func CountVisibleChars(s string) int {
	return utf8.RuneCountInString(StripCodes(s))
}
