package mctext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JSON component field names.
const (
	fieldText          = "text"
	fieldColor         = "color"
	fieldExtra         = "extra"
	fieldBold          = "bold"
	fieldItalic        = "italic"
	fieldUnderlined    = "underlined"
	fieldStrikethrough = "strikethrough"
	fieldObfuscated    = "obfuscated"
)

// inherited is the resolved formatting handed from a component to its
// children. It is passed by value and never mutated in place.
type inherited struct {
	color TextColor
	style Style
}

// ParseJSON decodes a JSON text component into a Document.
//
// Each component may carry text, color, the five style flags and an extra
// list of child components. Children inherit the effective color and style
// of their parent; fields a child sets explicitly override them. A bare JSON
// string is shorthand for {"text": ...}. Unknown fields are ignored.
//
// On failure the returned error is a *ParseError and no partial Document is
// produced.
func ParseJSON(s string) (Document, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Document{}, &ParseError{Path: "$", Reason: err.Error(), Err: ErrMalformedJSON}
	}
	if strings.TrimSpace(s[dec.InputOffset():]) != "" {
		return Document{}, &ParseError{Path: "$", Reason: "trailing data after component", Err: ErrMalformedJSON}
	}
	return ParseJSONValue(v)
}

// ParseJSONValue decodes an already unmarshalled component, as produced by
// json.Unmarshal into an any.
func ParseJSONValue(v any) (Document, error) {
	spans, err := decodeComponent(nil, v, "$", inherited{})
	if err != nil {
		return Document{}, err
	}
	return Document{spans: spans}, nil
}

// ParseJSONComponent is like ParseJSON but never fails: input that does not
// decode as a component is treated as legacy text.
func ParseJSONComponent(s string) Document {
	doc, err := ParseJSON(s)
	if err != nil {
		Logger().Warn("mctext: falling back to legacy text", "err", err)
		return ParseLegacy(s)
	}
	return doc
}

// decodeComponent walks one node in pre-order and appends its spans.
func decodeComponent(spans []Span, v any, path string, parent inherited) ([]Span, error) {
	switch node := v.(type) {
	case string:
		return appendSpan(spans, Span{Text: node, Color: parent.color, Style: parent.style}), nil
	case map[string]any:
		return decodeObject(spans, node, path, parent)
	default:
		return nil, &ParseError{
			Path:   path,
			Reason: fmt.Sprintf("expected string or object, got %s", jsonKind(v)),
			Err:    ErrInvalidComponent,
		}
	}
}

func decodeObject(spans []Span, node map[string]any, path string, parent inherited) ([]Span, error) {
	eff := parent

	if raw, ok := node[fieldColor]; ok {
		s, isString := raw.(string)
		if !isString {
			return nil, &ParseError{
				Path:   path,
				Field:  fieldColor,
				Reason: fmt.Sprintf("color must be a string, got %s", jsonKind(raw)),
				Err:    ErrInvalidColor,
			}
		}
		c, ok := ParseColor(s)
		if !ok {
			return nil, &ParseError{
				Path:   path,
				Field:  fieldColor,
				Reason: fmt.Sprintf("unrecognized color %q", s),
				Err:    ErrInvalidColor,
			}
		}
		eff.color = c
	}

	flags := [...]struct {
		name string
		dst  *bool
	}{
		{fieldBold, &eff.style.Bold},
		{fieldItalic, &eff.style.Italic},
		{fieldUnderlined, &eff.style.Underlined},
		{fieldStrikethrough, &eff.style.Strikethrough},
		{fieldObfuscated, &eff.style.Obfuscated},
	}
	for _, f := range flags {
		raw, ok := node[f.name]
		if !ok {
			continue
		}
		b, isBool := raw.(bool)
		if !isBool {
			return nil, &ParseError{
				Path:   path,
				Field:  f.name,
				Reason: fmt.Sprintf("%s must be a boolean, got %s", f.name, jsonKind(raw)),
				Err:    ErrInvalidStyle,
			}
		}
		*f.dst = b
	}

	if raw, ok := node[fieldText]; ok {
		text, isString := raw.(string)
		if !isString {
			return nil, &ParseError{
				Path:   path,
				Field:  fieldText,
				Reason: fmt.Sprintf("text must be a string, got %s", jsonKind(raw)),
				Err:    ErrInvalidComponent,
			}
		}
		spans = appendSpan(spans, Span{Text: text, Color: eff.color, Style: eff.style})
	}

	raw, ok := node[fieldExtra]
	if !ok {
		return spans, nil
	}
	children, isArray := raw.([]any)
	if !isArray {
		return nil, &ParseError{
			Path:   path,
			Field:  fieldExtra,
			Reason: fmt.Sprintf("extra must be an array, got %s", jsonKind(raw)),
			Err:    ErrInvalidComponent,
		}
	}
	for i, child := range children {
		var err error
		spans, err = decodeComponent(spans, child, path+"."+fieldExtra+"["+strconv.Itoa(i)+"]", eff)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// jsonKind names the JSON type of a decoded value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// component is the wire shape written by ToJSON.
type component struct {
	Text          string      `json:"text"`
	Color         string      `json:"color,omitempty"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Extra         []component `json:"extra,omitempty"`
}

// ToJSON serializes the document as a JSON text component.
//
// The root is an empty-text component whose extra array holds one
// component per span, in order. Each child carries its text, its color (the
// name for named colors, "#rrggbb" otherwise) and only the style flags that
// are set; children never nest further. An empty Document encodes as
// {"text":""}.
func (d Document) ToJSON() string {
	data, err := d.MarshalJSON()
	if err != nil {
		// component holds only strings and bools.
		panic(err)
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler using the ToJSON wire shape.
func (d Document) MarshalJSON() ([]byte, error) {
	root := component{}
	if len(d.spans) > 0 {
		root.Extra = make([]component, len(d.spans))
		for i, s := range d.spans {
			c := component{
				Text:          s.Text,
				Bold:          s.Style.Bold,
				Italic:        s.Style.Italic,
				Underlined:    s.Style.Underlined,
				Strikethrough: s.Style.Strikethrough,
				Obfuscated:    s.Style.Obfuscated,
			}
			if s.Color.IsSet() {
				c.Color = s.Color.String()
			}
			root.Extra[i] = c
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// UnmarshalJSON implements json.Unmarshaler with ParseJSON semantics.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := ParseJSON(string(data))
	if err != nil {
		return err
	}
	*d = doc
	return nil
}
