package mctext

import (
	"errors"
	"strings"
)

// Sentinel errors for JSON component decoding.
var (
	// ErrMalformedJSON is returned when the input is not valid JSON.
	ErrMalformedJSON = errors.New("mctext: malformed json")

	// ErrInvalidComponent is returned when a node is neither a string nor
	// a well-formed component object.
	ErrInvalidComponent = errors.New("mctext: invalid text component")

	// ErrInvalidStyle is returned when a style field is present but not a boolean.
	ErrInvalidStyle = errors.New("mctext: style field must be a boolean")

	// ErrInvalidColor is returned when a color field cannot be resolved.
	ErrInvalidColor = errors.New("mctext: unrecognized color")
)

// ParseError describes where decoding a JSON text component failed.
// errors.Is matches it against the sentinel in Err.
type ParseError struct {
	// Path locates the offending node, e.g. "$.extra[1]".
	Path string
	// Field is the offending field name, empty when the node itself is bad.
	Field string
	// Reason is a short human-readable description.
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("mctext: ")
	b.WriteString(e.Reason)
	b.WriteString(" at ")
	b.WriteString(e.Path)
	if e.Field != "" {
		b.WriteByte('.')
		b.WriteString(e.Field)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
