package svgscene

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDocument is returned when the input has no root element.
	ErrEmptyDocument = errors.New("invalid svg document: no root element")

	// ErrUnresolvedReference is returned in StrictErrorMode when a `use`
	// element references an id which is not (yet) defined.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// ErrorMode determines how the builder reacts to `use` elements
// whose reference can't be resolved.
// Unsupported elements and malformed shapes are always skipped,
// and only logged in WarnErrorMode and StrictErrorMode.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unresolved references.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs and skips unresolved references.
	WarnErrorMode
	// StrictErrorMode rejects documents with unresolved references.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of ErrorMode.String.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn", "":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return WarnErrorMode, fmt.Errorf("unknown error mode %q (expected ignore, warn or strict)", s)
}
