package emit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported encodings.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSON5 Format = "json5"
	FormatJS    Format = "js"
)

// DefaultFormat is used when none is configured.
const DefaultFormat = FormatJSON

// ParseFormat normalizes s. An empty string yields DefaultFormat.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return DefaultFormat, nil
	case FormatJSON, FormatJSON5, FormatJS:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want json, json5 or js)", ErrUnknownFormat, s)
	}
}

// Extension is the file extension written for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}
