// Package emit serializes combined locale trees and writes them to disk.
package emit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/i18nbuilder/internal/errors"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

// Emitter writes one output file per locale into a directory.
type Emitter struct {
	outputDir string
	format    Format
	minify    bool
}

// New returns an Emitter. An empty format means DefaultFormat.
func New(outputDir string, format Format, minify bool) *Emitter {
	if format == "" {
		format = DefaultFormat
	}
	return &Emitter{outputDir: outputDir, format: format, minify: minify}
}

// Path returns the destination file for locale.
func (e *Emitter) Path(locale string) string {
	return filepath.Join(e.outputDir, locale+"."+e.format.Extension())
}

// Render serializes root in the configured format.
func (e *Emitter) Render(locale string, root *tree.Mapping) ([]byte, error) {
	return Render(root, locale, e.format, e.minify)
}

// Emit renders root and writes it, creating the output directory when
// needed and overwriting any existing file.
func (e *Emitter) Emit(locale string, root *tree.Mapping) (string, error) {
	data, err := e.Render(locale, root)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", errors.FileSystemError("create output directory", e.outputDir, err)
	}
	path := e.Path(locale)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.FileSystemError("write output", path, err)
	}

	slog.Debug("Wrote locale file", logfields.Locale(locale), logfields.File(path), logfields.Format(string(e.format)), slog.Int("bytes", len(data)))
	return path, nil
}

// Render serializes root for locale in format.
func Render(root *tree.Mapping, locale string, format Format, minify bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return []byte(encode(root, jsonStyle, minify)), nil
	case FormatJSON5:
		return []byte(encode(root, json5Style, minify)), nil
	case FormatJS:
		name := BindingName(locale)
		body := encode(root, jsStyle, minify)
		return []byte(fmt.Sprintf("export const %s = %s;\nexport default %s;\n", name, body, name)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
