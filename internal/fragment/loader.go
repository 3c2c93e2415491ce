// Package fragment loads a single translation fragment file.
package fragment

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/i18nbuilder/internal/errors"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

// Transformer rewrites Markdown string leaves of a parsed fragment in place.
type Transformer interface {
	Transform(root *tree.Mapping, baseDir string, now, externalLinks bool) error
}

// TransformFunc adapts a function to Transformer.
type TransformFunc func(root *tree.Mapping, baseDir string, now, externalLinks bool) error

func (f TransformFunc) Transform(root *tree.Mapping, baseDir string, now, externalLinks bool) error {
	return f(root, baseDir, now, externalLinks)
}

// Loader reads, parses and transforms fragment files.
type Loader struct {
	transformer   Transformer
	externalLinks bool
}

// NewLoader returns a Loader. A nil transformer leaves strings untouched.
func NewLoader(t Transformer, externalLinks bool) *Loader {
	return &Loader{transformer: t, externalLinks: externalLinks}
}

// Load reads path, parses it and runs the transformer with localeDir as the
// base for relative links. Every failure is fatal for the build: unreadable
// files are filesystem errors, malformed content is a parse error naming the
// file, and transformer errors are passed through as the cause.
func (l *Loader) Load(path, localeDir string) (*tree.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileSystemError("read fragment", path, err)
	}

	root, err := tree.Parse(data)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}

	if l.transformer != nil {
		if err := l.transformer.Transform(root, localeDir, true, l.externalLinks); err != nil {
			return nil, errors.TransformFailed(path, err)
		}
	}

	slog.Debug("Loaded fragment", logfields.File(path), slog.Int("keys", root.Len()))
	return root, nil
}
