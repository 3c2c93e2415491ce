// Package locale discovers translation fragment files for a locale.
package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
)

// FragmentExtensions lists the accepted fragment file extensions.
var FragmentExtensions = []string{".json", ".json5", ".jsonc"}

// IsFragmentFile reports whether name carries one of FragmentExtensions.
// Matching is case-sensitive.
func IsFragmentFile(name string) bool {
	return slices.Contains(FragmentExtensions, filepath.Ext(name))
}

// Dir returns the source directory for locale under sourceRoot.
func Dir(sourceRoot, locale string) string {
	return filepath.Join(sourceRoot, locale)
}

// Resolve returns fragment files under sourceRoot/locale in lexical path
// order. A missing locale directory yields an empty result. Hidden files and
// directories (leading dot) are skipped.
func Resolve(sourceRoot, locale string) ([]string, error) {
	root := Dir(sourceRoot, locale)

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Locale directory not found", logfields.Locale(locale), logfields.Path(root))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{}, nil
	}

	// WalkDir does not descend into a symlinked root; walk its target and
	// report paths under root.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	files := make([]string, 0)
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path != walkRoot && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsFragmentFile(d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() {
			// symlinks count when they point at a regular file
			st, err := os.Stat(path)
			if err != nil || !st.Mode().IsRegular() {
				return nil
			}
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.SortFunc(files, func(a, b string) int {
		return strings.Compare(filepath.ToSlash(a), filepath.ToSlash(b))
	})

	slog.Debug("Resolved locale fragments", logfields.Locale(locale), logfields.Fragments(len(files)))
	return files, nil
}
