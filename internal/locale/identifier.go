package locale

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// ValidateIdentifier rejects locale names that cannot safely name a
// subdirectory and an output file stem.
func ValidateIdentifier(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("locale must not be empty")
	case id == "." || id == "..":
		return fmt.Errorf("locale %q is not a directory name", id)
	case strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, filepath.Separator):
		return fmt.Errorf("locale %q must not contain path separators", id)
	}
	return nil
}

// IsLanguageTag reports whether id is a well-formed BCP 47 tag. Non-tags are
// still usable as locale directory names.
func IsLanguageTag(id string) bool {
	_, err := language.Parse(id)
	return err == nil
}
