package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolve_LexicalOrderAndExtensions(t *testing.T) {
	root := t.TempDir()
	en := filepath.Join(root, "en")
	writeFile(t, filepath.Join(en, "b.json"), "{}")
	writeFile(t, filepath.Join(en, "a.json5"), "{}")
	writeFile(t, filepath.Join(en, "nested", "c.jsonc"), "{}")
	writeFile(t, filepath.Join(en, "a", "z.json"), "{}")
	writeFile(t, filepath.Join(en, "notes.md"), "# ignored")
	writeFile(t, filepath.Join(en, "upper.JSON"), "{}")
	writeFile(t, filepath.Join(en, ".hidden.json"), "{}")
	writeFile(t, filepath.Join(en, ".cache", "x.json"), "{}")
	// a directory with a fragment-like name is not a file
	require.NoError(t, os.MkdirAll(filepath.Join(en, "dir.json"), 0o755))

	files, err := Resolve(root, "en")
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(en, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	require.Equal(t, []string{"a.json5", "a/z.json", "b.json", "nested/c.jsonc"}, rel)
}

func TestResolve_MissingLocaleIsEmpty(t *testing.T) {
	files, err := Resolve(t.TempDir(), "fr")
	require.NoError(t, err)
	require.NotNil(t, files)
	require.Empty(t, files)
}

func TestResolve_LocalesAreDisjoint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "a.json"), "{}")
	writeFile(t, filepath.Join(root, "de", "a.json"), "{}")

	files, err := Resolve(root, "de")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "de", "a.json")}, files)
}

func TestResolve_SymlinkedLocaleDirectory(t *testing.T) {
	shared := t.TempDir()
	writeFile(t, filepath.Join(shared, "b.json"), "{}")
	writeFile(t, filepath.Join(shared, "nested", "a.json5"), "{}")

	root := t.TempDir()
	require.NoError(t, os.Symlink(shared, filepath.Join(root, "en")))

	files, err := Resolve(root, "en")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "en", "b.json"),
		filepath.Join(root, "en", "nested", "a.json5"),
	}, files)
}

func TestIsFragmentFile(t *testing.T) {
	require.True(t, IsFragmentFile("x.json"))
	require.True(t, IsFragmentFile("x.json5"))
	require.True(t, IsFragmentFile("x.jsonc"))
	require.False(t, IsFragmentFile("x.yaml"))
	require.False(t, IsFragmentFile("json"))
}

func TestValidateIdentifier(t *testing.T) {
	require.NoError(t, ValidateIdentifier("en"))
	require.NoError(t, ValidateIdentifier("zh-CN"))
	require.Error(t, ValidateIdentifier(""))
	require.Error(t, ValidateIdentifier(".."))
	require.Error(t, ValidateIdentifier("en/us"))
}

func TestIsLanguageTag(t *testing.T) {
	require.True(t, IsLanguageTag("en"))
	require.True(t, IsLanguageTag("zh-CN"))
	require.False(t, IsLanguageTag("not_a_tag!"))
}
