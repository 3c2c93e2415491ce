package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	doc, err := Parse(input)
	require.NoError(t, err)
	require.False(t, doc.HasFrontmatter)
	require.Empty(t, doc.Fields)
	require.Equal(t, input, doc.Body)
}

func TestParse_YAMLFrontmatter_SplitsFieldsAndBody(t *testing.T) {
	doc, err := Parse([]byte("---\nrender: false\ntitle: Intro\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, doc.HasFrontmatter)
	require.Equal(t, "Intro", doc.Fields["title"])
	require.False(t, doc.Bool("render", true))
	require.Equal(t, []byte("# Title\n"), doc.Body)
}

func TestParse_CRLF(t *testing.T) {
	doc, err := Parse([]byte("---\r\nkey: value\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, doc.HasFrontmatter)
	require.Equal(t, "value", doc.Fields["key"])
	require.Equal(t, []byte("# Title\r\n"), doc.Body)
}

func TestParse_EmptyFrontmatterBlock(t *testing.T) {
	doc, err := Parse([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, doc.HasFrontmatter)
	require.Empty(t, doc.Fields)
	require.Equal(t, []byte("# Title\n"), doc.Body)
}

func TestParse_MissingClosingDelimiter(t *testing.T) {
	_, err := Parse([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("---\n: not yaml\n---\nbody\n"))
	require.Error(t, err)
}

func TestDocument_BoolDefault(t *testing.T) {
	doc := Document{Fields: map[string]any{"render": "yes"}}
	require.True(t, doc.Bool("render", true))
	require.False(t, doc.Bool("missing", false))
}
