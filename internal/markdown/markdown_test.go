package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_Heading(t *testing.T) {
	out, changed, err := NewRenderer(Options{}).Render("# Hi", "", false)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "<h1>Hi</h1>", out)
}

func TestRender_PlainTextUntouched(t *testing.T) {
	r := NewRenderer(Options{})
	for _, in := range []string{"text", "Save changes", "", "Tom's \"quoted\" & more"} {
		out, changed, err := r.Render(in, "", false)
		require.NoError(t, err)
		require.False(t, changed, in)
		require.Equal(t, in, out)
	}
}

func TestRender_InlineMarkupUnwrapped(t *testing.T) {
	out, changed, err := NewRenderer(Options{}).Render("Hello **world**", "", false)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "Hello <strong>world</strong>", out)
}

func TestRender_MultipleBlocksKept(t *testing.T) {
	out, _, err := NewRenderer(Options{}).Render("first\n\nsecond", "", false)
	require.NoError(t, err)
	require.Equal(t, "<p>first</p>\n<p>second</p>", out)
}

func TestRender_RelativeLinkResolved(t *testing.T) {
	out, _, err := NewRenderer(Options{}).Render("[docs](guide/intro.md#top)", "locales/en", false)
	require.NoError(t, err)
	require.Equal(t, `<a href="locales/en/guide/intro.md#top">docs</a>`, out)
}

func TestRender_AbsoluteLinkUntouched(t *testing.T) {
	out, _, err := NewRenderer(Options{}).Render("[home](/index.html)", "locales/en", false)
	require.NoError(t, err)
	require.Equal(t, `<a href="/index.html">home</a>`, out)
}

func TestRender_ImageResolved(t *testing.T) {
	out, _, err := NewRenderer(Options{}).Render("![logo](img/logo.png)", "locales/en", false)
	require.NoError(t, err)
	require.Contains(t, out, `src="locales/en/img/logo.png"`)
}

func TestRender_ExternalLinks(t *testing.T) {
	r := NewRenderer(Options{})

	out, _, err := r.Render("[site](https://example.com)", "", true)
	require.NoError(t, err)
	require.Contains(t, out, `href="https://example.com"`)
	require.Contains(t, out, `target="_blank"`)
	require.Contains(t, out, `rel="noopener noreferrer"`)

	out, _, err = r.Render("[site](https://example.com)", "", false)
	require.NoError(t, err)
	require.Equal(t, `<a href="https://example.com">site</a>`, out)

	out, _, err = r.Render("[local](page.html)", "", true)
	require.NoError(t, err)
	require.NotContains(t, out, "target=")
}

func TestRender_RawHTML(t *testing.T) {
	in := "Hello <script>alert(1)</script> **world**"

	out, _, err := NewRenderer(Options{}).Render(in, "", false)
	require.NoError(t, err)
	require.Equal(t, "Hello <script>alert(1)</script> <strong>world</strong>", out)

	out, _, err = NewRenderer(Options{Sanitize: true}).Render(in, "", false)
	require.NoError(t, err)
	require.NotContains(t, out, "script")
	require.Contains(t, out, "<strong>world</strong>")
}

func TestRender_InlineHTMLKeptWithoutSanitize(t *testing.T) {
	r := NewRenderer(Options{})

	out, changed, err := r.Render("Hello <b>world</b>", "", false)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "Hello <b>world</b>", out)

	out, _, err = r.Render("Line<br>break", "", false)
	require.NoError(t, err)
	require.Equal(t, "Line<br>break", out)
	require.NotContains(t, out, "raw HTML omitted")
}

func TestResolveDestination(t *testing.T) {
	tests := []struct {
		dest, base, want string
	}{
		{"a.md", "src/en", "src/en/a.md"},
		{"../shared/a.md", "src/en", "src/shared/a.md"},
		{"dir/", "src/en", "src/en/dir/"},
		{"a.md?x=1", "src/en", "src/en/a.md?x=1"},
		{"#anchor", "src/en", "#anchor"},
		{"/root.md", "src/en", "/root.md"},
		{"https://example.com/a", "src/en", "https://example.com/a"},
		{"mailto:me@example.com", "src/en", "mailto:me@example.com"},
		{"a.md", "", "a.md"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ResolveDestination(tt.dest, tt.base), tt.dest)
	}
}

func TestIsExternal(t *testing.T) {
	require.True(t, IsExternal("https://example.com"))
	require.True(t, IsExternal("HTTP://example.com"))
	require.True(t, IsExternal("//cdn.example.com/x"))
	require.False(t, IsExternal("page.html"))
	require.False(t, IsExternal("mailto:x@example.com"))
}
