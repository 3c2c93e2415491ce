// Package markdown renders Markdown-bearing translation strings to HTML.
package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Options controls how Markdown strings are rendered.
type Options struct {
	// Sanitize cleans the rendered HTML with a UGC policy. Without it raw
	// HTML in the source is passed through as written.
	Sanitize bool
}

var (
	keyBaseDir       = parser.NewContextKey()
	keyExternalLinks = parser.NewContextKey()
)

// Renderer converts a single Markdown string to HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a goldmark-backed renderer with GFM enabled.
func NewRenderer(opts Options) *Renderer {
	rendererOpts := []renderer.Option{html.WithUnsafe()}
	r := &Renderer{}
	if opts.Sanitize {
		r.policy = newPolicy()
	}
	r.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(linkTransformer{}, 999)),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return r
}

// Render converts src. Relative link and image destinations are resolved
// against baseDir. changed is false when src holds no Markdown syntax, in
// which case src is returned untouched. A lone paragraph is unwrapped so
// inline markup stays inline.
func (r *Renderer) Render(src, baseDir string, externalLinks bool) (out string, changed bool, err error) {
	source := []byte(src)
	pc := parser.NewContext()
	pc.Set(keyBaseDir, baseDir)
	pc.Set(keyExternalLinks, externalLinks)

	doc := r.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", false, err
	}
	out = buf.String()
	if out == "" {
		return src, false, nil
	}

	if doc.ChildCount() == 1 {
		if _, ok := doc.FirstChild().(*gmast.Paragraph); ok {
			inner := strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>\n")
			if inner == string(util.EscapeHTML([]byte(strings.TrimSpace(src)))) {
				return src, false, nil
			}
			out = inner
		}
	}

	out = strings.TrimRight(out, "\n")
	if r.policy != nil {
		out = r.policy.Sanitize(out)
	}
	return out, true, nil
}
