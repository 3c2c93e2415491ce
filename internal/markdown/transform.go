package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/i18nbuilder/internal/frontmatter"
	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

// Transformer rewrites Markdown string leaves of a fragment tree into HTML.
type Transformer struct {
	renderer *Renderer
}

// NewTransformer returns a Transformer using a renderer built from opts.
func NewTransformer(opts Options) *Transformer {
	return &Transformer{renderer: NewRenderer(opts)}
}

// Transform walks root and replaces string values in place. Keys and
// structure are never touched. When now is false nothing happens.
//
// A string naming a relative `.md` file that exists under baseDir is
// replaced with that document rendered (frontmatter stripped; `render: false`
// in the frontmatter inserts the body verbatim).
func (t *Transformer) Transform(root *tree.Mapping, baseDir string, now, externalLinks bool) error {
	if !now || root == nil {
		return nil
	}
	return t.mapping(root, baseDir, externalLinks, "")
}

func (t *Transformer) mapping(m *tree.Mapping, baseDir string, external bool, at string) error {
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		next, changed, err := t.node(v, baseDir, external, joinPath(at, key))
		if err != nil {
			return err
		}
		if changed {
			m.Set(key, next)
		}
	}
	return nil
}

func (t *Transformer) node(n tree.Node, baseDir string, external bool, at string) (tree.Node, bool, error) {
	switch v := n.(type) {
	case *tree.Mapping:
		return v, false, t.mapping(v, baseDir, external, at)
	case *tree.Sequence:
		for i, item := range v.Items {
			next, changed, err := t.node(item, baseDir, external, at+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, false, err
			}
			if changed {
				v.Items[i] = next
			}
		}
		return v, false, nil
	case tree.String:
		out, changed, err := t.str(v.Value, baseDir, external)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", at, err)
		}
		if !changed {
			return v, false, nil
		}
		return tree.String{Value: out}, true, nil
	default:
		return n, false, nil
	}
}

func (t *Transformer) str(s, baseDir string, external bool) (string, bool, error) {
	if path, ok := documentRef(s, baseDir); ok {
		return t.document(path, external)
	}
	return t.renderer.Render(s, baseDir, external)
}

func (t *Transformer) document(path string, external bool) (string, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	doc, err := frontmatter.Parse(content)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", path, err)
	}
	body := string(doc.Body)
	if !doc.Bool("render", true) {
		return body, true, nil
	}
	out, _, err := t.renderer.Render(body, filepath.Dir(path), external)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", path, err)
	}
	return out, true, nil
}

// documentRef reports whether s names an existing Markdown document
// inside baseDir.
func documentRef(s, baseDir string) (string, bool) {
	if strings.ContainsAny(s, "\r\n") || !strings.HasSuffix(strings.ToLower(s), ".md") || !IsRelative(s) {
		return "", false
	}
	p := filepath.Join(baseDir, filepath.FromSlash(s))
	rel, err := filepath.Rel(filepath.Clean(baseDir), p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	st, err := os.Stat(p)
	if err != nil || !st.Mode().IsRegular() {
		return "", false
	}
	return p, true
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
