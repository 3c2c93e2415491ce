package markdown

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	attrTarget = []byte("target")
	attrRel    = []byte("rel")
)

// IsRelative reports whether dest is a relative reference that should be
// resolved against a base directory. Root-absolute paths, fragment or query
// only references and anything with a scheme or host are not.
func IsRelative(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "?") {
		return false
	}
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// IsExternal reports whether dest points to another site over http(s).
func IsExternal(dest string) bool {
	lower := strings.ToLower(dest)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "www.")
}

// ResolveDestination joins a relative dest onto baseDir using forward
// slashes. Query and fragment are kept verbatim.
func ResolveDestination(dest, baseDir string) string {
	if baseDir == "" || !IsRelative(dest) {
		return dest
	}
	p, suffix := dest, ""
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		p, suffix = dest[:i], dest[i:]
	}
	joined := path.Join(filepath.ToSlash(baseDir), p)
	if strings.HasSuffix(p, "/") {
		joined += "/"
	}
	return joined + suffix
}

type linkTransformer struct{}

func (linkTransformer) Transform(doc *gmast.Document, reader text.Reader, pc parser.Context) {
	baseDir, _ := pc.Get(keyBaseDir).(string)
	external, _ := pc.Get(keyExternalLinks).(bool)
	source := reader.Source()

	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			dest := string(node.Destination)
			node.Destination = []byte(ResolveDestination(dest, baseDir))
			if external && IsExternal(dest) {
				markExternal(node)
			}
		case *gmast.Image:
			node.Destination = []byte(ResolveDestination(string(node.Destination), baseDir))
		case *gmast.AutoLink:
			if external && node.AutoLinkType == gmast.AutoLinkURL && IsExternal(string(node.URL(source))) {
				markExternal(node)
			}
		}
		return gmast.WalkContinue, nil
	})
}

func markExternal(n gmast.Node) {
	n.SetAttribute(attrTarget, []byte("_blank"))
	n.SetAttribute(attrRel, []byte("noopener noreferrer"))
}
