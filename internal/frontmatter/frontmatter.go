// Package frontmatter separates YAML frontmatter from Markdown documents
// referenced by translation fragments.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a Markdown file split into its frontmatter fields and body.
type Document struct {
	Fields         map[string]any
	Body           []byte
	HasFrontmatter bool
}

// Parse splits `---` delimited YAML frontmatter from content and decodes it.
// Content without a leading delimiter is returned whole as Body.
func Parse(content []byte) (Document, error) {
	raw, body, had, err := split(content)
	if err != nil {
		return Document{}, err
	}
	doc := Document{Fields: map[string]any{}, Body: body, HasFrontmatter: had}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc.Fields); err != nil {
		return Document{}, fmt.Errorf("frontmatter: %w", err)
	}
	if doc.Fields == nil {
		doc.Fields = map[string]any{}
	}
	return doc, nil
}

// Bool returns a boolean field, or def when missing or not a bool.
func (d Document) Bool(key string, def bool) bool {
	if v, ok := d.Fields[key].(bool); ok {
		return v
	}
	return def
}

func split(content []byte) (raw []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return nil, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// a closing delimiter on the last line without a newline
		if bytes.HasSuffix(content, []byte(nl+"---")) {
			return content[start : len(content)-len("---")], nil, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
