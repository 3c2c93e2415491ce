package emit

import (
	"strings"

	"git.home.luguber.info/inful/i18nbuilder/internal/tree"
)

// style captures the differences between the three encodings.
type style struct {
	key           func(string) string
	str           func(string) string
	inf           func(sign int) string
	trailingComma bool
}

type encoder struct {
	sb     strings.Builder
	style  style
	indent string
}

func encode(n tree.Node, st style, minify bool) string {
	e := &encoder{style: st}
	if !minify {
		e.indent = "  "
	}
	e.value(n, 0)
	return e.sb.String()
}

func (e *encoder) value(n tree.Node, depth int) {
	switch v := n.(type) {
	case *tree.Mapping:
		e.mapping(v, depth)
	case *tree.Sequence:
		e.sequence(v, depth)
	case tree.String:
		e.sb.WriteString(e.style.str(v.Value))
	case tree.Number:
		s, inf := formatNumber(v.Literal)
		if inf != 0 {
			s = e.style.inf(inf)
		}
		e.sb.WriteString(s)
	case tree.Bool:
		if v {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
	default:
		e.sb.WriteString("null")
	}
}

func (e *encoder) mapping(m *tree.Mapping, depth int) {
	if m == nil || m.Len() == 0 {
		e.sb.WriteString("{}")
		return
	}
	e.sb.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		e.separator(i, depth+1)
		e.sb.WriteString(e.style.key(k))
		e.sb.WriteByte(':')
		if e.indent != "" {
			e.sb.WriteByte(' ')
		}
		e.value(v, depth+1)
		i++
	}
	e.closing(depth)
	e.sb.WriteByte('}')
}

func (e *encoder) sequence(s *tree.Sequence, depth int) {
	if s == nil || len(s.Items) == 0 {
		e.sb.WriteString("[]")
		return
	}
	e.sb.WriteByte('[')
	for i, item := range s.Items {
		e.separator(i, depth+1)
		e.value(item, depth+1)
	}
	e.closing(depth)
	e.sb.WriteByte(']')
}

func (e *encoder) separator(i, depth int) {
	if i > 0 {
		e.sb.WriteByte(',')
	}
	if e.indent != "" {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat(e.indent, depth))
	}
}

func (e *encoder) closing(depth int) {
	if e.indent == "" {
		return
	}
	if e.style.trailingComma {
		e.sb.WriteByte(',')
	}
	e.sb.WriteByte('\n')
	e.sb.WriteString(strings.Repeat(e.indent, depth))
}
