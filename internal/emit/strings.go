package emit

import (
	"strings"
	"unicode"
)

const hexDigits = "0123456789abcdef"

// quoteJSON quotes s like JSON.stringify: no HTML escaping, lowercase \u
// escapes for control characters.
func quoteJSON(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[r>>4])
				sb.WriteByte(hexDigits[r&0xF])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// quoteJSON5 quotes s like JSON5.stringify: single quotes unless the string
// holds more single than double quotes.
func quoteJSON5(s string) string {
	var sb strings.Builder
	singles, doubles := 0, 0
	runes := []rune(s)
	for i, r := range runes {
		switch r {
		case '\'':
			singles++
			sb.WriteRune(r)
		case '"':
			doubles++
			sb.WriteRune(r)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\v':
			sb.WriteString(`\v`)
		case 0:
			if i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
				sb.WriteString(`\x00`)
			} else {
				sb.WriteString(`\0`)
			}
		case '\u2028':
			sb.WriteString(`\u2028`)
		case '\u2029':
			sb.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				sb.WriteString(`\x`)
				sb.WriteByte(hexDigits[r>>4])
				sb.WriteByte(hexDigits[r&0xF])
				continue
			}
			sb.WriteRune(r)
		}
	}

	quote := "'"
	if singles > doubles {
		quote = `"`
	}
	return quote + strings.ReplaceAll(sb.String(), quote, `\`+quote) + quote
}

// isBareKey reports whether key can be written unquoted in the JS export:
// an ASCII letter, underscore or dollar followed by word characters or dollars.
func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// isES5Identifier reports whether key is usable unquoted by JSON5.
func isES5Identifier(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		if r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) {
			continue
		}
		if i > 0 && (unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || r == '\u200c' || r == '\u200d') {
			continue
		}
		return false
	}
	return true
}

func jsonKey(k string) string { return quoteJSON(k) }

func json5Key(k string) string {
	if isES5Identifier(k) {
		return k
	}
	return quoteJSON5(k)
}

func jsKey(k string) string {
	if isBareKey(k) {
		return k
	}
	return quoteJSON(k)
}

func nullInf(int) string { return "null" }

func json5Inf(sign int) string {
	if sign < 0 {
		return "-Infinity"
	}
	return "Infinity"
}

var (
	jsonStyle  = style{key: jsonKey, str: quoteJSON, inf: nullInf}
	json5Style = style{key: json5Key, str: quoteJSON5, inf: json5Inf, trailingComma: true}
	jsStyle    = style{key: jsKey, str: quoteJSON, inf: nullInf}
)

// BindingName derives the exported identifier for a locale in the JS
// export: separators are dropped, the following letter upper-cased, and
// "Locale" appended (zh-CN becomes zhCNLocale).
func BindingName(locale string) string {
	var sb strings.Builder
	upper := false
	for _, r := range locale {
		if r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			sb.WriteRune(r)
			continue
		}
		upper = sb.Len() > 0
	}
	name := sb.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return name + "Locale"
}
