package tree

import (
	"bytes"
	"math/big"
	"strings"
)

// normalizeNumbers rewrites JSON5-only numeric literals into JSON ones so the
// standard decoder accepts them: hexadecimal, a leading plus sign, a leading
// or trailing decimal point, Infinity and NaN. Strings, comments and
// unquoted keys are copied unchanged. Infinity becomes an out-of-range
// literal that still overflows when printed; NaN becomes null.
func normalizeNumbers(src []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '\'':
			j := skipString(src, i)
			out.Write(src[i:j])
			i = j
		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			j := skipComment(src, i)
			out.Write(src[i:j])
			i = j
		case isWordByte(c):
			j := i
			for j < len(src) && isWordByte(src[j]) {
				j++
			}
			word := string(src[i:j])
			if followedByColon(src, j) {
				out.WriteString(word)
			} else {
				out.WriteString(jsonNumber(word))
			}
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.Bytes()
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c == '.' || c == '+' || c == '-' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func followedByColon(src []byte, j int) bool {
	for ; j < len(src); j++ {
		switch src[j] {
		case ' ', '\t', '\r', '\n':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// skipString returns the index just past the string literal starting at i.
func skipString(src []byte, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		}
	}
	return len(src)
}

// skipComment returns the index just past the comment starting at i.
func skipComment(src []byte, i int) int {
	if src[i+1] == '/' {
		if k := bytes.IndexByte(src[i:], '\n'); k >= 0 {
			return i + k
		}
		return len(src)
	}
	if k := bytes.Index(src[i+2:], []byte("*/")); k >= 0 {
		return i + 2 + k + 2
	}
	return len(src)
}

// jsonNumber converts one JSON5 numeric literal. Anything else (true, false,
// null, malformed input) is returned unchanged for the decoder to judge.
func jsonNumber(word string) string {
	sign, body := "", word
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = "-"
		}
		body = body[1:]
	}

	switch {
	case body == "Infinity":
		return sign + "1e400"
	case body == "NaN":
		return "null"
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		n, ok := new(big.Int).SetString(body[2:], 16)
		if !ok {
			return word
		}
		return sign + n.String()
	case body == "" || !(body[0] == '.' || (body[0] >= '0' && body[0] <= '9')):
		return word
	}

	if body[0] == '.' {
		body = "0" + body
	}
	if i := strings.IndexByte(body, '.'); i >= 0 && (i+1 == len(body) || body[i+1] == 'e' || body[i+1] == 'E') {
		body = body[:i+1] + "0" + body[i+1:]
	}
	return sign + body
}
