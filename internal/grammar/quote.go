package grammar

import "strings"

// Quote renders s as a quoted-string, escaping '"' and '\' with a backslash.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote decodes a quoted-string literal, surrounding quotes included,
// resolving backslash escapes. It reports false when s is not a well-formed
// quoted-string. The returned string aliases s when no escapes are present.
func Unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	body := s[1 : len(s)-1]

	esc := false
	n := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			esc = true
			i++
			if i >= len(body) {
				// the backslash escaped what looked like the closing quote
				return "", false
			}
		case '"':
			return "", false
		}
		n++
	}
	if !esc {
		return body, true
	}

	b := make([]byte, 0, n)
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			i++
		}
		b = append(b, body[i])
	}
	return string(b), true
}
