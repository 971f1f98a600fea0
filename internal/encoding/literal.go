package encoding

import (
	"strings"
	"unicode/utf8"
)

// Literal returns s escaped for use between the parentheses of a literal
// string. Parentheses and backslashes get a backslash prefix; newline,
// carriage return, tab, backspace and form feed stay as they are. Every
// byte of a multi-byte UTF-8 sequence becomes a three digit octal escape.
func Literal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(', c == ')', c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < utf8.RuneSelf:
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte('0' + c>>6)
			b.WriteByte('0' + c>>3&7)
			b.WriteByte('0' + c&7)
		}
	}
	return b.String()
}
