package attr

import (
	"strconv"
	"strings"
)

// EscapeString returns s with XML-significant characters replaced by entity
// references: the five predefined entities plus numeric references for
// control bytes below 0x20 other than tab, newline, and carriage return.
// Bytes at 0x20 and above pass through untouched, multi-byte runes included,
// so the escaping is reversible byte for byte. When nothing needs escaping
// the input string is returned as-is.
// Complexity: O(len(s))
func EscapeString(s string) string {
	i := firstEscape(s)
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			b.WriteString("&amp;")
		case c == '<':
			b.WriteString("&lt;")
		case c == '>':
			b.WriteString("&gt;")
		case c == '"':
			b.WriteString("&quot;")
		case c == '\'':
			b.WriteString("&apos;")
		case needsRef(c):
			b.WriteString("&#x")
			b.WriteString(strconv.FormatUint(uint64(c), 16))
			b.WriteByte(';')
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// firstEscape locates the first byte EscapeString must rewrite, or -1.
func firstEscape(s string) int {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '&' || c == '<' || c == '>' || c == '"' || c == '\'':
			return i
		case needsRef(c):
			return i
		}
	}

	return -1
}

// needsRef reports control bytes that must become numeric references.
// Tab, newline, and carriage return stay literal.
func needsRef(c byte) bool {
	return c < 0x20 && c != '\t' && c != '\n' && c != '\r'
}
