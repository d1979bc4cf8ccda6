// Package markup removes tag-like markup from untrusted text.
package markup

import "strings"

// StripTags removes every "<...>" substring from s.
// An unterminated tag swallows the rest of s, and a stray ">" is dropped,
// so the result never contains '<' or '>'.
// Quoted attribute values inside a tag may contain '>'.
//
// This is not an HTML sanitizer: entities and the text between tags are kept as is.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}

	b := new(strings.Builder)
	b.Grow(len(s))

	inTag := false
	var quote byte
	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		switch {
		case inTag && quote != 0:
			if c == quote {
				quote = 0
			}
		case inTag:
			switch c {
			case '"', '\'':
				quote = c
			case '>':
				inTag = false
			}
		case c == '<':
			inTag = true
		case c == '>':
			// stray
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
