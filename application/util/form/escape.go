package form

import (
	"strings"

	"http-fixture/application/util/rule"
)

func hex(c byte) (h [2]byte) {
	const hexSet = "0123456789ABCDEF"
	h[0] = hexSet[c>>4]
	h[1] = hexSet[c&0xF]
	return
}

func unhex(h [2]byte) (c byte) {
	return (_hex_to_num(h[0]) << 4) | _hex_to_num(h[1])
}

func _hex_to_num(h byte) byte {
	switch {
	case '0' <= h && h <= '9':
		return h - '0'
	case 'a' <= h && h <= 'f':
		return h - 'a' + 10
	case 'A' <= h && h <= 'F':
		return h - 'A' + 10
	}
	return 0
}

func isHex(c byte) bool {
	return rule.IsDigit(rune(c)) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Escape encodes s for use as a form key or value.
// Space becomes "+", and every byte but ALPHA, DIGIT, "-", "." and "_" is percent-encoded.
func Escape(s string) string {
	b := new(strings.Builder)
	b.Grow(len(s))

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		switch {
		case rule.IsFormSafe(c):
			b.WriteByte(c)
		case c == rule.SP:
			b.WriteByte('+')
		default:
			hex := hex(c)
			b.Write([]byte{'%', hex[0], hex[1]})
		}
	}

	return b.String()
}

// Unescape decodes a form key or value.
// "+" becomes space. Malformed percent sequences are kept literally instead of failing,
// since the input always comes from an untrusted client.
func Unescape(s string) string {
	b := new(strings.Builder)
	b.Grow(len(s))

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		switch {
		case c == '+':
			b.WriteByte(rule.SP)
		case c == '%' && idx+2 < len(s) && isHex(s[idx+1]) && isHex(s[idx+2]):
			b.WriteByte(unhex([2]byte{s[idx+1], s[idx+2]}))
			idx += 2
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
