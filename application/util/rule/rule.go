package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
	DEL  byte = 0x7F
)

var (
	OWS  = []byte{SP, HTAB}
	CRLF = []byte{CR, LF}
)

func IsAlpha(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsCTL reports whether r is a control character (CTL).
// Reference: https://datatracker.ietf.org/doc/html/rfc5234#appendix-B.1
func IsCTL(r rune) bool { return r < rune(SP) || r == rune(DEL) }

// IsFormSafe reports whether c is left as is by form urlencoding.
// Only ALPHA, DIGIT, "-", "." and "_" qualify; unlike RFC 3986 unreserved set, "~" is escaped.
func IsFormSafe(c byte) bool {
	return IsAlpha(rune(c)) || IsDigit(rune(c)) || c == '-' || c == '.' || c == '_'
}
