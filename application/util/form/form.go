package form

import "strings"

type Pair struct{ Key, Value string }

// Parse splits raw into key/value pairs in order of appearance.
// Empty segments are skipped, and a segment without "=" yields an empty value.
func Parse(raw string) []Pair {
	pairs := make([]Pair, 0)
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}

		key, value, _ := strings.Cut(segment, "=")
		key = Unescape(key)
		if key == "" {
			continue
		}

		pairs = append(pairs, Pair{Key: key, Value: Unescape(value)})
	}

	return pairs
}

// Encode serializes pairs in the given order, joined by "&".
func Encode(pairs []Pair) string {
	b := new(strings.Builder)
	for idx, p := range pairs {
		if idx > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(p.Key))
		b.WriteByte('=')
		b.WriteString(Escape(p.Value))
	}

	return b.String()
}
