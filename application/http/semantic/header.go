package semantic

import (
	"sort"
	"strings"

	"http-fixture/application/http"
	"http-fixture/application/util/rule"
)

// Headers maps case-insensitive field names to their values.
// The zero value is an empty set ready to use.
type Headers struct{ underlying map[string][]string }

func NewHeaders(initial map[string][]string) Headers {
	clone := make(map[string][]string, len(initial))
	for k, v := range initial {
		if rule.IsValidToken(k) {
			k = toCanonicalFieldName(k)
		}

		slice := make([]string, len(v))
		copy(slice, v)

		clone[k] = append(clone[k], slice...)
	}

	return Headers{underlying: clone}
}

// Fields returns all the key-values in the header.
func (h *Headers) Fields() (fields map[string][]string) {
	clone := make(map[string][]string, len(h.underlying))
	for k, v := range h.underlying {
		sliceClone := make([]string, len(v))
		copy(sliceClone, v)

		clone[k] = sliceClone
	}

	return clone
}

// Names returns canonical field names in ascending order.
func (h *Headers) Names() []string {
	names := make([]string, 0, len(h.underlying))
	for k := range h.underlying {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ToRawFields writes one field line per value, ordered by name.
// Values are never joined, so list-hostile fields like Set-Cookie stay intact.
func (h *Headers) ToRawFields() (fields []http.Field) {
	fields = make([]http.Field, 0, len(h.underlying))
	for _, k := range h.Names() {
		for _, v := range h.underlying[k] {
			fields = append(fields, http.Field{Name: []byte(k), Value: []byte(v)})
		}
	}

	return fields
}

// Get assumes the field is a singleton field.
// Even if key has multiple values, it will only return the first element of values.
// For list-based field, use [Headers.Values].
func (h *Headers) Get(key string) (value string, ok bool) {
	v, ok := h.underlying[h.canonical(key)]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func (h *Headers) Values(key string) (values []string, ok bool) {
	values, ok = h.underlying[h.canonical(key)]
	return
}

// Joined returns all values of key combined into one, separated by comma.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.3
func (h *Headers) Joined(key string) (value string, ok bool) {
	values, ok := h.Values(key)
	if !ok {
		return "", false
	}
	return strings.Join(values, ", "), true
}

// Set assumes the field is a singleton field.
// It overwrites existing value instead of appending to it.
// For list-based field, use [Headers.Add].
func (h *Headers) Set(key, value string) {
	h.init()
	h.underlying[h.canonical(key)] = []string{value}
}

func (h *Headers) Add(key, value string) {
	h.init()
	key = h.canonical(key)
	h.underlying[key] = append(h.underlying[key], value)
}

func (h *Headers) Del(key string) {
	delete(h.underlying, h.canonical(key))
}

func (h *Headers) init() {
	if h.underlying == nil {
		h.underlying = make(map[string][]string)
	}
}

func (h *Headers) canonical(s string) string {
	if rule.IsValidToken(s) {
		s = toCanonicalFieldName(s)
	}
	return s
}

// This only works for valid token.
func toCanonicalFieldName(s string) string {
	const capitalDiff = 'a' - 'A'
	b := []byte(s)
	upper := true
	for i, c := range b {
		if upper && 'a' <= c && c <= 'z' {
			c -= capitalDiff
		} else if !upper && 'A' <= c && c <= 'Z' {
			c += capitalDiff
		}
		b[i] = c
		upper = c == '-'
	}
	return string(b)
}
