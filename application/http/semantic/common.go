package semantic

import "time"

type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// IsFetch reports whether the method only retrieves a representation.
func (m Method) IsFetch() bool { return m == MethodGet || m == MethodHead }

// Preferred format: IMF-fixdate
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.7
const imfFixDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

func FormatDate(t time.Time) string { return t.UTC().Format(imfFixDateFormat) }
