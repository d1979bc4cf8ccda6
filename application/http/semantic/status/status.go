package status

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Status struct {
	Code         uint
	ReasonPhrase string
}

// WithReason returns a copy of status carrying a custom reason phrase.
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-4-9
func (s Status) WithReason(reason string) Status {
	s.ReasonPhrase = reason
	return s
}

// Successful 2XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.3
var (
	OK        = add(Status{200, "OK"})
	NoContent = add(Status{204, "No Content"})
)

// Redirection 3xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.4
var (
	MultipleChoices   = add(Status{300, "Multiple Choices"})
	MovedPermanently  = add(Status{301, "Moved Permanently"})
	Found             = add(Status{302, "Found"})
	SeeOther          = add(Status{303, "See Other"})
	NotModified       = add(Status{304, "Not Modified"})
	UseProxy          = add(Status{305, "Use Proxy"})
	_                 = add(Status{306, ""}) // Unused
	TemporaryRedirect = add(Status{307, "Temporary Redirect"})
	PermanentRedirect = add(Status{308, "Permanent Redirect"})
)

// Client Error 4xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.5
var (
	BadRequest        = add(Status{400, "Bad Request"})
	NotFound          = add(Status{404, "Not Found"})
	MethodNotAllowed  = add(Status{405, "Method Not Allowed"})
	RequestTimeout    = add(Status{408, "Request Timeout"})
	RequestURITooLong = add(Status{414, "Request URI Too Long"})
	ImATeapot         = add(Status{418, "I'm a teapot"}) // Unused. But I like the joke.
)

// Server Error 5xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.6
var (
	InternalServerError = add(Status{500, "Internal Server Error"})
	NotImplemented      = add(Status{501, "Not Implemented"})
)

// IsFinal reports whether s can end an exchange.
// A 1xx status is interim and must be followed by another response.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.2
func (s Status) IsFinal() bool { return s.Code >= 200 }

var sm = make(map[uint]*Status)

func add(status Status) Status {
	sm[status.Code] = &status
	return status
}

// FromCode looks up the registered status for code.
// Unknown codes are returned with an empty reason phrase and ok set to false.
func FromCode(code uint) (status Status, ok bool) {
	s, ok := sm[code]
	if !ok {
		return Status{Code: code, ReasonPhrase: ""}, false
	}

	return *s, true
}

// Parse parses a three-digit status code in the range 100-599.
// Surrounding whitespace is ignored.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15-2
func Parse(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return Status{}, errors.Errorf("status code should have three digits: %q", s)
	}

	code, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return Status{}, errors.Wrapf(err, "parsing status code %q", s)
	}
	if code < 100 || code > 599 {
		return Status{}, errors.Errorf("status code out of range: %d", code)
	}

	status, _ := FromCode(uint(code))
	return status, nil
}
