package semantic

import (
	"io"
	"strconv"
	"time"

	"http-fixture/application/http"
	"http-fixture/application/http/semantic/status"
)

type Response struct {
	Version http.Version
	Status  status.Status

	Headers Headers

	ContentLength *uint
	Body          io.Reader

	Date time.Time
}

// EnsureHeadersSet writes the values of typed fields into the headers.
func (r *Response) EnsureHeadersSet() {
	if r.ContentLength != nil {
		r.Headers.Set("Content-Length", strconv.FormatUint(uint64(*r.ContentLength), 10))
	}
	if !r.Date.IsZero() {
		// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-6.6.1-6
		r.Headers.Set("Date", FormatDate(r.Date))
	}
}

func (r *Response) RawResponse() http.Response {
	return http.Response{
		StatusLine: http.StatusLine{
			Version:      r.Version,
			StatusCode:   r.Status.Code,
			ReasonPhrase: r.Status.ReasonPhrase,
		},
		Headers: r.Headers.ToRawFields(),
		Body:    r.Body,
	}
}
