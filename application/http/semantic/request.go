package semantic

import (
	"bytes"
	"io"
	"mime"
	"net"
	nethttp "net/http"

	"http-fixture/application/http"
	"http-fixture/application/util/form"
	iolib "http-fixture/lib/io"

	"github.com/pkg/errors"
)

// Request is the view of one incoming request a handler works on.
// It is created per request and must not be shared between requests.
type Request struct {
	Method  Method
	Version http.Version

	// Path is the decoded request path, EscapedPath its wire form.
	Path        string
	EscapedPath string
	RequestURI  string
	RawQuery    string

	// Host is the Host header value, or empty when it was absent or not a valid host.
	Host string

	ServerAddr, ServerPort string
	RemoteAddr, RemotePort string

	Headers Headers
	Vars    Vars

	Query   Params
	Form    Params
	Cookies Params

	// Body is what is left of the request content.
	// It is empty when the content was consumed as form parameters.
	Body io.Reader
}

type ParseRequestOptions struct {
	// MaxURILen limits the length of the request target. Zero means no limit.
	MaxURILen uint
	// MaxContentLen truncates request content. Zero means no limit.
	MaxContentLen uint

	ServerSoftware string
}

var ErrURITooLong = errors.New("uri too long")

func RequestFrom(raw *nethttp.Request, opts ParseRequestOptions) (*Request, error) {
	if raw.URL == nil {
		return nil, errors.New("request has no url")
	}

	if opts.MaxURILen > 0 && uint(len(raw.RequestURI)) > opts.MaxURILen {
		return nil, ErrURITooLong
	}

	request := Request{
		Method:      Method(raw.Method),
		Version:     http.Version{uint(raw.ProtoMajor), uint(raw.ProtoMinor)},
		Path:        raw.URL.Path,
		EscapedPath: raw.URL.EscapedPath(),
		RequestURI:  raw.RequestURI,
		RawQuery:    raw.URL.RawQuery,
		Headers:     NewHeaders(raw.Header),
		Query:       ParamsFrom(form.Parse(raw.URL.RawQuery)),
		Host:        extractHost(raw.Host),
	}

	// net/http moves Host out of the header map.
	if request.Host != "" {
		request.Headers.Set("Host", request.Host)
	}

	if addr, ok := raw.Context().Value(nethttp.LocalAddrContextKey).(net.Addr); ok {
		request.ServerAddr, request.ServerPort = splitAddr(addr.String())
	}
	request.RemoteAddr, request.RemotePort = splitAddr(raw.RemoteAddr)

	// The first of duplicate cookies wins.
	for _, c := range raw.Cookies() {
		request.Cookies.SetDefault(c.Name, c.Value)
	}

	var body io.Reader = bytes.NewReader(nil)
	if raw.Body != nil {
		body = iolib.LimitReader(raw.Body, opts.MaxContentLen)
	}

	if request.Method == MethodPost && request.hasFormContent() {
		// A body that fails midway is taken for what was read until then.
		content, _ := iolib.ReadChunked(iolib.EOFOnError(body), iolib.DefaultChunkSize)
		request.Form = ParamsFrom(form.Parse(string(content)))
		body = bytes.NewReader(nil)
	}
	request.Body = body

	request.Vars = request.buildVars(opts.ServerSoftware)

	return &request, nil
}

// Params merges query and form parameters, form values winning on the same key.
func (r *Request) Params() Params {
	return r.Query.Merge(r.Form)
}

// Param looks key up in the merged parameters.
func (r *Request) Param(key string) (value string, ok bool) {
	if value, ok = r.Form.Get(key); ok {
		return
	}
	return r.Query.Get(key)
}

func (r *Request) hasFormContent() bool {
	ct, ok := r.Headers.Get("Content-Type")
	if !ok {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// extractHost returns host if it only holds characters allowed in
// uri-host and port, and an empty string otherwise.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.2
func extractHost(host string) string {
	if host == "" {
		return ""
	}

	for idx := 0; idx < len(host); idx++ {
		c := host[idx]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}

		switch c {
		case '-', '.', '_', '~', '!', '$', '&', '\'', '(', ')',
			'*', '+', ',', ';', '=', ':', '[', ']', '%':
			continue
		}

		return ""
	}

	return host
}

func splitAddr(addr string) (host, port string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, ""
	}
	return host, port
}
