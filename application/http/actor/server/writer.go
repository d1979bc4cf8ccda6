package server

import (
	"bytes"
	"io"
	nethttp "net/http"
	"strconv"

	"http-fixture/application/http"
	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"
	iolib "http-fixture/lib/io"

	"github.com/pkg/errors"
)

func (s *Server) writeResponse(w nethttp.ResponseWriter, r *nethttp.Request, response *semantic.Response) error {
	// If response has nil body, replace it into non-nil reader.
	if response.Body == nil {
		response.Body = bytes.NewReader(nil)
	}

	// net/http always writes the standard reason phrase.
	// For a custom one, the connection is taken over and the response written by hand.
	if hasCustomReason(response.Status) && r.ProtoMajor == 1 {
		if hj, ok := w.(nethttp.Hijacker); ok {
			return s.writeHijacked(hj, r, response)
		}
	}

	header := w.Header()
	for name, values := range response.Headers.Fields() {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	if response.ContentLength != nil {
		header.Set("Content-Length", strconv.FormatUint(uint64(*response.ContentLength), 10))
	}

	w.WriteHeader(int(response.Status.Code))

	if r.Method == nethttp.MethodHead {
		return nil
	}

	if _, err := iolib.CopyChunked(w, response.Body, iolib.DefaultChunkSize); err != nil {
		return errors.Wrap(err, "writing response body")
	}

	return nil
}

func (s *Server) writeHijacked(hj nethttp.Hijacker, r *nethttp.Request, response *semantic.Response) error {
	content, err := iolib.ReadChunked(response.Body, iolib.DefaultChunkSize)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	// Unread content would reset the connection under the client's feet.
	// Reading is bounded by the read timeout of the server.
	if r.Body != nil {
		_, _ = io.Copy(io.Discard, r.Body)
	}

	conn, _, err := hj.Hijack()
	if err != nil {
		return errors.Wrap(err, "hijacking connection")
	}
	defer conn.Close()

	l := uint(len(content))
	response.ContentLength = &l
	response.Date = s.clock.Now()
	response.Version = http.Version{uint(r.ProtoMajor), uint(r.ProtoMinor)}
	response.Headers.Set("Connection", "close")
	response.EnsureHeadersSet()

	response.Body = bytes.NewReader(content)
	if r.Method == nethttp.MethodHead {
		response.Body = nil
	}

	enc := http.NewResponseEncoder(conn, s.opts.Serve.Encode)
	if err := enc.Encode(response.RawResponse()); err != nil {
		return errors.Wrap(err, "encoding response")
	}

	return nil
}

func hasCustomReason(st status.Status) bool {
	return st.ReasonPhrase != nethttp.StatusText(int(st.Code))
}
