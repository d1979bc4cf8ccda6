package fixture

import (
	"bytes"
	"io"
	"strings"

	"http-fixture/application/http/actor/server"
	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"
	iolib "http-fixture/lib/io"

	"github.com/pkg/errors"
)

// Format holds the strings placed between a key and its value, and after each entry.
type Format struct {
	Assign    string
	Separator string
}

var DefaultFormat = Format{Assign: ": ", Separator: "\n"}

// Labels of the parameter sections, in the order they are written.
const (
	LabelCookie = "COOKIE: "
	LabelGet    = "GET: "
	LabelPost   = "POST: "
	LabelPut    = "PUT: "
)

// Dump writes the interesting server variables, then cookies, query and form
// parameters of request to w. For PUT, the request content follows a final
// [LabelPut], read until the end of the stream.
//
// A body that cannot be read is treated as ending there.
// Only write failures are reported.
func Dump(w io.Writer, request *semantic.Request, format Format) error {
	b := new(strings.Builder)

	for _, key := range InterestingKeys(request.Vars) {
		writeEntry(b, "", key, request.Vars[key], format)
	}
	for _, p := range request.Cookies.Pairs() {
		writeEntry(b, LabelCookie, p.Key, p.Value, format)
	}
	for _, p := range request.Query.Pairs() {
		writeEntry(b, LabelGet, p.Key, p.Value, format)
	}
	for _, p := range request.Form.Pairs() {
		writeEntry(b, LabelPost, p.Key, p.Value, format)
	}

	if _, err := iolib.WriteFull(w, []byte(b.String())); err != nil {
		return errors.Wrap(err, "writing variables")
	}

	if request.Method != semantic.MethodPut {
		return nil
	}

	if _, err := iolib.WriteFull(w, []byte(LabelPut)); err != nil {
		return errors.Wrap(err, "writing put label")
	}
	if request.Body == nil {
		return nil
	}

	if _, err := iolib.CopyChunked(w, iolib.EOFOnError(request.Body), iolib.DefaultChunkSize); err != nil {
		return errors.Wrap(err, "writing put content")
	}

	return nil
}

func writeEntry(b *strings.Builder, label, key, value string, format Format) {
	b.WriteString(label)
	b.WriteString(key)
	b.WriteString(format.Assign)
	b.WriteString(value)
	b.WriteString(format.Separator)
}

// EchoBack answers with a plain text [Dump] of the request.
func EchoBack(c *server.HandleContext, request *semantic.Request) *semantic.Response {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, request, DefaultFormat); err != nil {
		return c.Error(err)
	}

	return contentResponse(status.OK, "text/plain", buf.Bytes())
}

func contentResponse(st status.Status, contentType string, content []byte) *semantic.Response {
	l := uint(len(content))
	res := &semantic.Response{
		Status:        st,
		ContentLength: &l,
		Body:          bytes.NewReader(content),
	}
	res.Headers.Set("Content-Type", contentType)

	return res
}
