package http

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

type StatusLine struct {
	Version      Version
	StatusCode   uint
	ReasonPhrase string
}

type Response struct {
	StatusLine
	Headers []Field
	Body    io.Reader
}

// [Major, Minor]
type Version [2]uint

func (ver Version) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write([]byte("HTTP/"))
	buf.Write([]byte(strconv.FormatUint(uint64(ver[0]), 10)))
	buf.Write([]byte{'.'})
	buf.Write([]byte(strconv.FormatUint(uint64(ver[1]), 10)))
	return buf.Bytes()
}

func (ver Version) String() string { return string(ver.Text()) }

type Field struct{ Name, Value []byte }

var ErrInvalidField = errors.New("invalid field")

// Validate rejects fields that would break the message framing when written.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.5-5
func (f *Field) Validate() error {
	if len(f.Name) == 0 {
		return errors.Wrap(ErrInvalidField, "empty field name")
	}
	if bytes.ContainsAny(f.Name, ": \t\r\n") {
		return errors.Wrapf(ErrInvalidField, "field name %q", f.Name)
	}
	if bytes.ContainsAny(f.Value, "\r\n\x00") {
		return errors.Wrapf(ErrInvalidField, "field value of %q contains CR, LF or NUL", f.Name)
	}
	return nil
}

func (f *Field) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(f.Name)
	buf.Write([]byte(": "))
	buf.Write(f.Value)
	return buf.Bytes()
}
