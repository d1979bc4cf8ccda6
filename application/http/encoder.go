package http

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"http-fixture/application/util/rule"

	"github.com/pkg/errors"
)

type EncodeOptions struct {
	// UseSoleLF specifies wheter a single LF character should be used as a line terminator.
	//
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-3
	UseSoleLF bool
}

var DefaultEncodeOptions = EncodeOptions{
	UseSoleLF: false,
}

type MessageEncoder struct {
	bw   *bufio.Writer
	opts EncodeOptions
}

func (me *MessageEncoder) writeLine(line []byte) error {
	if _, err := me.bw.Write(line); err != nil {
		return errors.Wrap(err, "writing line")
	}

	term := rule.CRLF
	if me.opts.UseSoleLF {
		term = term[1:]
	}

	if _, err := me.bw.Write(term); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}

func (me *MessageEncoder) encodeHeaders(headers []Field) error {
	for _, field := range headers {
		if err := field.Validate(); err != nil {
			return err
		}
		if err := me.writeLine(field.Text()); err != nil {
			return errors.Wrap(err, "writing field")
		}
	}

	// Write a empty line as all the headers are written.
	if err := me.writeLine(nil); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}

type ResponseEncoder struct{ MessageEncoder }

func NewResponseEncoder(w io.Writer, opts EncodeOptions) *ResponseEncoder {
	return &ResponseEncoder{
		MessageEncoder{
			bw:   bufio.NewWriter(w),
			opts: opts,
		},
	}
}

// Encode writes the whole response. A nil body is written as an empty one.
func (re *ResponseEncoder) Encode(response Response) error {
	if err := re.encodeStatusLine(response.StatusLine); err != nil {
		return errors.Wrap(err, "encoding status line")
	}

	if err := re.encodeHeaders(response.Headers); err != nil {
		return errors.Wrap(err, "encoding headers")
	}

	if response.Body != nil {
		if _, err := re.bw.ReadFrom(response.Body); err != nil {
			return errors.Wrap(err, "writing response body")
		}
	}

	if err := re.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing response")
	}

	return nil
}

func (re *ResponseEncoder) encodeStatusLine(statLine StatusLine) error {
	// The reason phrase is free text, but must not end the line early.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-4-1
	if bytes.ContainsAny([]byte(statLine.ReasonPhrase), "\r\n") {
		return errors.Errorf("reason phrase contains line terminator: %q", statLine.ReasonPhrase)
	}

	buf := bytes.NewBuffer(nil)

	buf.Write(statLine.Version.Text())
	buf.WriteByte(rule.SP)
	buf.Write([]byte(strconv.FormatUint(uint64(statLine.StatusCode), 10)))
	buf.WriteByte(rule.SP)
	buf.Write([]byte(statLine.ReasonPhrase))

	if err := re.writeLine(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing line")
	}

	return nil
}
