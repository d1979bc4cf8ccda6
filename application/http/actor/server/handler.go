package server

import (
	"context"
	"log/slog"
	"strings"

	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"

	"github.com/pkg/errors"
)

type HandleFunc func(c *HandleContext, request *semantic.Request) *semantic.Response

type HandleContext struct {
	ctx    context.Context
	logger *slog.Logger

	request *semantic.Request

	// Should only be used inside this struct.
	_fatalError error
}

// NewHandleContext creates a context for calling a [HandleFunc] outside of a [Server].
func NewHandleContext(ctx context.Context, logger *slog.Logger, request *semantic.Request) *HandleContext {
	return &HandleContext{ctx: ctx, logger: logger, request: request}
}

var ErrNilResponse = errors.New("nil response is forbidden")

func (c *HandleContext) doHandle(handle HandleFunc) (res *semantic.Response, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("handler panicked: %s", e)
		}
	}()

	response := handle(c, c.request)
	if c._fatalError != nil {
		return nil, c._fatalError
	}

	if response == nil {
		return nil, ErrNilResponse
	}

	return response, nil
}

func (c *HandleContext) Context() context.Context { return c.ctx }
func (c *HandleContext) Logger() *slog.Logger     { return c.logger }

// Error converts err into a response.
// A [status.Error] keeps its status, anything else becomes 500.
func (c *HandleContext) Error(err error) *semantic.Response {
	if err == nil {
		c._fatalError = errors.New("using Error() with nil error is forbidden")
		return nil
	}

	if statusErr := new(status.Error); errors.As(err, statusErr) {
		return statusErrToResponse(*statusErr)
	}

	return statusErrToResponse(
		status.NewError(err, status.InternalServerError),
	)
}

// toStatusError converts error returned while reading a request into [status.Error].
// If it isn't any specific error, it will return error with [status.BadRequest].
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-9
func toStatusError(err error) status.Error {
	if errors.Is(err, semantic.ErrURITooLong) {
		// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-3-4
		return status.NewError(err, status.RequestURITooLong)
	}

	return status.NewError(err, status.BadRequest)
}

func statusErrToResponse(se status.Error) (res *semantic.Response) {
	res = &semantic.Response{
		Status: se.Status,
	}

	if se.Cause() != nil {
		content := se.Cause().Error()
		l := uint(len(content))

		res.Headers.Set("Content-Type", "text/plain; charset=utf-8")
		res.ContentLength = &l
		res.Body = strings.NewReader(content)
	}

	return
}
