package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	nethttp "net/http"
	"strings"
	"testing"
	"time"

	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

const testShutdownTimeout = 5 * time.Second

type ServerTestSuite struct {
	suite.Suite

	clock  *clock.Mock
	server *Server
	handle HandleFunc
	closed bool

	client  *nethttp.Client
	baseURL string
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.clock = clock.NewMock()
	s.closed = false

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	opts := Options{
		Serve: ServeOptions{
			Parse: semantic.ParseRequestOptions{MaxURILen: 1024},
		},
		ShutdownTimeout: testShutdownTimeout,
	}
	handle := func(c *HandleContext, request *semantic.Request) *semantic.Response {
		return s.handle(c, request)
	}

	s.server = New(lis, slog.New(slog.NewTextHandler(io.Discard, nil)), s.clock, handle, opts)
	s.server.Start()

	s.baseURL = "http://" + s.server.Addr().String()
	s.client = &nethttp.Client{
		Transport: &nethttp.Transport{DisableKeepAlives: true},
		CheckRedirect: func(req *nethttp.Request, via []*nethttp.Request) error {
			return nethttp.ErrUseLastResponse
		},
	}
}

func (s *ServerTestSuite) TearDownTest() {
	s.client.CloseIdleConnections()
	if !s.closed {
		s.NoError(s.server.Close())
	}

	goleak.VerifyNone(s.T())
}

func (s *ServerTestSuite) do(req *nethttp.Request) (*nethttp.Response, string) {
	res, err := s.client.Do(req)
	s.Require().NoError(err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	s.Require().NoError(err)

	return res, string(b)
}

func (s *ServerTestSuite) newRequest(method, target string, body io.Reader) *nethttp.Request {
	req, err := nethttp.NewRequest(method, s.baseURL+target, body)
	s.Require().NoError(err)
	return req
}

func textResponse(st status.Status, content string) *semantic.Response {
	l := uint(len(content))
	res := &semantic.Response{
		Status:        st,
		ContentLength: &l,
		Body:          strings.NewReader(content),
	}
	res.Headers.Set("Content-Type", "text/plain")
	return res
}

func (s *ServerTestSuite) TestServe() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		s.Equal(semantic.MethodGet, request.Method)
		s.Equal("/path", request.Path)
		s.Equal("127.0.0.1", request.ServerAddr)
		s.Equal(s.server.Addr().String(), request.Host)

		v, ok := request.Query.Get("a")
		s.True(ok)
		s.Equal("1", v)

		return textResponse(status.OK, "hello")
	}

	res, body := s.do(s.newRequest("GET", "/path?a=1", nil))
	s.Equal("200 OK", res.Status)
	s.Equal(int64(5), res.ContentLength)
	s.Equal("text/plain", res.Header.Get("Content-Type"))
	s.Equal("hello", body)
}

func (s *ServerTestSuite) TestCustomReason() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		l := uint(0)
		res := &semantic.Response{
			Status:        status.SeeOther.WithReason("Artificial redirect"),
			ContentLength: &l,
		}
		res.Headers.Set("Location", "http://example.com/target")
		res.Headers.Set("Set-Cookie", "redirect2=ok")
		return res
	}

	res, body := s.do(s.newRequest("GET", "/", nil))
	s.Equal("303 Artificial redirect", res.Status)
	s.Equal(303, res.StatusCode)
	s.Equal("http://example.com/target", res.Header.Get("Location"))
	s.Equal("Thu, 01 Jan 1970 00:00:00 GMT", res.Header.Get("Date"))
	s.True(res.Close)
	s.Empty(body)

	cookies := res.Cookies()
	s.Require().Len(cookies, 1)
	s.Equal("redirect2", cookies[0].Name)
	s.Equal("ok", cookies[0].Value)
}

func (s *ServerTestSuite) TestCustomReasonWithUnreadRequestBody() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		return textResponse(status.OK.WithReason("Fine"), "content")
	}

	payload := bytes.Repeat([]byte("x"), 64<<10)
	res, body := s.do(s.newRequest("POST", "/", bytes.NewReader(payload)))
	s.Equal("200 Fine", res.Status)
	s.Equal(int64(len("content")), res.ContentLength)
	s.Equal("content", body)
}

func (s *ServerTestSuite) TestCustomReasonWithLargeRequestBody() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		return textResponse(status.SeeOther.WithReason("Artificial redirect"), "")
	}

	payload := bytes.Repeat([]byte("0123456789abcdef"), 6<<16)
	res, body := s.do(s.newRequest("PUT", "/", bytes.NewReader(payload)))
	s.Equal("303 Artificial redirect", res.Status)
	s.Empty(body)
}

func (s *ServerTestSuite) TestCustomReasonHead() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		return textResponse(status.OK.WithReason("Fine"), "content")
	}

	res, body := s.do(s.newRequest("HEAD", "/", nil))
	s.Equal("200 Fine", res.Status)
	s.Empty(body)
}

func (s *ServerTestSuite) TestHead() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		return textResponse(status.OK, "content")
	}

	res, body := s.do(s.newRequest("HEAD", "/", nil))
	s.Equal("200 OK", res.Status)
	s.Empty(body)
}

func (s *ServerTestSuite) TestChunkedRequestBody() {
	payload := bytes.Repeat([]byte("0123456789"), 500)

	var got []byte
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		b, err := io.ReadAll(request.Body)
		s.NoError(err)
		got = b
		return textResponse(status.OK, "done")
	}

	pr, pw := io.Pipe()
	go func() {
		for idx := 0; idx < len(payload); idx += 100 {
			if _, err := pw.Write(payload[idx : idx+100]); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.Close()
	}()

	res, body := s.do(s.newRequest("PUT", "/", pr))
	s.Equal("200 OK", res.Status)
	s.Equal("done", body)
	s.Equal(payload, got)
}

func (s *ServerTestSuite) TestURITooLong() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		s.Fail("handler should not be called")
		return textResponse(status.OK, "")
	}

	res, _ := s.do(s.newRequest("GET", "/?a="+strings.Repeat("a", 2048), nil))
	s.Equal("414 Request URI Too Long", res.Status)
}

func (s *ServerTestSuite) TestHandlerPanic() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		panic("boom")
	}

	res, body := s.do(s.newRequest("GET", "/", nil))
	s.Equal("500 Internal Server Error", res.Status)
	s.Contains(body, "boom")
}

func (s *ServerTestSuite) TestNilResponse() {
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		return nil
	}

	res, body := s.do(s.newRequest("GET", "/", nil))
	s.Equal("500 Internal Server Error", res.Status)
	s.Equal(ErrNilResponse.Error(), body)
}

func (s *ServerTestSuite) TestCloseTimeout() {
	entered := make(chan struct{})
	release := make(chan struct{})
	s.handle = func(c *HandleContext, request *semantic.Request) *semantic.Response {
		close(entered)
		<-release
		return textResponse(status.OK, "late")
	}

	served := make(chan struct{})
	go func() {
		defer close(served)
		res, err := s.client.Do(s.newRequest("GET", "/", nil))
		if err == nil {
			res.Body.Close()
		}
	}()
	<-entered

	closeErr := make(chan error, 1)
	go func() { closeErr <- s.server.Close() }()
	s.closed = true

	var err error
	s.Eventually(func() bool {
		s.clock.Add(testShutdownTimeout)
		select {
		case err = <-closeErr:
			return true
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	s.ErrorIs(err, context.DeadlineExceeded)

	close(release)
	<-served
}

func TestHasCustomReason(t *testing.T) {
	for code := uint(100); code < 600; code++ {
		st, ok := status.FromCode(code)
		if !ok || st.ReasonPhrase == "" {
			continue
		}
		assert.False(t, hasCustomReason(st), "status %d", code)
	}

	assert.True(t, hasCustomReason(status.SeeOther.WithReason("Artificial redirect")))
	assert.True(t, hasCustomReason(status.Status{Code: 399, ReasonPhrase: "Artificial redirect"}))
}
