package server

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"sync"

	"http-fixture/application/http/semantic"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

type Server struct {
	l   net.Listener
	srv *nethttp.Server
	wg  sync.WaitGroup

	logger *slog.Logger
	opts   Options

	handle HandleFunc
	clock  clock.Clock
}

func New(
	l net.Listener,
	logger *slog.Logger,
	clock clock.Clock,
	handle HandleFunc,
	opts Options,
) *Server {
	s := &Server{
		l:      l,
		logger: logger,
		opts:   opts,
		handle: handle,
		clock:  clock,
	}

	s.srv = &nethttp.Server{
		Handler:           s,
		IdleTimeout:       opts.Timeout.IdleTimeout,
		ReadTimeout:       opts.Timeout.ReadTimeout,
		ReadHeaderTimeout: opts.Timeout.ReadHeaderTimeout,
		WriteTimeout:      opts.Timeout.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return s
}

func (s *Server) Addr() net.Addr { return s.l.Addr() }

func (s *Server) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.srv.Serve(s.l)
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			s.logger.Error(
				"unexpected error when accepting connection",
				"error", err.Error(),
			)
		}
	}()
}

// Close stops accepting connections and waits for in-flight requests,
// at most for [Options.ShutdownTimeout] when it is set.
func (s *Server) Close() error {
	ctx := context.Background()
	if timeout := s.opts.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.clock.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := s.srv.Shutdown(ctx)
	s.wg.Wait()
	if err != nil {
		return errors.Wrap(err, "shutting down server")
	}

	return nil
}

func (s *Server) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	start := s.clock.Now()
	logger := s.logger.With("remote", r.RemoteAddr)

	var response *semantic.Response

	request, err := semantic.RequestFrom(r, s.opts.Serve.Parse)
	hctx := NewHandleContext(r.Context(), logger, request)
	if err != nil {
		logger.Debug("rejecting request", "error", err)
		response = hctx.Error(toStatusError(err))
	} else {
		// Actually handle the request.
		response, err = hctx.doHandle(s.handle)
		if err != nil {
			logger.Error("unexpected error while handling request", "error", err)
			hctx._fatalError = nil
			response = hctx.Error(err)
		}
	}

	if err := s.writeResponse(w, r, response); err != nil {
		logger.Error("unexpected error while writing response", "error", err)
	}

	logger.Info("served request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", response.Status.Code,
		"elapsed", s.clock.Since(start),
	)
}
