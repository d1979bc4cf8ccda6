// Command fixture-server serves the echo and redirect fixtures
// HTTP client test suites run against.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"http-fixture/application/fixture"
	"http-fixture/application/http/actor/server"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

type config struct {
	addr     string
	logLevel slog.Level

	opts server.Options
}

func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("fixture-server", flag.ContinueOnError)
	fs.StringVar(&cfg.addr, "addr", "127.0.0.1:8080", "address to listen on")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelInfo, "log level (debug, info, warn, error)")

	timeout := &cfg.opts.Timeout
	fs.DurationVar(&timeout.ReadTimeout, "read-timeout", 30*time.Second, "maximum duration for reading a request")
	fs.DurationVar(&timeout.ReadHeaderTimeout, "read-header-timeout", 10*time.Second, "maximum duration for reading request headers")
	fs.DurationVar(&timeout.WriteTimeout, "write-timeout", 30*time.Second, "maximum duration for writing a response")
	fs.DurationVar(&timeout.IdleTimeout, "idle-timeout", 60*time.Second, "how long an idle keep-alive connection is kept")
	fs.DurationVar(&cfg.opts.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "how long to wait for in-flight requests on shutdown, 0 waits forever")

	parse := &cfg.opts.Serve.Parse
	fs.UintVar(&parse.MaxURILen, "max-uri-len", 8192, "maximum request target length, 0 for no limit")
	fs.UintVar(&parse.MaxContentLen, "max-content-len", 0, "request content beyond this many bytes is ignored, 0 for no limit")
	fs.StringVar(&parse.ServerSoftware, "server-software", "http-fixture", "value of SERVER_SOFTWARE")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	return cfg, nil
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	l, err := net.Listen("tcp", cfg.addr)
	if err != nil {
		return errors.Wrap(err, "listening")
	}

	srv := server.New(l, logger, clock.New(), fixture.Routes().Serve, cfg.opts)
	srv.Start()
	logger.Info("serving fixtures", "addr", srv.Addr().String())

	<-ctx.Done()
	logger.Info("shutting down")

	return srv.Close()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
