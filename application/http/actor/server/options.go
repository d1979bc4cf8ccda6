package server

import (
	"time"

	"http-fixture/application/http"
	"http-fixture/application/http/semantic"
)

type Options struct {
	Serve   ServeOptions
	Timeout TimeoutOptions

	// ShutdownTimeout bounds how long Close waits for in-flight requests.
	// Zero waits until they are all done.
	ShutdownTimeout time.Duration
}

type ServeOptions struct {
	Encode http.EncodeOptions
	Parse  semantic.ParseRequestOptions
}

type TimeoutOptions struct {
	IdleTimeout       time.Duration
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
}
