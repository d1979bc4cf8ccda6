package server

import (
	"http-fixture/application/http/semantic"
	"http-fixture/application/http/semantic/status"

	"github.com/pkg/errors"
)

// Mux dispatches requests to a HandleFunc by exact path match.
type Mux struct {
	routes map[string]HandleFunc
}

func NewMux() *Mux {
	return &Mux{routes: make(map[string]HandleFunc)}
}

// Handle registers h for path, replacing any previous registration.
func (m *Mux) Handle(path string, h HandleFunc) {
	m.routes[path] = h
}

// Serve is a [HandleFunc]. Unknown paths get 404.
func (m *Mux) Serve(c *HandleContext, request *semantic.Request) *semantic.Response {
	h, ok := m.routes[request.Path]
	if !ok {
		return c.Error(status.NewError(
			errors.Errorf("no handler for path %q", request.Path),
			status.NotFound,
		))
	}

	return h(c, request)
}
