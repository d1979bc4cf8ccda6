package fixture

import (
	"context"
	"io"
	"log/slog"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"http-fixture/application/http/actor/server"
	"http-fixture/application/http/semantic"

	"github.com/stretchr/testify/require"
)

func newRequest(
	t *testing.T, method, target string, body io.Reader, setup ...func(*nethttp.Request),
) *semantic.Request {
	t.Helper()

	raw := httptest.NewRequest(method, target, body)
	local := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8080}
	raw = raw.WithContext(context.WithValue(raw.Context(), nethttp.LocalAddrContextKey, local))
	for _, f := range setup {
		f(raw)
	}

	request, err := semantic.RequestFrom(raw, semantic.ParseRequestOptions{})
	require.NoError(t, err)

	return request
}

func formContent(r *nethttp.Request) {
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
}

func newContext(request *semantic.Request) *server.HandleContext {
	return server.NewHandleContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), request)
}

func readBody(t *testing.T, res *semantic.Response) string {
	t.Helper()

	if res.Body == nil {
		return ""
	}
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}
