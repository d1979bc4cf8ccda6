package fixture

import "http-fixture/application/http/actor/server"

// Routes maps every endpoint, under its short name and the script name
// existing client test suites request.
func Routes() *server.Mux {
	mux := server.NewMux()

	for _, path := range []string{"/", "/dispatch", "/test-lighthttpclient.php"} {
		mux.Handle(path, Dispatch)
	}
	for _, path := range []string{"/echo", "/test-echo-back.php"} {
		mux.Handle(path, EchoBack)
	}
	for _, path := range []string{"/redirect", "/test-redirect2.php"} {
		mux.Handle(path, Redirect)
	}
	mux.Handle("/"+DefaultRedirectTarget, Lorem)

	return mux
}
