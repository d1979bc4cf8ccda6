// Package fixture implements the endpoints an HTTP client test suite talks to:
// an echo of the request as the server saw it, an artificial redirect that
// also sets a cookie, and a combined endpoint choosing between the two.
//
// Every handler is a [server.HandleFunc] and keeps no state between requests.
package fixture
