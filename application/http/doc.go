// Package http holds the wire-level pieces of HTTP/1.x the fixture server
// writes by itself: status line, field lines and the response encoder.
//
// Everything else (connection handling, request parsing) is left to [net/http].
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http
