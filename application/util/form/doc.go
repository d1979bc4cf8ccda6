// Package form implements the application/x-www-form-urlencoded serialization
// used by query strings and HTML form bodies.
//
// Unlike [net/url.ParseQuery], pairs are kept in the order they appear.
//
// Reference:
//
// - https://url.spec.whatwg.org/#application/x-www-form-urlencoded
package form
