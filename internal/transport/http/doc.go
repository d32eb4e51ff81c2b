// Package http provides the http.RoundTripper chain shared by the API clients:
// a fixed header set installed once per session, User-Agent injection and
// debug-level request/response dumps with credentials redacted.
// It also defines ResponseError, the error returned when a response breaks
// the contract a client expects from it.
package http
