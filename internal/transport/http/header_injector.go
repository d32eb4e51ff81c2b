package http

import (
	"net/http"
)

// HeaderInjector is an http.RoundTripper that adds a fixed header set to every request.
// The set is copied at construction and never changes afterwards;
// headers already present on a request take precedence.
type HeaderInjector struct {
	next    http.RoundTripper
	headers http.Header
}

// NewHeaderInjector wraps next with the given headers.
func NewHeaderInjector(next http.RoundTripper, headers http.Header) http.RoundTripper {
	return &HeaderInjector{
		next:    next,
		headers: headers.Clone(),
	}
}

// Headers returns a copy of the installed header set.
func (t *HeaderInjector) Headers() http.Header {
	return t.headers.Clone()
}

// RoundTrip implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	req = req.Clone(req.Context())

	for name, values := range t.headers {
		if _, exists := req.Header[name]; exists {
			continue
		}

		req.Header[name] = append([]string(nil), values...)
	}

	return t.next.RoundTrip(req)
}
