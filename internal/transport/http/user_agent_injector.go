package http

import (
	"net/http"

	"github.com/oshokin/applemusic-client/internal/utils"
)

// userAgentHeader is the HTTP header name for User-Agent.
const userAgentHeader = "User-Agent"

// UserAgentInjector is an http.RoundTripper that fills in the User-Agent header
// when the request does not carry one.
type UserAgentInjector struct {
	next              http.RoundTripper
	userAgentProvider utils.UserAgentProvider
}

// NewUserAgentInjector wraps next with User-Agent injection.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip implements the http.RoundTripper interface.
// The caller's request is cloned before it is modified.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(userAgentHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	return t.next.RoundTrip(req)
}
