package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent header value for outgoing requests.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgentProvider always returns the same User-Agent.
type StaticUserAgentProvider struct {
	userAgent string
}

// NewStaticUserAgentProvider returns a provider for userAgent.
// An empty userAgent falls back to fallback, so a blank config value never produces an empty header.
func NewStaticUserAgentProvider(userAgent, fallback string) UserAgentProvider {
	if userAgent == "" {
		userAgent = fallback
	}

	return &StaticUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns the configured User-Agent.
func (p *StaticUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
