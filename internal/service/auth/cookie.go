package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/oshokin/applemusic-client/internal/cookiefile"
	"github.com/oshokin/applemusic-client/internal/logger"
)

// hasMediaUserToken reports whether the signed-in cookie is present, without logging.
func (s *ServiceImpl) hasMediaUserToken(ctx context.Context) bool {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "hasMediaUserToken panic recovered: %v", r)
		}
	}()

	cookies, err := s.page.Cookies([]string{appleMusicHomeURL})
	if err != nil {
		return false
	}

	for _, cookie := range cookies {
		if cookie.Name == mediaUserTokenCookieName && cookie.Value != "" {
			return true
		}
	}

	return false
}

// collectCookies reads every cookie the web player can see.
func (s *ServiceImpl) collectCookies(ctx context.Context) ([]*http.Cookie, error) {
	networkCookies, err := s.page.Cookies([]string{appleMusicHomeURL})
	if err != nil {
		return nil, err
	}

	if logger.IsDebugLevel() {
		for i, cookie := range networkCookies {
			logger.Debugf(ctx, "Cookie %d: name=%s, domain=%s", i+1, cookie.Name, cookie.Domain)
		}
	}

	cookies := toHTTPCookies(networkCookies)

	token := cookiefile.Find(cookies, mediaUserTokenCookieName)
	if token == nil || token.Value == "" {
		return nil, ErrAuthCookieNotFound
	}

	return cookies, nil
}

// toHTTPCookies converts browser cookies, keeping domain, path, flags and expiry.
func toHTTPCookies(networkCookies []*proto.NetworkCookie) []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(networkCookies))

	for _, networkCookie := range networkCookies {
		if networkCookie == nil {
			continue
		}

		cookie := &http.Cookie{
			Name:     networkCookie.Name,
			Value:    networkCookie.Value,
			Domain:   networkCookie.Domain,
			Path:     networkCookie.Path,
			Secure:   networkCookie.Secure,
			HttpOnly: networkCookie.HTTPOnly,
		}

		if !networkCookie.Session && networkCookie.Expires > 0 {
			cookie.Expires = time.Unix(int64(networkCookie.Expires), 0)
		}

		cookies = append(cookies, cookie)
	}

	return cookies
}

// ensureStorefrontCookie adds an itua cookie for storefront when the browser did not set one.
func ensureStorefrontCookie(ctx context.Context, cookies []*http.Cookie, storefront string) []*http.Cookie {
	if existing := cookiefile.Find(cookies, storefrontCookieName); existing != nil && existing.Value != "" {
		return cookies
	}

	logger.Warnf(ctx, "No %s cookie after login, using storefront '%s'", storefrontCookieName, storefront)

	return append(cookies, &http.Cookie{
		Name:   storefrontCookieName,
		Value:  strings.ToUpper(storefront),
		Domain: storefrontCookieDomain,
		Path:   "/",
		Secure: true,
	})
}
