package auth

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-rod/rod"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// appleMusicHomeURL is the web player the user signs in on.
	appleMusicHomeURL = "https://music.apple.com/"

	// appleDomain covers the web player and the Apple ID sign-in pages.
	appleDomain = "apple.com"

	// mediaUserTokenCookieName is set once the user is signed in.
	mediaUserTokenCookieName = "media-user-token"

	// storefrontCookieName carries the account storefront.
	storefrontCookieName = "itua"

	// storefrontCookieDomain is where the web player keeps the storefront cookie.
	storefrontCookieDomain = ".apple.com"

	// loginPollInterval is the interval for polling the login status.
	loginPollInterval = 1 * time.Second

	// maxLoginWaitTime is the maximum time to wait for user to complete login.
	maxLoginWaitTime = 10 * time.Minute

	// sessionEstablishDelay lets the web player finish writing cookies after sign-in.
	sessionEstablishDelay = 2 * time.Second

	// browserCleanupDelay is the delay to wait for Chrome to release file locks before cleanup.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user navigates away from the login flow.
	ErrNavigatedAway = errors.New("user navigated away from login flow")

	// ErrAuthCookieNotFound is returned when the media user token cannot be found after login.
	ErrAuthCookieNotFound = errors.New("media-user-token cookie not found - login may have failed")
)

// Service provides browser-based authentication.
type Service interface {
	// Login opens a browser, waits for the user to sign in and returns the session cookies.
	Login(ctx context.Context) ([]*http.Cookie, error)
}

// ServiceImpl provides browser-based authentication for Apple Music.
type ServiceImpl struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService(cfg *config.Config) (*ServiceImpl, error) {
	return &ServiceImpl{
		cfg: cfg,
	}, nil
}

// Login opens a browser, waits for the user to sign in and returns the session cookies.
// When the web player did not set a storefront cookie, one is added from the configured storefront.
func (s *ServiceImpl) Login(ctx context.Context) ([]*http.Cookie, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	if err := s.initBrowser(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	if err := s.waitForUserLogin(ctx); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	cookies, err := s.collectCookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect cookies: %w", err)
	}

	logger.Infof(ctx, "Collected %d cookies", len(cookies))

	return ensureStorefrontCookie(ctx, cookies, s.cfg.Storefront), nil
}
