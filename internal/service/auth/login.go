package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/applemusic-client/internal/logger"
)

// waitForUserLogin opens the web player and waits until the user has signed in.
func (s *ServiceImpl) waitForUserLogin(ctx context.Context) error {
	logger.Info(ctx, "Opening Apple Music...")

	if err := s.page.Navigate(appleMusicHomeURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", appleMusicHomeURL, err)
	}

	logger.Info(ctx, "")
	logger.Info(ctx, "Please complete the login in the browser:")
	logger.Info(ctx, "")
	logger.Info(ctx, "1. Click 'Sign In' in the top right corner")
	logger.Info(ctx, "2. Enter your Apple ID and password")
	logger.Info(ctx, "3. Confirm two-factor authentication if asked")
	logger.Info(ctx, "4. DO NOT CLOSE THE BROWSER - it closes by itself once the session is ready")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for login to complete...")

	if err := s.waitForLoginComplete(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Login completed successfully!")

	// Give the session a moment to fully establish.
	time.Sleep(sessionEstablishDelay)

	return nil
}

// waitForLoginComplete polls until the media user token cookie appears.
func (s *ServiceImpl) waitForLoginComplete(ctx context.Context) error {
	var (
		deadline = time.Now().Add(maxLoginWaitTime)
		ticker   = time.NewTicker(loginPollInterval)
		lastURL  string
	)

	defer ticker.Stop()

	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
		}

		if !s.isBrowserAlive(ctx) {
			return ErrBrowserClosed
		}

		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current URL: %w", err)
		}

		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		if err = validateLoginURL(currentURL); err != nil {
			return err
		}

		if s.hasMediaUserToken(ctx) {
			logger.Info(ctx, "Media user token detected - login successful!")

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// validateLoginURL validates that the user hasn't navigated away from Apple domains.
// Blank pages shown while the browser starts are accepted.
func validateLoginURL(currentURL string) error {
	if currentURL == "" || strings.HasPrefix(currentURL, "about:") {
		return nil
	}

	parsed, err := url.Parse(currentURL)
	if err != nil {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	host := strings.ToLower(parsed.Hostname())
	if host != appleDomain && !strings.HasSuffix(host, "."+appleDomain) {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	return nil
}
