package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/oshokin/applemusic-client/internal/logger"
)

// initBrowser launches a visible browser with a fresh profile and opens a stealth page.
func (s *ServiceImpl) initBrowser(ctx context.Context) error {
	logger.Debug(ctx, "Initializing browser")

	// A throwaway profile keeps earlier sessions from leaking into the export.
	tempDir, err := os.MkdirTemp("", "applemusic-auth-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary user data directory: %w", err)
	}

	logger.Debugf(ctx, "Using temporary profile directory: %s", tempDir)

	s.tempDir = tempDir

	browserLauncher := launcher.New().
		// User needs to see the browser to log in.
		Headless(false).
		UserDataDir(tempDir)

	if chromePath, exists := launcher.LookPath(); exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)
		browserLauncher = browserLauncher.Bin(chromePath)
	} else {
		logger.Debug(ctx, "System Chrome not found, downloading Chromium")
	}

	launcherURL, err := browserLauncher.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.Debugf(ctx, "Browser launched at: %s", launcherURL)

	browserInstance := rod.New().ControlURL(launcherURL).Context(ctx)

	if logger.IsDebugLevel() {
		logger.Debug(ctx, "Debug mode enabled - enabling browser trace and slow motion")

		browserInstance = browserInstance.
			Trace(true).
			SlowMotion(browserSlowMotionDelay)
	}

	if err = browserInstance.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	s.browser = browserInstance

	page, err := stealth.Page(s.browser)
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}

	s.page = page

	logger.Debug(ctx, "Browser initialized successfully with stealth mode")

	return nil
}

// isBrowserAlive checks if the browser is still running.
func (s *ServiceImpl) isBrowserAlive(ctx context.Context) (alive bool) {
	defer func() {
		// Recover from panic if browser is dead.
		if r := recover(); r != nil {
			logger.Debugf(ctx, "Browser panic recovered: %v", r)

			alive = false
		}
	}()

	if s.page == nil {
		return false
	}

	_, err := s.page.Info()

	return err == nil
}

// getCurrentURL safely gets the current page URL.
func (s *ServiceImpl) getCurrentURL(ctx context.Context) (currentURL string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "getCurrentURL panic recovered: %v", r)

			err = ErrBrowserClosed
		}
	}()

	info, err := s.page.Info()
	if err != nil {
		return "", err
	}

	return info.URL, nil
}

// cleanup closes the browser and removes the temporary profile.
func (s *ServiceImpl) cleanup(ctx context.Context) {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if s.tempDir != "" {
		// Give Chrome a moment to release file locks.
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(s.tempDir); err != nil {
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", s.tempDir, err)
		}
	}
}
