package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/constants"
	"github.com/oshokin/applemusic-client/internal/cookiefile"
	"github.com/oshokin/applemusic-client/internal/logger"
	"github.com/oshokin/applemusic-client/internal/service/auth"
	"github.com/oshokin/applemusic-client/internal/utils"
)

// DefaultCookiesFilename is where the login command stores cookies when no path is configured.
const DefaultCookiesFilename = "cookies.txt"

// RunCookiesLogin signs in through service, stores the cookies at outputPath
// and, when saveConfig is set, records the path as cookies_path in the config file.
func RunCookiesLogin(
	ctx context.Context,
	service auth.Service,
	outputPath string,
	saveConfig bool,
) error {
	cookies, err := service.Login(ctx)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Exporting cookies: %s",
		strings.Join(utils.Map(cookies, func(cookie *http.Cookie) string { return cookie.Name }), ", "))

	exists, err := utils.IsFileExist(outputPath)
	if err != nil {
		return fmt.Errorf("failed to check cookie file: %w", err)
	}

	if exists {
		logger.Infof(ctx, "Replacing cookie file %s", outputPath)
	}

	if err = cookiefile.Save(outputPath, cookies, constants.CredentialFilePermissions); err != nil {
		return err
	}

	logger.Infof(ctx, "Saved %d cookies to %s", len(cookies), outputPath)

	if !saveConfig {
		return nil
	}

	if err = config.SaveCookiesPath(outputPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info(ctx, "Configuration updated successfully!")

	return nil
}

// ExecuteCookiesLoginCommand executes the cookies login command.
// It opens a browser, waits for the user to sign in and exports the session cookies.
func ExecuteCookiesLoginCommand(ctx context.Context, cfg *config.Config, saveConfig bool) {
	ctx = NewSessionContext(ctx)

	logger.Info(ctx, "Starting authentication process")

	authService, err := auth.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize authentication service: %v", err)
	}

	outputPath := cfg.CookiesPath
	if outputPath == "" {
		outputPath = DefaultCookiesFilename
	}

	if err = RunCookiesLogin(ctx, authService, outputPath, saveConfig); err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
	}

	logger.Info(ctx, "Authentication complete! Try fetching a song:")
	logger.Info(ctx, "applemusic-client song 1440833098")
}
