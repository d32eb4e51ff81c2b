package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/applemusic-client/internal/app"
)

const flagSaveConfig = "save-config"

//nolint:gochecknoglobals // Cobra commands are declared globally.
var (
	cookiesCmd = &cobra.Command{
		Use:   "cookies",
		Short: "Cookie management commands",
		Long: `Manage the cookie file used to sign catalog requests.

Use 'cookies login' to sign in via browser and export the session cookies.`,
	}

	cookiesLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to Apple Music and export cookies",
		Long: `Opens a browser window for you to sign in to Apple Music.

The login process:
1. Browser opens at https://music.apple.com
2. Click "Sign In" and enter your Apple ID
3. Confirm two-factor authentication if asked
4. Wait for the browser to close

The cookies are written in the Netscape format to the path given by
--cookies (default is 'cookies.txt') and the path is saved to the
configuration file, so later commands use your account:
applemusic-client song 1440833098`,
		Run: func(cmd *cobra.Command, _ []string) {
			saveConfig, _ := cmd.Flags().GetBool(flagSaveConfig)

			app.ExecuteCookiesLoginCommand(cmd.Context(), appConfig, saveConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	cookiesLoginCmd.Flags().Bool(flagSaveConfig, true, "record the cookie file path in the configuration file.")

	cookiesCmd.AddCommand(cookiesLoginCmd)
	rootCmd.AddCommand(cookiesCmd)
}
