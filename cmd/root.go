package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
	"github.com/oshokin/applemusic-client/internal/version"
)

const (
	flagConfig     = "config"
	flagCookies    = "cookies"
	flagStorefront = "storefront"
	flagLanguage   = "language"
	flagFormat     = "format"
	flagOutput     = "output"
	flagLogLevel   = "log-level"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "applemusic-client",
		Short: "Query the Apple Music catalog, playback and license endpoints.",
		Long: `Apple Music Client is a CLI tool for the Apple Music web API.
It supports:
- Catalog lookups for songs, albums, playlists and music videos
- Web-playback manifests and Widevine license exchange
- The public iTunes lookup and page APIs
- Exporting browser cookies after an interactive login

Results are written as JSON or YAML to stdout or to a file.`,
		Version:          version.Short(),
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		flagConfig,
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.String(
		flagCookies,
		"",
		"path to a Netscape cookie file exported from a logged-in browser.")

	persistentFlags.StringP(
		flagStorefront,
		"s",
		"",
		fmt.Sprintf("two-letter storefront code (default is '%s', overridden by the cookie file).",
			config.DefaultStorefront))

	persistentFlags.StringP(
		flagLanguage,
		"l",
		"",
		fmt.Sprintf("language tag (default is '%s').", config.DefaultLanguage))

	persistentFlags.StringP(
		flagFormat,
		"f",
		"",
		"output format: json or yaml (default is json).")

	persistentFlags.StringP(
		flagOutput,
		"o",
		"",
		"file to write the result to (default is stdout).")

	persistentFlags.String(
		flagLogLevel,
		"",
		"log level: debug, info, warn or error.")

	// Cobra registers --version lazily, after a subcommand has been resolved.
	rootCmd.InitDefaultVersionFlag()
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// bindFlagsToConfig copies every changed flag into cfg and validates the result.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	bindings := map[string]*string{
		flagCookies:    &cfg.CookiesPath,
		flagStorefront: &cfg.Storefront,
		flagLanguage:   &cfg.Language,
		flagFormat:     &cfg.OutputFormat,
		flagOutput:     &cfg.OutputPath,
		flagLogLevel:   &cfg.LogLevel,
	}

	for name, target := range bindings {
		if flag := flags.Lookup(name); flag != nil && flag.Changed {
			*target, _ = flags.GetString(name)
		}
	}

	return config.ValidateConfig(cfg)
}
