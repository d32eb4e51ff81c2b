package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/applemusic-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands are declared globally.
var (
	lookupCmd = &cobra.Command{
		Use:   "lookup key=value...",
		Short: "Query the iTunes lookup API",
		Long: `Queries the public iTunes lookup API with the given parameters.

The configured storefront and language are sent as country and lang
unless overridden, for example:
applemusic-client lookup id=1440833098 entity=song`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteLookupCommand(cmd.Context(), appConfig, args)
		},
	}

	pageCmd = &cobra.Command{
		Use:   "page <type> <id>",
		Short: "Fetch an iTunes page as JSON",
		Args:  cobra.ExactArgs(2), //nolint:mnd // Type and id.
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecutePageCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(lookupCmd, pageCmd)
}
