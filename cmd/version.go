package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/applemusic-client/internal/version"
)

//nolint:gochecknoglobals // Cobra commands are declared globally.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// The version does not depend on the configuration.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
