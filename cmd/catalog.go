package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/applemusic-client/internal/app"
	"github.com/oshokin/applemusic-client/internal/client/applemusic"
)

const (
	flagExtend      = "extend"
	flagInclude     = "include"
	flagLimitTracks = "limit-tracks"
	flagURI         = "uri"
	flagChallenge   = "challenge"
)

//nolint:gochecknoglobals // Cobra commands are declared globally.
var (
	songCmd = newResourceCommand(app.ResourceKindSong, "Fetch a song from the catalog")

	albumCmd = newResourceCommand(app.ResourceKindAlbum, "Fetch an album from the catalog")

	playlistCmd = newResourceCommand(app.ResourceKindPlaylist, "Fetch a playlist from the catalog")

	musicVideoCmd = newResourceCommand(app.ResourceKindMusicVideo, "Fetch a music video from the catalog")

	webPlaybackCmd = &cobra.Command{
		Use:   "webplayback <track-id>",
		Short: "Fetch the playback manifest of a track",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteWebPlaybackCommand(cmd.Context(), appConfig, args[0])
		},
	}

	licenseCmd = &cobra.Command{
		Use:   "license <track-id>",
		Short: "Exchange a Widevine challenge for a license",
		Long: `Sends a base64 Widevine challenge for a track to the license endpoint.

The track URI is the key URI from the playback manifest.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			trackURI, _ := flags.GetString(flagURI)
			challenge, _ := flags.GetString(flagChallenge)

			app.ExecuteLicenseCommand(cmd.Context(), appConfig, args[0], trackURI, challenge)
		},
	}
)

func newResourceCommand(kind app.ResourceKind, short string) *cobra.Command {
	command := &cobra.Command{
		Use:   string(kind) + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteResourceCommand(cmd.Context(), appConfig, kind, args[0], resourceOptionsFromFlags(cmd))
		},
	}

	flags := command.Flags()

	switch kind {
	case app.ResourceKindSong:
		flags.String(flagExtend, applemusic.DefaultExtend, "value of the extend parameter, empty to omit.")
		flags.String(flagInclude, applemusic.DefaultInclude, "value of the include parameter, empty to omit.")
	case app.ResourceKindAlbum:
		flags.String(flagExtend, applemusic.DefaultExtend, "value of the extend parameter, empty to omit.")
	case app.ResourceKindPlaylist:
		flags.String(flagExtend, applemusic.DefaultExtend, "value of the extend parameter, empty to omit.")
		flags.Int(flagLimitTracks, applemusic.DefaultPlaylistTrackLimit, "maximum number of tracks to include.")
	case app.ResourceKindMusicVideo:
	}

	return command
}

func resourceOptionsFromFlags(cmd *cobra.Command) app.ResourceOptions {
	var (
		flags   = cmd.Flags()
		options app.ResourceOptions
	)

	if flags.Lookup(flagExtend) != nil {
		options.Extend, _ = flags.GetString(flagExtend)
	}

	if flags.Lookup(flagInclude) != nil {
		options.Include, _ = flags.GetString(flagInclude)
	}

	if flags.Lookup(flagLimitTracks) != nil {
		options.LimitTracks, _ = flags.GetInt(flagLimitTracks)
	}

	return options
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	licenseFlags := licenseCmd.Flags()
	licenseFlags.String(flagURI, "", "key URI of the track.")
	licenseFlags.String(flagChallenge, "", "base64 Widevine challenge.")
	_ = licenseCmd.MarkFlagRequired(flagURI)
	_ = licenseCmd.MarkFlagRequired(flagChallenge)

	rootCmd.AddCommand(songCmd, albumCmd, playlistCmd, musicVideoCmd, webPlaybackCmd, licenseCmd)
}
