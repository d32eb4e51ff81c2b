package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/applemusic-client/internal/client/applemusic"
	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
)

// ResourceKind names the catalog commands.
type ResourceKind string

// Catalog commands.
const (
	ResourceKindSong       ResourceKind = "song"
	ResourceKindAlbum      ResourceKind = "album"
	ResourceKindPlaylist   ResourceKind = "playlist"
	ResourceKindMusicVideo ResourceKind = "music-video"
)

// ErrUnknownResourceKind indicates a catalog command without a matching client call.
var ErrUnknownResourceKind = errors.New("unknown resource kind")

// ResourceOptions carries the query flags of the catalog commands.
// Fields that do not apply to a kind are ignored.
type ResourceOptions struct {
	Extend      string
	Include     string
	LimitTracks int
}

// LicenseResult is what the license command prints.
type LicenseResult struct {
	TrackID string `json:"trackId" yaml:"trackId"`
	License string `json:"license" yaml:"license"`
}

// FetchResource calls the client method matching kind.
func FetchResource(
	ctx context.Context,
	client applemusic.Client,
	kind ResourceKind,
	id string,
	options ResourceOptions,
) (applemusic.Resource, error) {
	switch kind {
	case ResourceKindSong:
		return client.GetSong(ctx, id, &applemusic.SongOptions{Extend: options.Extend, Include: options.Include})
	case ResourceKindAlbum:
		return client.GetAlbum(ctx, id, &applemusic.AlbumOptions{Extend: options.Extend})
	case ResourceKindPlaylist:
		return client.GetPlaylist(ctx, id, &applemusic.PlaylistOptions{
			LimitTracks: options.LimitTracks,
			Extend:      options.Extend,
		})
	case ResourceKindMusicVideo:
		return client.GetMusicVideo(ctx, id)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownResourceKind, kind)
	}
}

// FetchLicense exchanges a challenge and wraps the license for printing.
func FetchLicense(
	ctx context.Context,
	client applemusic.Client,
	trackID, trackURI, challenge string,
) (*LicenseResult, error) {
	license, err := client.GetLicense(ctx, trackID, trackURI, challenge)
	if err != nil {
		return nil, err
	}

	return &LicenseResult{TrackID: trackID, License: license}, nil
}

// ExecuteResourceCommand fetches one catalog resource and writes it out.
func ExecuteResourceCommand(
	ctx context.Context,
	cfg *config.Config,
	kind ResourceKind,
	id string,
	options ResourceOptions,
) {
	ctx = NewSessionContext(ctx)
	client := mustCatalogClient(ctx, cfg)

	resource, err := FetchResource(ctx, client, kind, id, options)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch %s %s: %v", kind, id, err)
	}

	mustWriteResult(ctx, cfg, resource)
}

// ExecuteWebPlaybackCommand fetches the playback manifest of a track and writes it out.
func ExecuteWebPlaybackCommand(ctx context.Context, cfg *config.Config, trackID string) {
	ctx = NewSessionContext(ctx)
	client := mustCatalogClient(ctx, cfg)

	playback, err := client.GetWebPlayback(ctx, trackID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch webplayback for %s: %v", trackID, err)
	}

	mustWriteResult(ctx, cfg, playback)
}

// ExecuteLicenseCommand exchanges a Widevine challenge and writes the license out.
func ExecuteLicenseCommand(ctx context.Context, cfg *config.Config, trackID, trackURI, challenge string) {
	ctx = NewSessionContext(ctx)
	client := mustCatalogClient(ctx, cfg)

	result, err := FetchLicense(ctx, client, trackID, trackURI, challenge)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch license for %s: %v", trackID, err)
	}

	mustWriteResult(ctx, cfg, result)
}

func mustCatalogClient(ctx context.Context, cfg *config.Config) applemusic.Client {
	client, err := applemusic.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Apple Music client: %v", err)
	}

	logger.Debugf(ctx, "Using storefront %s", client.Storefront())

	return client
}

func mustWriteResult(ctx context.Context, cfg *config.Config, value any) {
	if err := WriteResult(cfg, os.Stdout, value); err != nil {
		logger.Fatalf(ctx, "Failed to write result: %v", err)
	}
}
