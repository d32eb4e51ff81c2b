package applemusic

import "errors"

var (
	// ErrConfiguration indicates a bad or missing storefront, or an unreadable cookie file.
	ErrConfiguration = errors.New("invalid client configuration")
	// ErrTokenExtraction indicates that the bearer token could not be scraped from the web player.
	ErrTokenExtraction = errors.New("failed to extract bearer token")
	// ErrResourceFetch indicates that a catalog resource could not be fetched.
	ErrResourceFetch = errors.New("failed to get resource")
	// ErrPlaybackManifest indicates that the web-playback manifest could not be fetched.
	ErrPlaybackManifest = errors.New("failed to get webplayback")
	// ErrLicenseFetch indicates that the license exchange failed.
	ErrLicenseFetch = errors.New("failed to get license")
)
