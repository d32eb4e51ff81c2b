// Package applemusic provides a Go client for the Apple Music web catalog.
// A session is bootstrapped by scraping the bearer token out of the web player's
// script bundle, optionally on top of cookies exported from a logged-in browser.
// The client exposes catalog lookups for songs, albums, playlists and music videos,
// the web-playback manifest and the Widevine license exchange.
// Responses are returned verbatim as decoded JSON; every contract failure is
// reported as a typed error that unwraps to one of the package sentinels.
package applemusic
