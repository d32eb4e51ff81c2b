// Package auth provides browser-based login for Apple Music.
//
// It opens a real browser through go-rod with stealth patches, waits for the
// user to sign in on music.apple.com and collects the session cookies, which
// callers store as a Netscape cookie file for the catalog client.
package auth
