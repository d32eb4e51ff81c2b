// Package version exposes build information injected at link time.
package version

import "fmt"

//nolint:gochecknoglobals // Overridden with -ldflags "-X" at build time.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the VCS revision of the build.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns the bare version.
func Short() string {
	return Version
}

// Full returns version, commit and build time on one line.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
