package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFull tests that link-time values appear in the full version line.
//
//nolint:paralleltest // The test overrides package variables.
func TestFull(t *testing.T) {
	original := [...]string{Version, Commit, BuildTime}

	t.Cleanup(func() {
		Version, Commit, BuildTime = original[0], original[1], original[2]
	})

	Version, Commit, BuildTime = "1.2.3", "abc1234", "2026-01-02T03:04:05Z"

	assert.Equal(t, "1.2.3", Short())
	assert.Equal(t, "version: 1.2.3, commit: abc1234, built at: 2026-01-02T03:04:05Z", Full())
}

// TestDefaults tests the values of an unstamped build.
//
//nolint:paralleltest // Reads package variables overridden by TestFull.
func TestDefaults(t *testing.T) {
	assert.Equal(t, "none", Commit)
	assert.Equal(t, "unknown", BuildTime)
	assert.Len(t, strings.Split(Short(), "."), 3, "semantic version expected, got %q", Short())
	assert.True(t, strings.HasPrefix(Full(), "version: "+Short()+","))
}
