package applemusic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractIndexScriptPath tests script bundle discovery on synthetic pages.
func TestExtractIndexScriptPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     string
		expected string
	}{
		{
			name:     "module script",
			page:     `<html><head><script type="module" crossorigin src="/assets/index-legacy-ABC123.js"></script></head></html>`,
			expected: "assets/index-legacy-ABC123.js",
		},
		{
			name: "preload link before other scripts",
			page: `<html><head>
				<script src="/assets/vendor-1.js"></script>
				<link rel="modulepreload" href="/assets/index-legacy-f00d.js">
			</head></html>`,
			expected: "assets/index-legacy-f00d.js",
		},
		{
			name:     "absolute url",
			page:     `<script src="https://beta.music.apple.com/assets/index-legacy-9.js"></script>`,
			expected: "assets/index-legacy-9.js",
		},
		{
			name:     "relative attribute",
			page:     `<script src="assets/index-legacy-rel.js"></script>`,
			expected: "assets/index-legacy-rel.js",
		},
		{
			name: "attribute wins over an earlier text mention",
			page: `<html><head>
				<script>window.fallbackBundle = "/assets/index-legacy-STALE.js";</script>
				<meta name="comment" content="see /assets/index-legacy-META.js">
				<script type="module" src="/assets/index-legacy-LIVE.js"></script>
			</head></html>`,
			expected: "assets/index-legacy-LIVE.js",
		},
		{
			name:     "inline loader text",
			page:     `<script>System.import("/assets/index-legacy-inline.js")</script>`,
			expected: "assets/index-legacy-inline.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := ExtractIndexScriptPath(tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

// TestExtractIndexScriptPath_NotFound tests that pages without the bundle fail.
func TestExtractIndexScriptPath_NotFound(t *testing.T) {
	t.Parallel()

	pages := []string{
		"",
		`<script src="/assets/index-4f2a.js"></script>`,
		`<p>assets/index-legacy-without-slash.css</p>`,
	}

	for _, page := range pages {
		_, err := ExtractIndexScriptPath(page)
		require.ErrorIs(t, err, ErrTokenExtraction)
	}
}

// TestExtractBearerToken tests token scraping on synthetic scripts.
func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		expected string
	}{
		{
			name:     "stops at first quote",
			script:   `const config={token:"eyJhXYZ"},other="x";`,
			expected: "eyJhXYZ",
		},
		{
			name:     "first occurrence wins",
			script:   `a="eyJhFIRST.part.sig";b="eyJhSECOND";`,
			expected: "eyJhFIRST.part.sig",
		},
		{
			name:     "unterminated line is skipped",
			script:   "x=eyJhBROKEN\ny=\"eyJhGOOD\"",
			expected: "eyJhGOOD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := ExtractBearerToken(tt.script)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

// TestExtractBearerToken_NotFound tests that scripts without a token fail.
func TestExtractBearerToken_NotFound(t *testing.T) {
	t.Parallel()

	for _, script := range []string{"", `token="abc"`, `token="eyJhNOQUOTE`} {
		_, err := ExtractBearerToken(script)
		require.ErrorIs(t, err, ErrTokenExtraction)
	}
}
