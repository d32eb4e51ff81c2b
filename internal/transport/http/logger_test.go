package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
)

// TestNewLogTransport_DefaultLength tests the fallback log length.
func TestNewLogTransport_DefaultLength(t *testing.T) {
	t.Parallel()

	transport, ok := NewLogTransport(http.DefaultTransport, 0).(*LogTransport)
	require.True(t, ok)
	assert.Equal(t, int64(config.DefaultMaxLogLength), transport.maxLogLength)
}

// TestLogTransport_Truncate tests dump truncation.
func TestLogTransport_Truncate(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{maxLogLength: 4}

	assert.Equal(t, "abc", transport.truncate([]byte("abc")))
	assert.Equal(t, "abcd... [truncated]", transport.truncate([]byte("abcdef")))
}

// TestRedactHeaders tests that credentials never reach the dump.
func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Authorization", "Bearer eyJhSECRET")
	header.Set("Media-User-Token", "AkJhSECRET")
	header.Set("Accept", "application/json")

	redacted := redactHeaders(header)

	assert.Equal(t, redactedValue, redacted.Get("Authorization"))
	assert.Equal(t, redactedValue, redacted.Get("Media-User-Token"))
	assert.Equal(t, "application/json", redacted.Get("Accept"))
	// The original is left intact.
	assert.Equal(t, "Bearer eyJhSECRET", header.Get("Authorization"))
}

// TestLogTransport_RoundTrip_PreservesBodies tests that dumping at debug level keeps both bodies readable.
//
//nolint:paralleltest // Changes the global log level.
func TestLogTransport_RoundTrip_PreservesBodies(t *testing.T) {
	originalLevel := logger.Level()
	defer logger.SetLevel(originalLevel)

	logger.SetLevel(zapcore.DebugLevel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"salableAdamId":"1"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"songList":[{}]}`))
	}))
	defer server.Close()

	transport := NewLogTransport(http.DefaultTransport, 0)

	//nolint:noctx // Test code, context not needed.
	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{"salableAdamId":"1"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer eyJhSECRET")

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"songList":[{}]}`, string(body))
	assert.Equal(t, "Bearer eyJhSECRET", resp.Request.Header.Get("Authorization"))
}
