package http

import (
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
	"github.com/oshokin/applemusic-client/internal/utils"
)

// LogTransport is an http.RoundTripper that dumps requests and responses at debug level.
// Credential headers are redacted and dumps longer than maxLogLength are truncated.
type LogTransport struct {
	next         http.RoundTripper
	maxLogLength int64
}

// NewLogTransport wraps next with debug logging.
// If maxLogLength is less than or equal to 0, it defaults to config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength int64) http.RoundTripper {
	if maxLogLength <= 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dumpRequest(req)
	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.Redacted(), err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp)

	size := "unknown size"
	if resp.ContentLength >= 0 {
		size = humanize.Bytes(uint64(resp.ContentLength))
	}

	logger.Debugf(ctx, "%s %s [%d] %s, %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, size, requestDump, responseDump)

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	redacted := req.Clone(req.Context())
	redacted.Header = redactHeaders(req.Header)

	// DumpRequest drains and restores the body on the clone, which shares it with req.
	dump, err := httputil.DumpRequest(redacted, true)
	if err != nil {
		return err.Error()
	}

	req.Body = redacted.Body

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	contentType := resp.Header.Get("Content-Type")

	header := resp.Header
	resp.Header = redactHeaders(header)

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))

	resp.Header = header

	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if int64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}

func redactHeaders(header http.Header) http.Header {
	redacted := header.Clone()

	for _, name := range sensitiveHeaders {
		if redacted.Get(name) != "" {
			redacted.Set(name, redactedValue)
		}
	}

	return redacted
}
