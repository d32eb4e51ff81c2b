package http

const (
	// DefaultUserAgent is the User-Agent sent when the configuration does not override it.
	// The web player serves its script bundle to regular desktop browsers only.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:95.0) Gecko/20100101 Firefox/95.0"

	// redactedValue replaces credential header values in debug dumps.
	redactedValue = "[redacted]"
)

// sensitiveHeaders lists headers whose values never reach the log.
//
//nolint:gochecknoglobals // Immutable lookup table.
var sensitiveHeaders = []string{
	"Authorization",
	"Cookie",
	"Media-User-Token",
	"Set-Cookie",
}
