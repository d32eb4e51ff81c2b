package http

import (
	"errors"
	"fmt"
)

// maxErrorBodyLength bounds the raw body kept in a ResponseError message.
const maxErrorBodyLength = 4096

// ErrNilRequest indicates that the HTTP request is nil.
var ErrNilRequest = errors.New("request is nil")

// ResponseError reports a response that arrived but failed a contract check:
// a non-200 status or a body missing the expected fields.
type ResponseError struct {
	// Kind is the sentinel error callers match with errors.Is.
	Kind error
	// Subject identifies what was requested (resource id, track id, query).
	Subject string
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the raw response body.
	Body string
}

// NewResponseError builds a ResponseError from a raw body.
func NewResponseError(kind error, subject string, statusCode int, body []byte) *ResponseError {
	return &ResponseError{
		Kind:       kind,
		Subject:    subject,
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	body := e.Body
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength] + "... [truncated]"
	}

	return fmt.Sprintf("%v for %s (HTTP %d):\n%s", e.Kind, e.Subject, e.StatusCode, body)
}

// Unwrap returns the sentinel kind.
func (e *ResponseError) Unwrap() error {
	return e.Kind
}
