// Package utils holds small helpers shared across the application:
// safe numeric conversions, content type checks, regex group extraction
// and the User-Agent provider used by the HTTP transport.
package utils
