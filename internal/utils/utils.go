package utils

import (
	"math"
	"mime"
	"os"
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile(`^application/(?:.+\+)?json$`),
	regexp.MustCompile(`^application/(?:x-)?javascript$`),
	regexp.MustCompile(`^application/xhtml\+xml$`),
}

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// ExtractNamedGroup extracts the value of a named capturing group from a regex match.
// It returns an empty string if the group is not found or if there is no match.
func ExtractNamedGroup(re *regexp.Regexp, groupName, input string) string {
	match := re.FindStringSubmatch(input)
	if match == nil {
		return ""
	}

	for i, name := range re.SubexpNames() {
		if name == groupName {
			return match[i]
		}
	}

	return ""
}

// IsTextContentType checks if the given content type represents a text-based format:
// "text/*", JSON (including "+json" suffixes), JavaScript and XHTML.
// The charset, if present, must be either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
