package applemusic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oshokin/applemusic-client/internal/utils"
)

//nolint:gochecknoglobals // Immutable, pre-compiled regex patterns used as constants.
var (
	indexScriptPattern = regexp.MustCompile(`(?:^|/)(?P<path>assets/index-legacy-[^/"'\s]+\.js)`)
	bearerTokenPattern = regexp.MustCompile(`(?P<token>eyJh[^"\n]*)"`)
)

// ExtractIndexScriptPath returns the path of the web player's legacy script bundle,
// e.g. "assets/index-legacy-4f2a.js", relative to the homepage.
// Script and preload link attributes are checked first, then the raw page text.
func ExtractIndexScriptPath(page string) (string, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err == nil {
		var path string

		document.Find("script[src], link[href]").EachWithBreak(func(_ int, selection *goquery.Selection) bool {
			reference, ok := selection.Attr("src")
			if !ok {
				reference, _ = selection.Attr("href")
			}

			path = utils.ExtractNamedGroup(indexScriptPattern, "path", reference)

			return path == ""
		})

		if path != "" {
			return path, nil
		}
	}

	if path := utils.ExtractNamedGroup(indexScriptPattern, "path", page); path != "" {
		return path, nil
	}

	return "", fmt.Errorf("%w: no index-legacy script referenced by the homepage", ErrTokenExtraction)
}

// ExtractBearerToken returns the first "eyJh"-prefixed string in script,
// ending before the next double quote.
func ExtractBearerToken(script string) (string, error) {
	token := utils.ExtractNamedGroup(bearerTokenPattern, "token", script)
	if token == "" {
		return "", fmt.Errorf("%w: no bearer token in the index script", ErrTokenExtraction)
	}

	return token, nil
}
