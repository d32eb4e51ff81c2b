package cookiefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// Header is the first line written to every cookie file.
	Header = "# Netscape HTTP Cookie File"

	httpOnlyPrefix = "#HttpOnly_"
	fieldCount     = 7
	flagTrue       = "TRUE"
	flagFalse      = "FALSE"
)

// ErrMalformedLine indicates a line that does not have the seven tab-separated fields.
var ErrMalformedLine = errors.New("malformed cookie line")

// Parse reads cookies from r.
// Domains with the subdomain flag set always start with a dot.
func Parse(r io.Reader) ([]*http.Cookie, error) {
	var (
		cookies    []*http.Cookie
		scanner    = bufio.NewScanner(r)
		lineNumber int
	)

	for scanner.Scan() {
		lineNumber++

		line := strings.TrimRight(scanner.Text(), "\r")
		httpOnly := false

		if strings.HasPrefix(line, httpOnlyPrefix) {
			line = strings.TrimPrefix(line, httpOnlyPrefix)
			httpOnly = true
		}

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cookie, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		cookie.HttpOnly = httpOnly
		cookies = append(cookies, cookie)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookies: %w", err)
	}

	return cookies, nil
}

func parseLine(line string) (*http.Cookie, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < fieldCount-1 || len(fields) > fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, fieldCount, len(fields))
	}

	// Some exporters drop the trailing tab of an empty value.
	if len(fields) == fieldCount-1 {
		fields = append(fields, "")
	}

	domain := fields[0]
	if strings.EqualFold(fields[1], flagTrue) && !strings.HasPrefix(domain, ".") {
		domain = "." + domain
	}

	cookie := &http.Cookie{
		Domain: domain,
		Path:   fields[2],
		Secure: strings.EqualFold(fields[3], flagTrue),
		Name:   fields[5],
		Value:  fields[6],
	}

	// An empty expiry marks a session cookie.
	expiry := strings.TrimSpace(fields[4])
	if expiry == "" {
		return cookie, nil
	}

	expires, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad expiry %q", ErrMalformedLine, fields[4])
	}

	if expires > 0 {
		cookie.Expires = time.Unix(expires, 0)
	}

	return cookie, nil
}

// Load reads cookies from the file at path.
func Load(path string) ([]*http.Cookie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie file: %w", err)
	}

	defer file.Close() //nolint:errcheck // Read-only file.

	return Parse(file)
}

// Write writes cookies to w in the Netscape format.
func Write(w io.Writer, cookies []*http.Cookie) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(buffered, Header); err != nil {
		return fmt.Errorf("failed to write cookies: %w", err)
	}

	for _, cookie := range cookies {
		if _, err := fmt.Fprintln(buffered, formatLine(cookie)); err != nil {
			return fmt.Errorf("failed to write cookies: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to write cookies: %w", err)
	}

	return nil
}

func formatLine(cookie *http.Cookie) string {
	var (
		domain     = cookie.Domain
		subdomains = flagFalse
		secure     = flagFalse
		path       = cookie.Path
		expires    int64
	)

	if strings.HasPrefix(domain, ".") {
		subdomains = flagTrue
	}

	if cookie.HttpOnly {
		domain = httpOnlyPrefix + domain
	}

	if cookie.Secure {
		secure = flagTrue
	}

	if path == "" {
		path = "/"
	}

	if !cookie.Expires.IsZero() {
		expires = cookie.Expires.Unix()
	}

	return strings.Join([]string{
		domain, subdomains, path, secure, strconv.FormatInt(expires, 10), cookie.Name, cookie.Value,
	}, "\t")
}

// Save writes cookies to the file at path with the given permissions.
func Save(path string, cookies []*http.Cookie, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create cookie file: %w", err)
	}

	if err = Write(file, cookies); err != nil {
		_ = file.Close()

		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close cookie file: %w", err)
	}

	return nil
}

// Find returns the first cookie named name, or nil.
func Find(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

// AddToJar stores every cookie in jar as a session cookie, ignoring expiry.
// Cookies without a domain are skipped.
func AddToJar(jar http.CookieJar, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		host := strings.TrimPrefix(cookie.Domain, ".")
		if host == "" {
			continue
		}

		scheme := "http"
		if cookie.Secure {
			scheme = "https"
		}

		path := cookie.Path
		if path == "" {
			path = "/"
		}

		stored := *cookie
		stored.Expires = time.Time{}
		stored.MaxAge = 0

		// A domain without a leading dot is host-only.
		if !strings.HasPrefix(cookie.Domain, ".") {
			stored.Domain = ""
		}

		jar.SetCookies(&url.URL{Scheme: scheme, Host: host, Path: path}, []*http.Cookie{&stored})
	}
}
