package cmd_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "applemusic-client-test"
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

// lookupRequest is what the fake lookup server saw.
type lookupRequest struct {
	Query       map[string][]string `json:"query"`
	StoreFront  string              `json:"store_front"`
	UserAgent   string              `json:"user_agent"`
	RequestPath string              `json:"request_path"`
}

// newLookupServer echoes every request back as JSON.
func newLookupServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(lookupRequest{
			Query:       r.URL.Query(),
			StoreFront:  r.Header.Get("X-Apple-Store-Front"),
			UserAgent:   r.Header.Get("User-Agent"),
			RequestPath: r.URL.Path,
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o644) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	return configPath
}

func lookupConfig(serverURL string) string {
	return fmt.Sprintf(`
storefront: "gb"
language: "en-GB"
log_level: "error"
lookup_api_url: "%s/lookup"
page_api_url: "%s"
`, serverURL, serverURL)
}

// runBinary runs the test binary and returns stdout and the combined stderr.
func runBinary(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr strings.Builder

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	cmd := exec.Command("./"+testBinaryName, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// TestE2E_Version tests that version needs no configuration.
func TestE2E_Version(t *testing.T) {
	t.Parallel()

	stdout, _, err := runBinary(t, "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}

// TestE2E_Lookup_FlagOverrides tests that storefront and language flags reach the lookup request.
func TestE2E_Lookup_FlagOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		flags              []string
		expectedCountry    string
		expectedLanguage   string
		expectedStoreFront string
	}{
		{
			name:               "config values",
			expectedCountry:    "gb",
			expectedLanguage:   "en-GB",
			expectedStoreFront: "143444 t:music31",
		},
		{
			name:               "storefront flag",
			flags:              []string{"--storefront", "jp"},
			expectedCountry:    "jp",
			expectedLanguage:   "en-GB",
			expectedStoreFront: "143462 t:music31",
		},
		{
			name:               "short flags",
			flags:              []string{"-s", "us", "-l", "es-MX"},
			expectedCountry:    "us",
			expectedLanguage:   "es-MX",
			expectedStoreFront: "143441 t:music31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newLookupServer(t)
			configPath := writeConfig(t, lookupConfig(server.URL))

			args := append([]string{"lookup", "--config", configPath, "id=1440833098"}, tt.flags...)

			stdout, stderr, err := runBinary(t, args...)
			require.NoError(t, err, stderr)

			var seen lookupRequest
			require.NoError(t, json.Unmarshal([]byte(stdout), &seen), stdout)

			assert.Equal(t, "/lookup", seen.RequestPath)
			assert.Equal(t, []string{"1440833098"}, seen.Query["id"])
			assert.Equal(t, []string{tt.expectedCountry}, seen.Query["country"])
			assert.Equal(t, []string{tt.expectedLanguage}, seen.Query["lang"])
			assert.Equal(t, tt.expectedStoreFront, seen.StoreFront)
			assert.NotEmpty(t, seen.UserAgent)
		})
	}
}

// TestE2E_Page_YAMLOutputFile tests that --format and --output write the result to a file.
func TestE2E_Page_YAMLOutputFile(t *testing.T) {
	t.Parallel()

	server := newLookupServer(t)
	configPath := writeConfig(t, lookupConfig(server.URL))
	outputPath := filepath.Join(t.TempDir(), "page.yaml")

	stdout, stderr, err := runBinary(t,
		"page", "album", "1440833098",
		"--config", configPath,
		"--format", "yaml",
		"--output", outputPath)
	require.NoError(t, err, stderr)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var seen map[string]any
	require.NoError(t, yaml.Unmarshal(content, &seen))
	assert.Equal(t, "/album/1440833098", seen["request_path"])
}

// TestE2E_InvalidValues tests that invalid values cause errors.
func TestE2E_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		args             []string
		expectedErrorMsg string
	}{
		{
			name:             "three-letter storefront",
			args:             []string{"lookup", "id=1", "--storefront", "usa"},
			expectedErrorMsg: "storefront must be a two-letter code",
		},
		{
			name:             "unknown storefront",
			args:             []string{"lookup", "id=1", "--storefront", "zz"},
			expectedErrorMsg: "unknown storefront",
		},
		{
			name:             "unknown format",
			args:             []string{"lookup", "id=1", "--format", "xml"},
			expectedErrorMsg: "output format must be json or yaml",
		},
		{
			name:             "lookup argument without value",
			args:             []string{"lookup", "id"},
			expectedErrorMsg: "lookup parameter must be key=value",
		},
		{
			name:             "license without challenge",
			args:             []string{"license", "1440833098", "--uri", "skd://key"},
			expectedErrorMsg: "required flag(s) \"challenge\" not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newLookupServer(t)
			configPath := writeConfig(t, lookupConfig(server.URL))

			stdout, stderr, err := runBinary(t, append(tt.args, "--config", configPath)...)
			require.Error(t, err)
			assert.Empty(t, stdout)

			assert.Contains(t, strings.ToLower(stderr), strings.ToLower(tt.expectedErrorMsg),
				"Expected error message about '%s' but got: %s", tt.expectedErrorMsg, stderr)
		})
	}
}

// TestE2E_MissingExplicitConfig tests that an explicit config path must exist.
func TestE2E_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	_, stderr, err := runBinary(t, "lookup", "id=1", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, stderr, "failed to read config from file")
}

// TestE2E_VersionFlag tests that --version skips configuration loading.
func TestE2E_VersionFlag(t *testing.T) {
	t.Parallel()

	stdout, _, err := runBinary(t, "--version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "applemusic-client version")
}

// TestE2E_ErrorPrintedOnce tests that a command error reaches stderr a single time.
func TestE2E_ErrorPrintedOnce(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "log_level: \"error\"\n")

	_, stderr, err := runBinary(t, "license", "1440833098", "--uri", "skd://key", "--config", configPath)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(stderr, `required flag(s) "challenge" not set`), stderr)
}
