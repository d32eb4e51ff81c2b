package itunes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/applemusic-client/internal/config"
	http_transport "github.com/oshokin/applemusic-client/internal/transport/http"
)

func newTestConfig(t *testing.T, serverURL, storefront string) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Storefront:   storefront,
		LookupAPIURL: serverURL + "/lookup",
		PageAPIURL:   serverURL,
	}
	require.NoError(t, config.ValidateConfig(cfg))

	return cfg
}

// TestStorefrontID tests the storefront table.
func TestStorefrontID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		expected string
		found    bool
	}{
		{code: "US", expected: "143441", found: true},
		{code: "us", expected: "143441", found: true},
		{code: "Gb", expected: "143444", found: true},
		{code: "jp", expected: "143462", found: true},
		{code: "de", expected: "143443", found: true},
		{code: "xx", found: false},
		{code: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			id, found := StorefrontID(tt.code)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, id)
		})
	}
}

// TestNewClient_UnknownStorefront tests that resolution fails before any request.
func TestNewClient_UnknownStorefront(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(newTestConfig(t, server.URL, "zz"))
	require.ErrorIs(t, err, ErrUnknownStorefront)
	assert.Nil(t, client)
	assert.Zero(t, hits.Load())
}

// TestGetResource tests the session parameters, the store-front header and verbatim decoding.
func TestGetResource(t *testing.T) {
	t.Parallel()

	const body = `{"resultCount":1,"results":[{"wrapperType":"track","trackId":1440833098,"trackName":"Song"}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup", r.URL.Path)
		assert.Equal(t, "143462 t:music31", r.Header.Get("X-Apple-Store-Front"))
		assert.Equal(t, http_transport.DefaultUserAgent, r.Header.Get("User-Agent"))

		query := r.URL.Query()
		assert.Equal(t, "jp", query.Get("country"))
		assert.Equal(t, "en-US", query.Get("lang"))
		assert.Equal(t, "1440833098", query.Get("id"))
		assert.Equal(t, "song", query.Get("entity"))

		_, _ = io.WriteString(w, body)
	}))
	defer server.Close()

	client, err := NewClient(newTestConfig(t, server.URL, "jp"))
	require.NoError(t, err)
	assert.Equal(t, "143462", client.StorefrontID())
	assert.Zero(t, client.httpClient.Timeout, "requests are bounded by the context only")

	result, err := client.GetResource(context.Background(), url.Values{"id": {"1440833098"}, "entity": {"song"}})
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(encoded))
}

// TestGetResource_CallerOverridesSession tests that explicit parameters win over the session ones.
func TestGetResource_CallerOverridesSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"gb"}, r.URL.Query()["country"])
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client, err := NewClient(newTestConfig(t, server.URL, "us"))
	require.NoError(t, err)

	_, err = client.GetResource(context.Background(), url.Values{"country": {"gb"}})
	require.NoError(t, err)
}

// TestGetResource_Failures tests non-200 and undecodable responses.
func TestGetResource_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{name: "bad request", statusCode: http.StatusBadRequest, body: `{"errorMessage":"Invalid value(s) for key(s): [id]"}`},
		{name: "not json", statusCode: http.StatusOK, body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client, err := NewClient(newTestConfig(t, server.URL, "us"))
			require.NoError(t, err)

			result, err := client.GetResource(context.Background(), url.Values{"id": {"x"}})
			require.ErrorIs(t, err, ErrLookupFetch)
			assert.Nil(t, result)

			var responseErr *http_transport.ResponseError
			require.ErrorAs(t, err, &responseErr)
			assert.Equal(t, tt.statusCode, responseErr.StatusCode)
		})
	}
}

// TestGetITunesPage tests the page path and the error path.
func TestGetITunesPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "us", r.URL.Query().Get("country"))

		switch r.URL.Path {
		case "/album/1440833098":
			_, _ = io.WriteString(w, `{"storePlatformData":{"product-dv":{"results":{}}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient(newTestConfig(t, server.URL, "us"))
	require.NoError(t, err)

	page, err := client.GetITunesPage(context.Background(), "album", "1440833098")
	require.NoError(t, err)
	assert.Contains(t, page, "storePlatformData")

	_, err = client.GetITunesPage(context.Background(), "album", "missing")
	require.ErrorIs(t, err, ErrPageFetch)
}

// TestGetResource_TransportFailure tests that network errors carry the sentinel.
func TestGetResource_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	cfg := newTestConfig(t, server.URL, "us")
	server.Close()

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.GetResource(context.Background(), url.Values{"id": {"1"}})
	require.ErrorIs(t, err, ErrLookupFetch)
}
