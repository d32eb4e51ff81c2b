package itunes

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
	http_transport "github.com/oshokin/applemusic-client/internal/transport/http"
	"github.com/oshokin/applemusic-client/internal/utils"
)

// Client defines the interface for the iTunes lookup and page APIs.
type Client interface {
	// GetResource queries the lookup API with arbitrary parameters.
	GetResource(ctx context.Context, params url.Values) (any, error)
	// GetITunesPage fetches {page}/{type}/{id}.
	GetITunesPage(ctx context.Context, resourceType, resourceID string) (any, error)
	// StorefrontID returns the resolved numeric storefront id.
	StorefrontID() string
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	cfg          *config.Config
	httpClient   *http.Client
	storefront   string
	storefrontID string
	language     string
}

// NewClient resolves the configured storefront and returns a client bound to it.
// No request is made here.
func NewClient(cfg *config.Config) (*ClientImpl, error) {
	storefrontID, ok := StorefrontID(cfg.Storefront)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownStorefront, cfg.Storefront)
	}

	headers := http.Header{}
	headers.Set(headerStoreFront, storefrontID+" "+storeFrontClientTag)

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewHeaderInjector(
				http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
				headers),
			utils.NewStaticUserAgentProvider("", http_transport.DefaultUserAgent)),
	}

	return &ClientImpl{
		cfg:          cfg,
		httpClient:   httpClient,
		storefront:   cfg.Storefront,
		storefrontID: storefrontID,
		language:     cfg.Language,
	}, nil
}

// StorefrontID returns the resolved numeric storefront id.
func (c *ClientImpl) StorefrontID() string {
	return c.storefrontID
}

// GetResource queries the lookup API. Caller parameters override country and lang.
func (c *ClientImpl) GetResource(ctx context.Context, params url.Values) (any, error) {
	query := c.sessionQuery()
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}

	subject := params.Encode()
	logger.Debugf(ctx, "Looking up %s", subject)

	return c.fetchJSON(ctx, c.cfg.LookupAPIURL, query, ErrLookupFetch, subject)
}

// GetITunesPage fetches {page}/{type}/{id}.
func (c *ClientImpl) GetITunesPage(ctx context.Context, resourceType, resourceID string) (any, error) {
	route, err := url.JoinPath(c.cfg.PageAPIURL, resourceType, resourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageFetch, err)
	}

	logger.Debugf(ctx, "Fetching page %s/%s", resourceType, resourceID)

	return c.fetchJSON(ctx, route, c.sessionQuery(), ErrPageFetch, resourceType+"/"+resourceID)
}

func (c *ClientImpl) sessionQuery() url.Values {
	query := url.Values{}
	query.Set(queryCountry, c.storefront)
	query.Set(queryLanguage, c.language)

	return query
}

// fetchJSON sends a GET request and decodes the body on HTTP 200.
func (c *ClientImpl) fetchJSON(
	ctx context.Context,
	route string,
	query url.Values,
	kind error,
	subject string,
) (any, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kind, err)
	}

	request.URL.RawQuery = query.Encode()

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kind, subject, err)
	}

	defer response.Body.Close() //nolint:errcheck // Body is fully read below.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kind, subject, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, http_transport.NewResponseError(kind, subject, response.StatusCode, body)
	}

	var result any

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	if err = decoder.Decode(&result); err != nil {
		return nil, http_transport.NewResponseError(kind, subject, response.StatusCode, body)
	}

	return result, nil
}
