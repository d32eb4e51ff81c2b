package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/oshokin/applemusic-client/internal/client/itunes"
	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/logger"
)

// ErrInvalidLookupParam indicates a lookup argument that is not key=value.
var ErrInvalidLookupParam = errors.New("lookup parameter must be key=value")

// ParseLookupParams turns key=value arguments into query parameters.
// Repeated keys keep every value.
func ParseLookupParams(args []string) (url.Values, error) {
	params := url.Values{}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidLookupParam, arg)
		}

		params.Add(strings.TrimSpace(key), value)
	}

	return params, nil
}

// RunLookup parses key=value arguments and queries the lookup API through client.
func RunLookup(ctx context.Context, client itunes.Client, args []string) (any, error) {
	params, err := ParseLookupParams(args)
	if err != nil {
		return nil, err
	}

	return client.GetResource(ctx, params)
}

// ExecuteLookupCommand queries the lookup API and writes the response out.
func ExecuteLookupCommand(ctx context.Context, cfg *config.Config, args []string) {
	ctx = NewSessionContext(ctx)

	if _, err := ParseLookupParams(args); err != nil {
		logger.Fatalf(ctx, "Invalid lookup arguments: %v", err)
	}

	result, err := RunLookup(ctx, mustLookupClient(ctx, cfg), args)
	if err != nil {
		logger.Fatalf(ctx, "Lookup failed: %v", err)
	}

	mustWriteResult(ctx, cfg, result)
}

// ExecutePageCommand fetches a page and writes the response out.
func ExecutePageCommand(ctx context.Context, cfg *config.Config, resourceType, resourceID string) {
	ctx = NewSessionContext(ctx)
	client := mustLookupClient(ctx, cfg)

	result, err := client.GetITunesPage(ctx, resourceType, resourceID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch page %s/%s: %v", resourceType, resourceID, err)
	}

	mustWriteResult(ctx, cfg, result)
}

func mustLookupClient(ctx context.Context, cfg *config.Config) itunes.Client {
	client, err := itunes.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize lookup client: %v", err)
	}

	logger.Debugf(ctx, "Using storefront id %s", client.StorefrontID())

	return client
}
