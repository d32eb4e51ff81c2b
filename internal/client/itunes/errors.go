package itunes

import "errors"

var (
	// ErrUnknownStorefront indicates a country code missing from the storefront table.
	ErrUnknownStorefront = errors.New("unknown storefront")
	// ErrLookupFetch indicates that a lookup request failed.
	ErrLookupFetch = errors.New("failed to get lookup resource")
	// ErrPageFetch indicates that a page request failed.
	ErrPageFetch = errors.New("failed to get iTunes page")
)
