// Package itunes provides a client for the public iTunes lookup and page APIs.
// The client is bound to one storefront, resolved from a static table of
// two-letter country codes before any request is made.
package itunes
