package applemusic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
)

// doRequest sends a request and returns the status code and the full body.
// A non-nil payload is sent as JSON.
func doRequest(
	ctx context.Context,
	httpClient *http.Client,
	method, route string,
	query url.Values,
	payload any,
) (int, []byte, error) {
	body := io.Reader(http.NoBody)

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, body)
	if err != nil {
		return 0, nil, err
	}

	if payload != nil {
		request.Header.Set(headerContentType, mimeJSON)
	}

	if len(query) > 0 {
		request.URL.RawQuery = query.Encode()
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return 0, nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Body is fully read below.

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return response.StatusCode, content, nil
}

// withLanguage returns a copy of query carrying the session language unless the caller set one.
func (c *ClientImpl) withLanguage(query url.Values) url.Values {
	result := make(url.Values, len(query)+1)

	for key, values := range query {
		result[key] = append([]string(nil), values...)
	}

	if !result.Has(queryLanguage) {
		result.Set(queryLanguage, c.language)
	}

	return result
}

// decodeJSON decodes body keeping numbers as json.Number so values round-trip verbatim.
func decodeJSON(body []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	return decoder.Decode(target)
}

// isTruthy reports whether a decoded JSON value is present and non-empty.
func isTruthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case json.Number:
		number, err := typed.Float64()

		return err != nil || number != 0
	case float64:
		return typed != 0
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() { //nolint:exhaustive // Every other kind is a scalar.
	case reflect.Map, reflect.Slice, reflect.Array:
		return reflected.Len() > 0
	default:
		return true
	}
}
