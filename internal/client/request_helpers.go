package client

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
)

// pagePath joins a page id and further segments into a relative API path.
// Ids are inserted as given.
func pagePath(pageID string, segments ...string) string {
	parts := append([]string{constants.PathPages, pageID}, segments...)

	return strings.Join(parts, "/")
}

// envelope wraps a payload under the resource's singular name.
func envelope(key string, payload interface{}) map[string]interface{} {
	return map[string]interface{}{key: payload}
}

// sendUpdate issues PUT for a full replacement and PATCH otherwise.
func sendUpdate(ctx context.Context, httpClient *http.Client, path string, body interface{}, replace bool) (*http.Response, error) {
	if replace {
		return httpClient.Put(ctx, path, body)
	}

	return httpClient.Patch(ctx, path, body)
}

// unwrapData returns the value under a top-level "data" key when the body is
// such an envelope, and the body itself otherwise.
func unwrapData(body []byte) []byte {
	var wrapped map[string]json.RawMessage

	if json.Unmarshal(body, &wrapped) != nil || len(wrapped) != 1 {
		return body
	}

	if data, ok := wrapped[constants.EnvelopeData]; ok {
		return data
	}

	return body
}
