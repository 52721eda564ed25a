package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

const testAPIKey = "OAuth test-key"

// newTestClient starts a server for handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&statuspage.Config{APIKey: testAPIKey, BaseURL: server.URL})
	require.NoError(t, err)

	return client
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeEnvelope reads a request body and returns the payload under key.
func decodeEnvelope(t *testing.T, r *http.Request, key string) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var body map[string]map[string]interface{}

	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body, 1, "body should hold a single envelope key")
	require.Contains(t, body, key)

	return body[key]
}

// TestUpdateOperation describes an update call whose verb depends on replace.
type TestUpdateOperation struct {
	Name         string
	ExpectedPath string
	Envelope     string
	Response     interface{}
	Call         func(ctx context.Context, c *Client, replace bool) error
}

// RunUpdateTests checks that replace=true sends PUT and replace=false sends
// PATCH, both with the expected envelope.
func RunUpdateTests(t *testing.T, tests []TestUpdateOperation) {
	t.Helper()

	for _, testCase := range tests {
		for _, replace := range []bool{true, false} {
			wantMethod := http.MethodPatch
			if replace {
				wantMethod = http.MethodPut
			}

			t.Run(testCase.Name+" "+wantMethod, func(t *testing.T) {
				calls := 0

				client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					calls++

					assert.Equal(t, testCase.ExpectedPath, r.URL.Path)
					assert.Equal(t, wantMethod, r.Method)
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					decodeEnvelope(t, r, testCase.Envelope)

					writeJSON(w, http.StatusOK, testCase.Response)
				})

				err := testCase.Call(context.Background(), client, replace)
				require.NoError(t, err)
				assert.Equal(t, 1, calls)
			})
		}
	}
}

// TestDeleteOperation describes a DELETE-verb call.
type TestDeleteOperation struct {
	Name         string
	ExpectedPath string
	Call         func(ctx context.Context, c *Client) error
}

// RunDeleteTests checks the verb and path of each delete, that a success
// yields nil even when the body is not JSON, and that failures map to an
// APIError.
func RunDeleteTests(t *testing.T, tests []TestDeleteOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, r.URL.Path)
				assert.Equal(t, http.MethodDelete, r.Method)

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("not json"))
			})

			err := testCase.Call(context.Background(), client)
			require.NoError(t, err)
		})

		t.Run(testCase.Name+" no content", func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			err := testCase.Call(context.Background(), client)
			require.NoError(t, err)
		})

		t.Run(testCase.Name+" not found", func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			})

			err := testCase.Call(context.Background(), client)
			require.Error(t, err)
			assert.True(t, statuspage.IsNotFound(err))
		})
	}
}

// TestGetOperation describes a read call checked for path and query.
type TestGetOperation struct {
	Name          string
	ExpectedPath  string
	ExpectedQuery string
	Response      interface{}
	Call          func(ctx context.Context, c *Client) error
}

// RunGetTests checks the path and raw query of each read and that the body
// parses.
func RunGetTests(t *testing.T, tests []TestGetOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, r.URL.Path)
				assert.Equal(t, testCase.ExpectedQuery, r.URL.RawQuery)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, testAPIKey, r.Header.Get("Authorization"))

				writeJSON(w, http.StatusOK, testCase.Response)
			})

			err := testCase.Call(context.Background(), client)
			require.NoError(t, err)
		})
	}
}
