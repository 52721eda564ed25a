package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	sphttp "github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msgs = append(msgs, entry["msg"].(string))
	}

	return msgs
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/pages", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "OAuth test-key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			response := []map[string]string{{"id": "page-1", "name": "Status"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "OAuth test-key")

		req := &sphttp.Request{
			Method: "GET",
			Path:   "pages",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, resp.IsSuccess())

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "page-1", result[0]["id"])
	})

	t.Run("authorization header is sent verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "raw-key", request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "raw-key")

		_, err := client.Get(context.Background(), "pages", nil)
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/pages/p1/components", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key")

		req := &sphttp.Request{
			Method: "GET",
			Path:   "pages/p1/components",
			Query:  url.Values{"page": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("empty query adds no question mark", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)
			assert.NotContains(t, request.RequestURI, "?")
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key")

		_, err := client.Get(context.Background(), "pages", url.Values{})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "API", body["component"]["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key")

		req := &sphttp.Request{
			Method: "POST",
			Path:   "pages/p1/components",
			Body:   map[string]map[string]string{"component": {"name": "API"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{"error": "not found"})
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key")

		resp, err := client.Get(context.Background(), "pages/p1/incidents/missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 404, resp.StatusCode)
		assert.False(t, resp.IsSuccess())

		var apiErr *statuspage.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, statuspage.ErrorKindNotFound, apiErr.Kind)
		assert.Equal(t, "not found", apiErr.Message)
		assert.True(t, errors.Is(err, statuspage.ErrNotFound))
	})

	t.Run("custom error formatter", func(t *testing.T) {
		t.Parallel()

		errCustom := errors.New("custom")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key", sphttp.WithErrorFormatter(func(statusCode int, body []byte) error {
			return errCustom
		}))

		_, err := client.Get(context.Background(), "pages", nil)
		require.ErrorIs(t, err, errCustom)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "my-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key", sphttp.WithUserAgent("my-agent"))

		req := &sphttp.Request{
			Method: "GET",
			Path:   "pages",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := sphttp.NewClient(server.URL, "key", sphttp.WithLogger(logger), sphttp.WithDebug(true))

		_, err := client.Get(context.Background(), "pages", nil)
		require.NoError(t, err)

		msgs := logger.messages()
		assert.Contains(t, msgs, "HTTP Request")
		assert.Contains(t, msgs, "HTTP Response")
	})

	t.Run("logger without debug stays silent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := sphttp.NewClient(server.URL, "key", sphttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "pages", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})

	t.Run("interceptors run around the request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "abc", request.Header.Get("X-Request-ID"))
			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		var seenStatus int

		chain := statuspage.NewInterceptorChain()
		chain.AddRequestInterceptor(statuspage.HeaderInterceptor(map[string]string{"X-Request-ID": "abc"}))
		chain.AddResponseInterceptor(func(ctx context.Context, req *statuspage.Request, resp *statuspage.Response) error {
			seenStatus = resp.StatusCode

			return nil
		})

		client := sphttp.NewClient(server.URL, "key", sphttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "pages", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, seenStatus)
	})

	t.Run("failing request interceptor aborts the call", func(t *testing.T) {
		t.Parallel()

		called := false

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			called = true
		}))
		defer server.Close()

		errStop := errors.New("stop")

		chain := statuspage.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *statuspage.Request) error {
			return errStop
		})

		client := sphttp.NewClient(server.URL, "key", sphttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "pages", nil)
		require.ErrorIs(t, err, errStop)
		assert.False(t, called)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sphttp.NewClient(server.URL, "key")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		resp, err := client.Get(ctx, "pages", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		var apiErr *statuspage.APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*sphttp.Client, context.Context) (*sphttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *sphttp.Client, ctx context.Context) (*sphttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *sphttp.Client, ctx context.Context) (*sphttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *sphttp.Client, ctx context.Context) (*sphttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *sphttp.Client, ctx context.Context) (*sphttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *sphttp.Client, ctx context.Context) (*sphttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := sphttp.NewClient(server.URL, "key")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, 420} {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			t.Parallel()

			var mu sync.Mutex

			attempts := 0

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				mu.Lock()
				attempts++
				mu.Unlock()

				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := sphttp.NewClient(server.URL, "key")

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 1, attempts)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "https://api.statuspage.io/v1/"},
		{"https://api.statuspage.io/v1", "https://api.statuspage.io/v1/"},
		{"https://api.statuspage.io/v1/", "https://api.statuspage.io/v1/"},
		{"api.example.com/v1", "https://api.example.com/v1/"},
		{"http://localhost:8080", "http://localhost:8080/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sphttp.NormalizeBaseURL(tt.in), tt.in)
	}
}
