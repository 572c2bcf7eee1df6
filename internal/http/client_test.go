package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apihttp "github.com/detailyang/third-party-api-clients/internal/http"
	"github.com/detailyang/third-party-api-clients/pkg/rest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

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

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.add("debug", msg, fields)
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.add("info", msg, fields)
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.add("warn", msg, fields)
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.add("error", msg, fields)
}

func (l *MockLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string

	for _, entry := range l.logs {
		if entry["level"] == level {
			out = append(out, entry["msg"].(string))
		}
	}

	return out
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1.0/webhook", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_, err := uuid.Parse(request.Header.Get("X-Request-Id"))
			assert.NoError(t, err)

			_ = json.NewEncoder(writer).Encode([]map[string]int{{"id": 1}})
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL+"/1.0/", &MockTokenManager{token: "test-token"})
		assert.Equal(t, server.URL+"/1.0", client.BaseURL())

		resp, err := client.Do(context.Background(), &apihttp.Request{
			Method: http.MethodGet,
			Path:   "/webhook",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[{"id":1}]`, string(resp.Body))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhook", request.URL.Path)
			assert.Equal(t, "Page=2&Topic=order_shipped&extra=1", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &apihttp.Request{
			Method: http.MethodGet,
			Path:   "/webhook?Page=2&Topic=order_shipped",
			Query:  url.Values{"extra": []string{"1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"topic":"order_shipped","subscription_url":"https://example.com/hook"}`, string(body))

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id":9}`))
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &apihttp.Request{
			Method: http.MethodPost,
			Path:   "/webhook",
			Body:   map[string]string{"topic": "order_shipped", "subscription_url": "https://example.com/hook"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"Webhook not found"}`))
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil)

		resp, err := client.Delete(context.Background(), "/webhook/404")
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var transportErr *rest.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.MethodDelete, transportErr.Method)
		assert.Equal(t, server.URL+"/webhook/404", transportErr.URL)
		assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
		assert.JSONEq(t, `{"message":"Webhook not found"}`, string(transportErr.Body))
		assert.True(t, rest.IsNotFound(err))
	})

	t.Run("token error", func(t *testing.T) {
		t.Parallel()

		tokenErr := errors.New("token expired")
		client := apihttp.NewClient("https://api.example.com", &MockTokenManager{err: tokenErr})

		_, err := client.Get(context.Background(), "/webhook")
		require.Error(t, err)
		require.ErrorIs(t, err, tokenErr)

		var transportErr *rest.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, 0, transportErr.StatusCode)
	})

	t.Run("empty token sends no authorization", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, rest.StaticToken(""))

		_, err := client.Get(context.Background(), "/")
		require.NoError(t, err)
	})

	t.Run("network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		address := server.URL
		server.Close()

		client := apihttp.NewClient(address, nil)

		_, err := client.Get(context.Background(), "/webhook")
		require.Error(t, err)

		var transportErr *rest.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, 0, transportErr.StatusCode)
		assert.Error(t, transportErr.Err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := apihttp.NewClient(server.URL, nil)

		_, err := client.Get(ctx, "/webhook")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unencodable body", func(t *testing.T) {
		t.Parallel()

		client := apihttp.NewClient("https://api.example.com", nil)

		_, err := client.Do(context.Background(), &apihttp.Request{
			Method: http.MethodPost,
			Path:   "/webhook",
			Body:   make(chan int),
		})
		require.Error(t, err)
		assert.True(t, rest.IsSerialization(err))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Headers(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen http.Header
	)

	lastHeaders := func() http.Header {
		mu.Lock()
		defer mu.Unlock()

		return seen
	}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mu.Lock()
		seen = request.Header.Clone()
		mu.Unlock()

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := apihttp.NewClient(server.URL, rest.StaticToken("abc"),
		apihttp.WithUserAgent("custom-agent/1.0"),
		apihttp.WithHeader("X-Tenant", "acme"),
		apihttp.WithHeader("X-Multi", "one"),
		apihttp.WithHeader("X-Multi", "two"),
	)

	_, err := client.Do(context.Background(), &apihttp.Request{
		Method:  http.MethodGet,
		Path:    "/",
		Headers: map[string]string{"X-Tenant": "override"},
	})
	require.NoError(t, err)

	headers := lastHeaders()
	assert.Equal(t, "custom-agent/1.0", headers.Get("User-Agent"))
	assert.Equal(t, "override", headers.Get("X-Tenant"))
	assert.Equal(t, []string{"one", "two"}, headers.Values("X-Multi"))
	assert.Equal(t, "Bearer abc", headers.Get("Authorization"))
	assert.NotEmpty(t, headers.Get("X-Request-Id"))

	defaults := apihttp.NewClient(server.URL, nil)

	_, err = defaults.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "third-party-api-clients/0.1.0", lastHeaders().Get("User-Agent"))
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(writer, `{"method":%q,"path":%q,"body":%q}`, request.Method, request.URL.Path, string(body))
	}))
	t.Cleanup(server.Close)

	client := apihttp.NewClient(server.URL, nil)
	ctx := context.Background()

	type echo struct {
		Method string `json:"method"`
		Path   string `json:"path"`
		Body   string `json:"body"`
	}

	tests := []struct {
		name     string
		call     func() (*rest.Response, error)
		expected echo
	}{
		{
			name:     "GET",
			call:     func() (*rest.Response, error) { return client.Get(ctx, "/get") },
			expected: echo{Method: http.MethodGet, Path: "/get"},
		},
		{
			name:     "POST",
			call:     func() (*rest.Response, error) { return client.Post(ctx, "/post", []byte(`{"a":1}`)) },
			expected: echo{Method: http.MethodPost, Path: "/post", Body: `{"a":1}`},
		},
		{
			name:     "POST without body",
			call:     func() (*rest.Response, error) { return client.Post(ctx, "/post", nil) },
			expected: echo{Method: http.MethodPost, Path: "/post"},
		},
		{
			name:     "PUT",
			call:     func() (*rest.Response, error) { return client.Put(ctx, "/put", []byte(`{"b":2}`)) },
			expected: echo{Method: http.MethodPut, Path: "/put", Body: `{"b":2}`},
		},
		{
			name:     "PATCH",
			call:     func() (*rest.Response, error) { return client.Patch(ctx, "/patch", []byte(`{}`)) },
			expected: echo{Method: http.MethodPatch, Path: "/patch", Body: `{}`},
		},
		{
			name:     "DELETE",
			call:     func() (*rest.Response, error) { return client.Delete(ctx, "/delete") },
			expected: echo{Method: http.MethodDelete, Path: "/delete"},
		},
		{
			name:     "absolute URL",
			call:     func() (*rest.Response, error) { return client.Get(ctx, server.URL+"/absolute") },
			expected: echo{Method: http.MethodGet, Path: "/absolute"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := tt.call()
			require.NoError(t, err)

			var got echo

			require.NoError(t, json.Unmarshal(resp.Body, &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := apihttp.NewClient(server.URL, nil, apihttp.WithLogger(logger), apihttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/webhook")
	require.NoError(t, err)

	assert.Equal(t, []string{"HTTP Request", "HTTP Response"}, logger.messages("debug"))

	quiet := &MockLogger{}
	client = apihttp.NewClient(server.URL, nil, apihttp.WithLogger(quiet))

	_, err = client.Get(context.Background(), "/webhook")
	require.NoError(t, err)
	assert.Empty(t, quiet.messages("debug"))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries are off by default", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/webhook")
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, rest.StatusCode(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("retries on server error", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			count := atomic.AddInt32(&attempts, 1)
			if count < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := apihttp.NewClient(server.URL, nil,
			apihttp.WithLogger(logger),
			apihttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond),
		)

		resp, err := client.Get(context.Background(), "/webhook")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
		assert.Equal(t, []string{"Retrying request", "Retrying request"}, logger.messages("warn"))
	})

	t.Run("retry body is resent", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"name":"party"}`, string(body))

			if atomic.AddInt32(&attempts, 1) == 1 {
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil, apihttp.WithRetryConfig(1, time.Millisecond, 5*time.Millisecond))

		_, err := client.Post(context.Background(), "/admin.emoji.add", []byte(`{"name":"party"}`))
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil, apihttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

		_, err := client.Get(context.Background(), "/webhook")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, rest.StatusCode(err))
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := apihttp.NewClient(server.URL, nil, apihttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		_, err := client.Delete(context.Background(), "/webhook/1")
		require.Error(t, err)
		assert.True(t, rest.IsNotFound(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := apihttp.NewClient(server.URL, nil, apihttp.WithTimeout(20*time.Millisecond))

	_, err := client.Get(context.Background(), "/slow")
	require.Error(t, err)

	var transportErr *rest.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	var used int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			atomic.AddInt32(&used, 1)

			return http.DefaultTransport.RoundTrip(req)
		}),
	}

	client := apihttp.NewClient(server.URL, nil, apihttp.WithHTTPClient(httpClient))

	_, err := client.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&used))
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Client satisfies the binding transport contract.
var _ rest.Transport = (*apihttp.Client)(nil)
