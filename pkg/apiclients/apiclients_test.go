package apiclients_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/detailyang/third-party-api-clients/pkg/apiclients"
	"github.com/detailyang/third-party-api-clients/pkg/rest"
	"github.com/detailyang/third-party-api-clients/pkg/shipbob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTokenExpired = errors.New("token expired")

type failingTokens struct{}

func (failingTokens) GetToken(context.Context) (string, error) {
	return "", errTokenExpired
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "   ", expected: ""},
		{input: "https://api.shipbob.com/1.0", expected: "https://api.shipbob.com/1.0"},
		{input: "https://api.shipbob.com/1.0/", expected: "https://api.shipbob.com/1.0"},
		{input: " slack.com/api ", expected: "https://slack.com/api"},
		{input: "http://localhost:8080/", expected: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, apiclients.NormalizeBaseURL(tt.input))
		})
	}
}

func TestNewTransport_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := apiclients.NewTransport(nil)
	require.ErrorIs(t, err, apiclients.ErrBaseURLRequired)

	_, err = apiclients.NewTransport(&rest.Config{})
	require.ErrorIs(t, err, apiclients.ErrBaseURLRequired)
}

func TestServiceConstructors_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	docusignClient, err := apiclients.NewDocuSign(nil)
	require.NoError(t, err)
	assert.NotNil(t, docusignClient.EnvelopeWorkflowDefinition())

	shipbobClient, err := apiclients.NewShipBob(&rest.Config{})
	require.NoError(t, err)
	assert.NotNil(t, shipbobClient.Webhooks())

	slackClient, err := apiclients.NewSlack(&rest.Config{AccessToken: "xoxp"})
	require.NoError(t, err)
	assert.NotNil(t, slackClient.AdminEmoji())
}

func TestNewTransport_AppliesConfig(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.0/webhook", r.URL.Path)
		assert.Equal(t, "Bearer sb-token", r.Header.Get("Authorization"))
		assert.Equal(t, "apiclients-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, []string{"a", "b"}, r.Header.Values("X-Channel"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := apiclients.NewShipBob(&rest.Config{
		BaseURL:     server.URL + "/1.0/",
		AccessToken: "sb-token",
		UserAgent:   "apiclients-test/1.0",
		Headers:     http.Header{"X-Channel": []string{"a", "b"}},
		HTTPTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	_, err = client.Webhooks().GetPage(context.Background(), shipbob.WebhooksTopicsNoop, 0, 0)
	require.NoError(t, err)
}

func TestNewTransport_TokenManagerWins(t *testing.T) {
	t.Parallel()

	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	client, err := apiclients.NewShipBob(&rest.Config{
		BaseURL:     server.URL,
		AccessToken: "ignored",
		Tokens:      failingTokens{},
	})
	require.NoError(t, err)

	err = client.Webhooks().Delete(context.Background(), 1)
	require.ErrorIs(t, err, errTokenExpired)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestNewTransport_Retries(t *testing.T) {
	t.Parallel()

	t.Run("off by default", func(t *testing.T) {
		t.Parallel()

		var requests int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client, err := apiclients.NewShipBob(&rest.Config{BaseURL: server.URL})
		require.NoError(t, err)

		err = client.Webhooks().Delete(context.Background(), 1)
		assert.Equal(t, http.StatusServiceUnavailable, rest.StatusCode(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
	})

	t.Run("enabled by RetryMax", func(t *testing.T) {
		t.Parallel()

		var requests int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&requests, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client, err := apiclients.NewShipBob(&rest.Config{
			BaseURL:      server.URL,
			RetryMax:     3,
			RetryWaitMin: time.Millisecond,
			RetryWaitMax: 5 * time.Millisecond,
		})
		require.NoError(t, err)

		require.NoError(t, client.Webhooks().Delete(context.Background(), 1))
		assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
	})
}
