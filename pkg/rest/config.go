package rest

import (
	"net/http"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config describes how to reach one third-party service.
//
// Per-request timeouts should generally be controlled via the context passed
// to binding methods; HTTPTimeout is a coarse upper bound applied to the
// underlying http.Client. Retries are off unless RetryMax is positive, in
// which case 5xx, 429 and connection errors are retried with exponential
// backoff between RetryWaitMin and RetryWaitMax.
type Config struct {
	// BaseURL of the service API. Empty selects the service default. A
	// missing scheme is normalised to https and a trailing slash trimmed.
	BaseURL string
	// AccessToken is sent as a Bearer token when set.
	AccessToken string
	// Tokens overrides AccessToken with a dynamic token source.
	Tokens TokenManager

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Headers are added to every request.
	Headers http.Header
	// HTTPTimeout bounds a single HTTP round trip. Zero selects the default.
	HTTPTimeout time.Duration

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug  bool
	Logger Logger
}
