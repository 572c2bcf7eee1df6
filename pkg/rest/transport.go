package rest

import (
	"context"
	"encoding/json"
	"net/http"
)

// Response is the raw outcome of a successful transport call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Transport executes requests relative to a service base URL. Paths passed
// in already carry escaped segments and any query string. Implementations
// set Content-Type for non-nil bodies and report failures, including non-2xx
// statuses, as *TransportError.
type Transport interface {
	Get(ctx context.Context, path string) (*Response, error)
	GetAllPages(ctx context.Context, path string) ([]json.RawMessage, error)
	Post(ctx context.Context, path string, body []byte) (*Response, error)
	Put(ctx context.Context, path string, body []byte) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)
}

// TokenManager supplies the bearer token attached to each request. An empty
// token means the request is sent unauthenticated.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenManager that always returns the same token.
type StaticToken string

// GetToken implements TokenManager.
func (t StaticToken) GetToken(ctx context.Context) (string, error) {
	return string(t), nil
}
