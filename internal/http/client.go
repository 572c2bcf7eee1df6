// Package http is the shared transport behind every service binding.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/detailyang/third-party-api-clients/pkg/rest"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Static errors for err113 compliance.
var (
	ErrTooManyPages    = errors.New("pagination exceeded page limit")
	ErrCrossOriginLink = errors.New("next page link points to another origin")
)

// Request is a single HTTP call relative to the client's base URL.
type Request struct {
	Method string
	// Path is relative to the base URL and may already contain a query
	// string. Absolute http(s) URLs are used as-is.
	Path  string
	Query url.Values
	// Body may be nil, raw JSON bytes or any value encoding/json accepts.
	Body    any
	Headers map[string]string
}

// Client is a JSON-over-HTTP transport. It is safe for concurrent use.
type Client struct {
	baseURL   string
	tokens    rest.TokenManager
	http      *retryablehttp.Client
	logger    rest.Logger
	debug     bool
	userAgent string
	headers   http.Header
	maxPages  int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and retry messages.
func WithLogger(logger rest.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Add(key, value)
	}
}

// WithTimeout bounds each HTTP round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http.HTTPClient = httpClient
	}
}

// WithMaxPages bounds GetAllPages.
func WithMaxPages(maxPages int) Option {
	return func(c *Client) {
		c.maxPages = maxPages
	}
}

// WithRetryConfig enables retries of 5xx, 429 and connection failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
		c.http.CheckRetry = retryablehttp.DefaultRetryPolicy
	}
}

// NewClient creates a transport rooted at baseURL. tokens may be nil.
func NewClient(baseURL string, tokens rest.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		tokens:    tokens,
		userAgent: constants.DefaultUserAgent,
		headers:   make(http.Header),
		maxPages:  constants.MaxPages,
		http: &retryablehttp.Client{
			HTTPClient:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
			Backoff:      retryablehttp.DefaultBackoff,
			ErrorHandler: retryablehttp.PassthroughErrorHandler,
			RetryMax:     0,
			RetryWaitMin: constants.DefaultRetryWaitMin,
			RetryWaitMax: constants.DefaultRetryWaitMax,
			// disabled until WithRetryConfig
			CheckRetry: func(_ context.Context, _ *http.Response, err error) (bool, error) {
				return false, err
			},
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	client.http.RequestLogHook = client.logRetry

	return client
}

// BaseURL returns the root every relative path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*rest.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

// Post performs a POST request. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*rest.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request. A nil body sends no payload.
func (c *Client) Put(ctx context.Context, path string, body []byte) (*rest.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body []byte) (*rest.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*rest.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do sends req. For a non-2xx status both the response and a
// *rest.TransportError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*rest.Response, error) {
	target := c.resolve(req.Path, req.Query)

	payload, err := requestBody(req.Body)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if payload != nil {
		rawBody = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, rawBody)
	if err != nil {
		return nil, &rest.TransportError{Method: req.Method, URL: target, Err: err}
	}

	requestID := uuid.NewString()

	err = c.setHeaders(ctx, httpReq, req, payload != nil, requestID)
	if err != nil {
		return nil, &rest.TransportError{Method: req.Method, URL: target, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     req.Method,
			"url":        target,
			"request_id": requestID,
		})
	}

	start := time.Now()

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &rest.TransportError{Method: req.Method, URL: target, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &rest.TransportError{Method: req.Method, URL: target, StatusCode: httpResp.StatusCode, Err: err}
	}

	resp := &rest.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         target,
			"status_code": httpResp.StatusCode,
			"duration":    time.Since(start).String(),
			"request_id":  requestID,
		})
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, &rest.TransportError{
			Method:     req.Method,
			URL:        target,
			StatusCode: httpResp.StatusCode,
			Body:       body,
		}
	}

	return resp, nil
}

func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request, hasBody bool, requestID string) error {
	for key, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-Id", requestID)

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting access token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

func (c *Client) resolve(path string, query url.Values) string {
	target := path
	if !isAbsolute(path) {
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		target = c.baseURL + path
	}

	if len(query) == 0 {
		return target
	}

	if strings.Contains(target, "?") {
		return target + "&" + query.Encode()
	}

	return target + "?" + query.Encode()
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":     req.Method,
		"url":        req.URL.String(),
		"attempt":    attempt,
		"request_id": req.Header.Get("X-Request-Id"),
	})
}

func requestBody(body any) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	default:
		payload, err := json.Marshal(typed)
		if err != nil {
			return nil, &rest.SerializationError{Op: "encode", Type: fmt.Sprintf("%T", typed), Err: err}
		}

		return payload, nil
	}
}

func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
