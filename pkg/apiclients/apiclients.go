// Package apiclients is the entry point for building service clients.
package apiclients

import (
	"errors"
	"strings"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	transport "github.com/detailyang/third-party-api-clients/internal/http"
	"github.com/detailyang/third-party-api-clients/pkg/docusign"
	"github.com/detailyang/third-party-api-clients/pkg/rest"
	"github.com/detailyang/third-party-api-clients/pkg/shipbob"
	"github.com/detailyang/third-party-api-clients/pkg/slack"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// NewTransport creates the HTTP transport described by config. config.BaseURL
// must be set.
func NewTransport(config *rest.Config) (rest.Transport, error) {
	if config == nil || config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	return transport.NewClient(NormalizeBaseURL(config.BaseURL), tokenManager(config), transportOptions(config)...), nil
}

// NewDocuSign creates a DocuSign client. An empty BaseURL selects the
// production eSignature API.
func NewDocuSign(config *rest.Config) (*docusign.Client, error) {
	client, err := newServiceTransport(config, constants.DocuSignBaseURL)
	if err != nil {
		return nil, err
	}

	return docusign.New(client), nil
}

// NewShipBob creates a ShipBob client. An empty BaseURL selects the
// production API.
func NewShipBob(config *rest.Config) (*shipbob.Client, error) {
	client, err := newServiceTransport(config, constants.ShipBobBaseURL)
	if err != nil {
		return nil, err
	}

	return shipbob.New(client), nil
}

// NewSlack creates a Slack client. An empty BaseURL selects slack.com.
func NewSlack(config *rest.Config) (*slack.Client, error) {
	client, err := newServiceTransport(config, constants.SlackBaseURL)
	if err != nil {
		return nil, err
	}

	return slack.New(client), nil
}

// NormalizeBaseURL trims a trailing slash and defaults the scheme to https.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return ""
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

func newServiceTransport(config *rest.Config, defaultBaseURL string) (rest.Transport, error) {
	resolved := rest.Config{}
	if config != nil {
		resolved = *config
	}

	if resolved.BaseURL == "" {
		resolved.BaseURL = defaultBaseURL
	}

	return NewTransport(&resolved)
}

func tokenManager(config *rest.Config) rest.TokenManager {
	if config.Tokens != nil {
		return config.Tokens
	}

	if config.AccessToken != "" {
		return rest.StaticToken(config.AccessToken)
	}

	return nil
}

// transportOptions converts config into transport options.
func transportOptions(config *rest.Config) []transport.Option {
	var opts []transport.Option

	if config.Logger != nil {
		opts = append(opts, transport.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, transport.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(config.UserAgent))
	}

	for key, values := range config.Headers {
		for _, value := range values {
			opts = append(opts, transport.WithHeader(key, value))
		}
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, transport.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, transport.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}
