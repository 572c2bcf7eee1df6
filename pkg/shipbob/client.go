// Package shipbob binds the ShipBob fulfillment API 1.0.
package shipbob

import "github.com/detailyang/third-party-api-clients/pkg/rest"

// Client groups the ShipBob resource bindings over one shared transport.
type Client struct {
	webhooks *Webhooks
}

// New creates a ShipBob client.
func New(transport rest.Transport) *Client {
	return &Client{
		webhooks: NewWebhooks(transport),
	}
}

// Webhooks returns the webhooks binding.
func (c *Client) Webhooks() *Webhooks {
	return c.webhooks
}

// Endpoints lists every endpoint this package can call.
func Endpoints() []rest.Endpoint {
	return []rest.Endpoint{getWebhooksPage, getAllWebhooks, postWebhook, deleteWebhook}
}
