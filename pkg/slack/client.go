// Package slack binds the Slack Web API admin methods.
package slack

import "github.com/detailyang/third-party-api-clients/pkg/rest"

// Client groups the Slack resource bindings over one shared transport.
type Client struct {
	adminEmoji *AdminEmoji
}

// New creates a Slack client.
func New(transport rest.Transport) *Client {
	return &Client{
		adminEmoji: NewAdminEmoji(transport),
	}
}

// AdminEmoji returns the admin emoji binding.
func (c *Client) AdminEmoji() *AdminEmoji {
	return c.adminEmoji
}

// Endpoints lists every endpoint this package can call.
func Endpoints() []rest.Endpoint {
	return []rest.Endpoint{addEmoji, addEmojiAlias, listEmoji, removeEmoji, renameEmoji}
}
