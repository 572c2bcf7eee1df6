package shipbob

import (
	"context"
	"net/http"
	"strconv"

	"github.com/detailyang/third-party-api-clients/pkg/rest"
)

// Query parameter names, in the order they are sent.
const (
	paramLimit = "Limit"
	paramPage  = "Page"
	paramTopic = "Topic"
)

var (
	getWebhooksPage = rest.Endpoint{
		Name:   "webhooks.get_page",
		Method: http.MethodGet,
		Path:   "/webhook",
		Query:  []string{paramLimit, paramPage, paramTopic},
	}
	getAllWebhooks = rest.Endpoint{
		Name:      "webhooks.get_all",
		Method:    http.MethodGet,
		Path:      "/webhook",
		Query:     []string{paramTopic},
		Paginated: true,
	}
	postWebhook = rest.Endpoint{
		Name:   "webhooks.post",
		Method: http.MethodPost,
		Path:   "/webhook",
	}
	deleteWebhook = rest.Endpoint{
		Name:   "webhooks.delete",
		Method: http.MethodDelete,
		Path:   "/webhook/{id}",
	}
)

// Webhooks manages webhook subscriptions. All list filters are ANDed.
type Webhooks struct {
	transport rest.Transport
}

// NewWebhooks creates the binding over transport.
func NewWebhooks(transport rest.Transport) *Webhooks {
	return &Webhooks{transport: transport}
}

// GetPage returns one page of webhooks. A zero topic, page or limit is left
// out of the query.
func (c *Webhooks) GetPage(ctx context.Context, topic WebhooksTopics, page, limit int64) ([]Webhook, error) {
	webhooks, err := rest.Get[[]Webhook](ctx, c.transport, getWebhooksPage, rest.Call{
		Query: rest.Values{
			paramLimit: limit,
			paramPage:  page,
			paramTopic: topic,
		},
	})
	if err != nil {
		return nil, err
	}

	return *webhooks, nil
}

// GetAll returns the webhooks of every page.
func (c *Webhooks) GetAll(ctx context.Context, topic WebhooksTopics) ([]Webhook, error) {
	return rest.GetAllPages[Webhook](ctx, c.transport, getAllWebhooks, rest.Call{
		Query: rest.Values{paramTopic: topic},
	})
}

// Post creates a webhook subscription.
func (c *Webhooks) Post(ctx context.Context, body *CreateWebhookSubscriptionModel) (*Webhook, error) {
	return rest.Post[Webhook](ctx, c.transport, postWebhook, rest.Call{Body: body})
}

// Delete removes a webhook subscription.
func (c *Webhooks) Delete(ctx context.Context, id int64) error {
	return rest.Delete(ctx, c.transport, deleteWebhook, rest.Call{
		Path: []string{strconv.FormatInt(id, 10)},
	})
}
