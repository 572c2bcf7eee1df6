package shipbob

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrUnknownTopic = errors.New("unknown webhook topic")
)

// WebhooksTopics is the event a webhook subscribes to. The zero value means
// "no topic" and is never sent as a query parameter.
type WebhooksTopics string

// Known webhook topics.
const (
	WebhooksTopicsNoop              WebhooksTopics = ""
	WebhooksTopicsOrderShipped      WebhooksTopics = "order_shipped"
	WebhooksTopicsShipmentCancelled WebhooksTopics = "shipment_cancelled"
	WebhooksTopicsShipmentDelivered WebhooksTopics = "shipment_delivered"
	WebhooksTopicsShipmentException WebhooksTopics = "shipment_exception"
	WebhooksTopicsShipmentOnhold    WebhooksTopics = "shipment_onhold"
)

// String returns the wire value of the topic.
func (t WebhooksTopics) String() string {
	return string(t)
}

// AllWebhooksTopics returns the known topics.
func AllWebhooksTopics() []WebhooksTopics {
	return []WebhooksTopics{
		WebhooksTopicsOrderShipped,
		WebhooksTopicsShipmentCancelled,
		WebhooksTopicsShipmentDelivered,
		WebhooksTopicsShipmentException,
		WebhooksTopicsShipmentOnhold,
	}
}

// ParseWebhooksTopics matches value case-insensitively against the known
// topics. An empty value yields WebhooksTopicsNoop.
func ParseWebhooksTopics(value string) (WebhooksTopics, error) {
	if value == "" {
		return WebhooksTopicsNoop, nil
	}

	for _, topic := range AllWebhooksTopics() {
		if strings.EqualFold(value, topic.String()) {
			return topic, nil
		}
	}

	return WebhooksTopicsNoop, fmt.Errorf("%w: %q", ErrUnknownTopic, value)
}

// Webhook is a webhook subscription.
type Webhook struct {
	ID              int64          `json:"id"                   yaml:"id"`
	CreatedAt       *time.Time     `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	SubscriptionURL string         `json:"subscription_url"     yaml:"subscription_url"`
	Topic           WebhooksTopics `json:"topic"                yaml:"topic"`
}

// CreateWebhookSubscriptionModel is the body of a subscription request.
type CreateWebhookSubscriptionModel struct {
	SubscriptionURL string         `json:"subscription_url" yaml:"subscription_url"`
	Topic           WebhooksTopics `json:"topic"            yaml:"topic"`
}
