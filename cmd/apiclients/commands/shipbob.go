package commands

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/detailyang/third-party-api-clients/pkg/shipbob"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewShipBobCommand creates the shipbob command group.
func NewShipBobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipbob",
		Short: "ShipBob fulfillment operations",
		Long:  "Call the ShipBob fulfillment API",
	}

	cmd.AddCommand(newShipBobWebhooksCommand())

	return cmd
}

func newShipBobWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "wh"},
		Short:   "Manage webhook subscriptions",
		Long:    "List, create and delete ShipBob webhook subscriptions",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	var (
		topic    string
		page     int64
		limit    int64
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhook subscriptions",
		Long:  "List webhook subscriptions, optionally filtered by topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedTopic, err := shipbob.ParseWebhooksTopics(topic)
			if err != nil {
				return fmt.Errorf("%w: %w", constants.ErrInvalidWebhookTopic, err)
			}

			client, err := newShipBobClient()
			if err != nil {
				return err
			}

			var webhooks []shipbob.Webhook
			if allPages {
				webhooks, err = client.Webhooks().GetAll(cmd.Context(), parsedTopic)
			} else {
				webhooks, err = client.Webhooks().GetPage(cmd.Context(), parsedTopic, page, limit)
			}

			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), webhooks, renderWebhooksTable)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "filter by topic")
	cmd.Flags().Int64Var(&page, "page", 0, "page number")
	cmd.Flags().Int64Var(&limit, "limit", 0, "maximum webhooks per page")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		topic string
		url   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook subscription",
		Long:  "Subscribe a URL to a webhook topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" {
				return constants.ErrTopicRequired
			}

			if url == "" {
				return constants.ErrURLRequired
			}

			parsedTopic, err := shipbob.ParseWebhooksTopics(topic)
			if err != nil {
				return fmt.Errorf("%w: %w", constants.ErrInvalidWebhookTopic, err)
			}

			client, err := newShipBobClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Post(cmd.Context(), &shipbob.CreateWebhookSubscriptionModel{
				SubscriptionURL: url,
				Topic:           parsedTopic,
			})
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), []shipbob.Webhook{*webhook}, renderWebhooksTable)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "webhook topic (required)")
	cmd.Flags().StringVar(&url, "url", "", "subscription URL (required)")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete webhook subscriptions",
		Long:  "Delete one or more webhook subscriptions by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))

			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: %s", constants.ErrInvalidWebhookID, arg)
				}

				ids = append(ids, id)
			}

			client, err := newShipBobClient()
			if err != nil {
				return err
			}

			// Every id is attempted even when another one fails, and each
			// success is reported as soon as it lands.
			var (
				group errgroup.Group
				mu    sync.Mutex
			)

			group.SetLimit(constants.DefaultConcurrencyLimit)

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			for _, id := range ids {
				group.Go(func() error {
					err := client.Webhooks().Delete(ctx, id)
					if err != nil {
						return fmt.Errorf("failed to delete webhook %d: %w", id, err)
					}

					mu.Lock()
					fmt.Fprintf(out, "Deleted webhook %d\n", id)
					mu.Unlock()

					return nil
				})
			}

			return group.Wait()
		},
	}
}

func renderWebhooksTable(table *tablewriter.Table, webhooks []shipbob.Webhook) {
	table.Header("ID", "Topic", "Subscription URL", "Created")

	for _, webhook := range webhooks {
		created := constants.NotAvailable
		if webhook.CreatedAt != nil {
			created = webhook.CreatedAt.Format(time.RFC3339)
		}

		_ = table.Append(
			strconv.FormatInt(webhook.ID, 10),
			valueOrNA(webhook.Topic.String()),
			webhook.SubscriptionURL,
			created,
		)
	}
}
