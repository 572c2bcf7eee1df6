package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/detailyang/third-party-api-clients/pkg/slack"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSlackCommand creates the slack command group.
func NewSlackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slack",
		Short: "Slack admin operations",
		Long:  "Call the Slack Web API admin methods",
	}

	cmd.AddCommand(newSlackEmojiCommand())

	return cmd
}

func newSlackEmojiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "Manage custom emoji",
		Long:  "Add, alias, list, remove and rename custom emoji of an Enterprise Grid organization",
	}

	cmd.AddCommand(newEmojiAddCommand())
	cmd.AddCommand(newEmojiAddAliasCommand())
	cmd.AddCommand(newEmojiListCommand())
	cmd.AddCommand(newEmojiRemoveCommand())
	cmd.AddCommand(newEmojiRenameCommand())

	return cmd
}

func newEmojiAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME URL",
		Short: "Add an emoji",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSlackClient()
			if err != nil {
				return err
			}

			resp, err := client.AdminEmoji().Add(cmd.Context(), &slack.AddEmojiRequest{Name: args[0], URL: args[1]})
			if err != nil {
				return fmt.Errorf("failed to add emoji: %w", err)
			}

			return renderSlackResponse(cmd, resp)
		},
	}
}

func newEmojiAddAliasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-alias NAME ALIAS_FOR",
		Short: "Add an emoji alias",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSlackClient()
			if err != nil {
				return err
			}

			resp, err := client.AdminEmoji().AddAlias(cmd.Context(), &slack.AddEmojiAliasRequest{Name: args[0], AliasFor: args[1]})
			if err != nil {
				return fmt.Errorf("failed to add emoji alias: %w", err)
			}

			return renderSlackResponse(cmd, resp)
		},
	}
}

func newEmojiListCommand() *cobra.Command {
	var (
		cursor string
		limit  int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List emoji",
		Long:  "List custom emoji. Pass the printed next cursor with --cursor to continue.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSlackClient()
			if err != nil {
				return err
			}

			resp, err := client.AdminEmoji().List(cmd.Context(), cursor, limit)
			if err != nil {
				return fmt.Errorf("failed to list emoji: %w", err)
			}

			return renderSlackResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor returned by the previous call")
	cmd.Flags().Int64Var(&limit, "limit", 0, "maximum emoji to return (1-1000)")

	return cmd
}

func newEmojiRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an emoji",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSlackClient()
			if err != nil {
				return err
			}

			resp, err := client.AdminEmoji().Remove(cmd.Context(), &slack.RemoveEmojiRequest{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to remove emoji: %w", err)
			}

			return renderSlackResponse(cmd, resp)
		},
	}
}

func newEmojiRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME NEW_NAME",
		Short: "Rename an emoji",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSlackClient()
			if err != nil {
				return err
			}

			resp, err := client.AdminEmoji().Rename(cmd.Context(), &slack.RenameEmojiRequest{Name: args[0], NewName: args[1]})
			if err != nil {
				return fmt.Errorf("failed to rename emoji: %w", err)
			}

			return renderSlackResponse(cmd, resp)
		},
	}
}

func renderSlackResponse(cmd *cobra.Command, resp *slack.DndEndSchema) error {
	return renderOutput(cmd.OutOrStdout(), resp, func(table *tablewriter.Table, resp *slack.DndEndSchema) {
		table.Header("Field", "Value")
		_ = table.Append("ok", strconv.FormatBool(resp.OK))

		if resp.Error != "" {
			_ = table.Append("error", resp.Error)
		}

		keys := make([]string, 0, len(resp.Extra))
		for key := range resp.Extra {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append(key, compactJSON(resp.Extra[key]))
		}
	})
}

func compactJSON(raw json.RawMessage) string {
	var value string

	err := json.Unmarshal(raw, &value)
	if err == nil {
		return value
	}

	return string(raw)
}
