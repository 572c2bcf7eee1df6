package slack

import (
	"context"
	"net/http"

	"github.com/detailyang/third-party-api-clients/pkg/rest"
)

var (
	addEmoji = rest.Endpoint{
		Name:   "admin_emoji.add",
		Method: http.MethodPost,
		Path:   "/admin.emoji.add",
	}
	addEmojiAlias = rest.Endpoint{
		Name:   "admin_emoji.add_alias",
		Method: http.MethodPost,
		Path:   "/admin.emoji.addAlias",
	}
	listEmoji = rest.Endpoint{
		Name:   "admin_emoji.list",
		Method: http.MethodGet,
		Path:   "/admin.emoji.list",
		Query:  []string{"cursor", "limit"},
	}
	removeEmoji = rest.Endpoint{
		Name:   "admin_emoji.remove",
		Method: http.MethodPost,
		Path:   "/admin.emoji.remove",
	}
	renameEmoji = rest.Endpoint{
		Name:   "admin_emoji.rename",
		Method: http.MethodPost,
		Path:   "/admin.emoji.rename",
	}
)

// AdminEmoji manages custom emoji across an Enterprise Grid organization.
// A nil request sends the POST without a body.
type AdminEmoji struct {
	transport rest.Transport
}

// NewAdminEmoji creates the binding over transport.
func NewAdminEmoji(transport rest.Transport) *AdminEmoji {
	return &AdminEmoji{transport: transport}
}

// Add adds an emoji.
func (c *AdminEmoji) Add(ctx context.Context, req *AddEmojiRequest) (*DndEndSchema, error) {
	call := rest.Call{}
	if req != nil {
		call.Body = req
	}

	return rest.Post[DndEndSchema](ctx, c.transport, addEmoji, call)
}

// AddAlias adds an emoji alias.
func (c *AdminEmoji) AddAlias(ctx context.Context, req *AddEmojiAliasRequest) (*DndEndSchema, error) {
	call := rest.Call{}
	if req != nil {
		call.Body = req
	}

	return rest.Post[DndEndSchema](ctx, c.transport, addEmojiAlias, call)
}

// List lists emoji. Pass the previous response's next cursor to continue;
// an empty cursor or a non-positive limit is left out of the query.
func (c *AdminEmoji) List(ctx context.Context, cursor string, limit int64) (*DndEndSchema, error) {
	return rest.Get[DndEndSchema](ctx, c.transport, listEmoji, rest.Call{
		Query: rest.Values{
			"cursor": cursor,
			"limit":  limit,
		},
	})
}

// Remove removes an emoji.
func (c *AdminEmoji) Remove(ctx context.Context, req *RemoveEmojiRequest) (*DndEndSchema, error) {
	call := rest.Call{}
	if req != nil {
		call.Body = req
	}

	return rest.Post[DndEndSchema](ctx, c.transport, removeEmoji, call)
}

// Rename renames an emoji.
func (c *AdminEmoji) Rename(ctx context.Context, req *RenameEmojiRequest) (*DndEndSchema, error) {
	call := rest.Call{}
	if req != nil {
		call.Body = req
	}

	return rest.Post[DndEndSchema](ctx, c.transport, renameEmoji, call)
}
