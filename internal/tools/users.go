package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) userTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: userTool(), Handler: t.getUser},
		{Tool: userPlaylistsTool(), Handler: t.getUserPlaylists},
	}
}

func userTool() mcp.Tool {
	return mcp.NewTool("get_user",
		mcp.WithDescription("Get a user's public profile."),
		withToken(),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("User ID."),
		),
	)
}

func (t *Toolset) getUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get user"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	userID, err := req.RequireString("user_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).User(ctx, userID)
	return t.respond(prefix, raw, err)
}

func userPlaylistsTool() mcp.Tool {
	return mcp.NewTool("get_user_playlists",
		mcp.WithDescription("Get a user's public playlists."),
		withToken(),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("User ID."),
		),
		withLimit(50),
		withOffset(),
	)
}

func (t *Toolset) getUserPlaylists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get user playlists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	userID, err := req.RequireString("user_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).UserPlaylists(ctx, userID,
		req.GetInt("limit", 50),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}
