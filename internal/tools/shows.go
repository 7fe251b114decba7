package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) showTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: showTool(), Handler: t.getShow},
		{Tool: showEpisodesTool(), Handler: t.getShowEpisodes},
		{Tool: showsTool(), Handler: t.getShows},
	}
}

func showTool() mcp.Tool {
	return mcp.NewTool("get_show",
		mcp.WithDescription("Get catalog information for a single podcast show."),
		withToken(),
		mcp.WithString("show_id",
			mcp.Required(),
			mcp.Description("Show ID, URI or URL."),
		),
		withMarket(),
	)
}

func (t *Toolset) getShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get show"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	showID, err := req.RequireString("show_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Show(ctx, showID, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func showEpisodesTool() mcp.Tool {
	return mcp.NewTool("get_show_episodes",
		mcp.WithDescription("Get the episodes of a show."),
		withToken(),
		mcp.WithString("show_id",
			mcp.Required(),
			mcp.Description("Show ID, URI or URL."),
		),
		withLimit(50),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) getShowEpisodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get show episodes"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	showID, err := req.RequireString("show_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).ShowEpisodes(ctx, showID,
		req.GetInt("limit", 50),
		req.GetInt("offset", 0),
		req.GetString("market", ""),
	)
	return t.respond(prefix, raw, err)
}

func showsTool() mcp.Tool {
	return mcp.NewTool("get_shows",
		mcp.WithDescription("Get catalog information for several shows at once."),
		withToken(),
		mcp.WithArray("show_ids",
			mcp.Required(),
			mcp.Description("Show IDs, URIs or URLs."),
			stringItems(),
		),
		withMarket(),
	)
}

func (t *Toolset) getShows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get shows"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	showIDs, err := req.RequireStringSlice("show_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Shows(ctx, showIDs, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}
