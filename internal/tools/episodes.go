package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) episodeTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: episodeTool(), Handler: t.getEpisode},
		{Tool: episodesTool(), Handler: t.getEpisodes},
	}
}

func episodeTool() mcp.Tool {
	return mcp.NewTool("get_episode",
		mcp.WithDescription("Get catalog information for a single podcast episode."),
		withToken(),
		mcp.WithString("episode_id",
			mcp.Required(),
			mcp.Description("Episode ID, URI or URL."),
		),
		withMarket(),
	)
}

func (t *Toolset) getEpisode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get episode"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	episodeID, err := req.RequireString("episode_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Episode(ctx, episodeID, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func episodesTool() mcp.Tool {
	return mcp.NewTool("get_episodes",
		mcp.WithDescription("Get catalog information for several episodes at once."),
		withToken(),
		mcp.WithArray("episode_ids",
			mcp.Required(),
			mcp.Description("Episode IDs, URIs or URLs."),
			stringItems(),
		),
		withMarket(),
	)
}

func (t *Toolset) getEpisodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get episodes"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	episodeIDs, err := req.RequireStringSlice("episode_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Episodes(ctx, episodeIDs, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}
