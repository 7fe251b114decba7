package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) trackTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: trackInfoTool(), Handler: t.getTrackInfo},
		{Tool: tracksTool(), Handler: t.getTracks},
	}
}

func trackInfoTool() mcp.Tool {
	return mcp.NewTool("get_track_info",
		mcp.WithDescription("Get catalog information for a single track."),
		withToken(),
		mcp.WithString("track_id",
			mcp.Required(),
			mcp.Description("Track ID, URI or URL."),
		),
		withMarket(),
	)
}

func (t *Toolset) getTrackInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get track info"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	trackID, err := req.RequireString("track_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Track(ctx, trackID, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func tracksTool() mcp.Tool {
	return mcp.NewTool("get_tracks",
		mcp.WithDescription("Get catalog information for several tracks at once."),
		withToken(),
		mcp.WithArray("track_ids",
			mcp.Required(),
			mcp.Description("Track IDs, URIs or URLs."),
			stringItems(),
		),
		withMarket(),
	)
}

func (t *Toolset) getTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	trackIDs, err := req.RequireStringSlice("track_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Tracks(ctx, trackIDs, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}
