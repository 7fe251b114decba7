package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) audiobookTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: audiobookTool(), Handler: t.getAudiobook},
		{Tool: audiobookChaptersTool(), Handler: t.getAudiobookChapters},
		{Tool: audiobooksTool(), Handler: t.getAudiobooks},
	}
}

func audiobookTool() mcp.Tool {
	return mcp.NewTool("get_audiobook",
		mcp.WithDescription("Get catalog information for a single audiobook."),
		withToken(),
		mcp.WithString("audiobook_id",
			mcp.Required(),
			mcp.Description("Audiobook ID, URI or URL."),
		),
		withMarket(),
	)
}

func (t *Toolset) getAudiobook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get audiobook"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	audiobookID, err := req.RequireString("audiobook_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Audiobook(ctx, audiobookID, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func audiobookChaptersTool() mcp.Tool {
	return mcp.NewTool("get_audiobook_chapters",
		mcp.WithDescription("Get the chapters of an audiobook."),
		withToken(),
		mcp.WithString("audiobook_id",
			mcp.Required(),
			mcp.Description("Audiobook ID, URI or URL."),
		),
		withMarket(),
		withLimit(20),
		withOffset(),
	)
}

func (t *Toolset) getAudiobookChapters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get audiobook chapters"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	audiobookID, err := req.RequireString("audiobook_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).AudiobookChapters(ctx, audiobookID,
		req.GetString("market", ""),
		req.GetInt("limit", 20),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func audiobooksTool() mcp.Tool {
	return mcp.NewTool("get_audiobooks",
		mcp.WithDescription("Get catalog information for several audiobooks at once."),
		withToken(),
		mcp.WithArray("audiobook_ids",
			mcp.Required(),
			mcp.Description("Audiobook IDs, URIs or URLs."),
			stringItems(),
		),
		withMarket(),
	)
}

func (t *Toolset) getAudiobooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get audiobooks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	audiobookIDs, err := req.RequireStringSlice("audiobook_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Audiobooks(ctx, audiobookIDs, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}
