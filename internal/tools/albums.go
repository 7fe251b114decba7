package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) albumTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: albumInfoTool(), Handler: t.getAlbumInfo},
		{Tool: albumTracksTool(), Handler: t.getAlbumTracks},
		{Tool: albumsTool(), Handler: t.getAlbums},
	}
}

func albumInfoTool() mcp.Tool {
	return mcp.NewTool("get_album_info",
		mcp.WithDescription("Get catalog information for a single album."),
		withToken(),
		mcp.WithString("album_id",
			mcp.Required(),
			mcp.Description("Album ID, URI or URL."),
		),
		withMarket(),
	)
}

func (t *Toolset) getAlbumInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get album info"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	albumID, err := req.RequireString("album_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Album(ctx, albumID, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func albumTracksTool() mcp.Tool {
	return mcp.NewTool("get_album_tracks",
		mcp.WithDescription("Get the tracks of an album."),
		withToken(),
		mcp.WithString("album_id",
			mcp.Required(),
			mcp.Description("Album ID, URI or URL."),
		),
		withLimit(50),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) getAlbumTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get album tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	albumID, err := req.RequireString("album_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).AlbumTracks(ctx, albumID,
		req.GetInt("limit", 50), req.GetInt("offset", 0), req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func albumsTool() mcp.Tool {
	return mcp.NewTool("get_albums",
		mcp.WithDescription("Get catalog information for several albums at once."),
		withToken(),
		mcp.WithArray("album_ids",
			mcp.Required(),
			mcp.Description("Album IDs, URIs or URLs."),
			stringItems(),
		),
		withMarket(),
	)
}

func (t *Toolset) getAlbums(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get albums"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	albumIDs, err := req.RequireStringSlice("album_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Albums(ctx, albumIDs, req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}
