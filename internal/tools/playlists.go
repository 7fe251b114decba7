package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) playlistTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: playlistInfoTool(), Handler: t.getPlaylistInfo},
		{Tool: playlistTracksTool(), Handler: t.getPlaylistTracks},
		{Tool: playlistItemsTool(), Handler: t.getPlaylistItems},
		{Tool: playlistCoverImageTool(), Handler: t.getPlaylistCoverImage},
		{Tool: playlistIsFollowingTool(), Handler: t.playlistIsFollowing},
		{Tool: userPlaylistTool(), Handler: t.getUserPlaylist},
	}
}

func playlistInfoTool() mcp.Tool {
	return mcp.NewTool("get_playlist_info",
		mcp.WithDescription("Get catalog information for a playlist."),
		withToken(),
		mcp.WithString("playlist_id",
			mcp.Required(),
			mcp.Description("Playlist ID, URI or URL."),
		),
		mcp.WithString("fields",
			mcp.Description("Filter the returned fields, e.g. items(track(name,href))."),
		),
		withMarket(),
	)
}

func (t *Toolset) getPlaylistInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get playlist info"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	playlistID, err := req.RequireString("playlist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Playlist(ctx, playlistID,
		req.GetString("fields", ""),
		req.GetString("market", ""),
	)
	return t.respond(prefix, raw, err)
}

func playlistTracksTool() mcp.Tool {
	return mcp.NewTool("get_playlist_tracks",
		mcp.WithDescription("Get the tracks of a playlist."),
		withToken(),
		mcp.WithString("playlist_id",
			mcp.Required(),
			mcp.Description("Playlist ID, URI or URL."),
		),
		mcp.WithString("fields",
			mcp.Description("Filter the returned fields, e.g. items(track(name,href))."),
		),
		withLimit(100),
		withOffset(),
		withMarket(),
		mcp.WithString("additional_types",
			mcp.DefaultString("track"),
			mcp.Description("Comma-separated item types to return."),
		),
	)
}

func (t *Toolset) getPlaylistTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get playlist tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	playlistID, err := req.RequireString("playlist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).PlaylistItems(ctx, playlistID,
		req.GetString("fields", ""),
		req.GetInt("limit", 100),
		req.GetInt("offset", 0),
		req.GetString("market", ""),
		req.GetString("additional_types", "track"),
	)
	return t.respond(prefix, raw, err)
}

func playlistItemsTool() mcp.Tool {
	return mcp.NewTool("get_playlist_items",
		mcp.WithDescription("Get the full contents of a playlist, tracks and episodes included."),
		withToken(),
		mcp.WithString("playlist_id",
			mcp.Required(),
			mcp.Description("Playlist ID, URI or URL."),
		),
		mcp.WithString("fields",
			mcp.Description("Filter the returned fields, e.g. items(track(name,href))."),
		),
		withLimit(100),
		withOffset(),
		withMarket(),
		mcp.WithString("additional_types",
			mcp.DefaultString("track,episode"),
			mcp.Description("Comma-separated item types to return."),
		),
	)
}

func (t *Toolset) getPlaylistItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get playlist items"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	playlistID, err := req.RequireString("playlist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).PlaylistItems(ctx, playlistID,
		req.GetString("fields", ""),
		req.GetInt("limit", 100),
		req.GetInt("offset", 0),
		req.GetString("market", ""),
		req.GetString("additional_types", "track,episode"),
	)
	return t.respond(prefix, raw, err)
}

func playlistCoverImageTool() mcp.Tool {
	return mcp.NewTool("playlist_cover_image",
		mcp.WithDescription("Get the cover images of a playlist."),
		withToken(),
		mcp.WithString("playlist_id",
			mcp.Required(),
			mcp.Description("Playlist ID, URI or URL."),
		),
	)
}

func (t *Toolset) getPlaylistCoverImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get playlist cover image"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	playlistID, err := req.RequireString("playlist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).PlaylistCoverImage(ctx, playlistID)
	return t.rewrap(prefix, "images", raw, err)
}

func playlistIsFollowingTool() mcp.Tool {
	return mcp.NewTool("playlist_is_following",
		mcp.WithDescription("Check whether users follow a playlist."),
		withToken(),
		mcp.WithString("playlist_id",
			mcp.Required(),
			mcp.Description("Playlist ID, URI or URL."),
		),
		mcp.WithArray("user_ids",
			mcp.Required(),
			mcp.Description("User IDs to check."),
			stringItems(),
		),
	)
}

func (t *Toolset) playlistIsFollowing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to check playlist following status"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	playlistID, err := req.RequireString("playlist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	userIDs, err := req.RequireStringSlice("user_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).PlaylistIsFollowing(ctx, playlistID, userIDs)
	return t.rewrap(prefix, "following", raw, err)
}

func userPlaylistTool() mcp.Tool {
	return mcp.NewTool("get_user_playlist",
		mcp.WithDescription("Get one of a user's playlists, or their starred playlist when no playlist is given."),
		withToken(),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("User ID."),
		),
		mcp.WithString("playlist_id",
			mcp.Description("Playlist ID, URI or URL. Empty selects the user's starred playlist."),
		),
		mcp.WithString("fields",
			mcp.Description("Filter the returned fields."),
		),
		withMarket(),
	)
}

func (t *Toolset) getUserPlaylist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get user playlist"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	userID, err := req.RequireString("user_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).UserPlaylist(ctx, userID,
		req.GetString("playlist_id", ""),
		req.GetString("fields", ""),
		req.GetString("market", ""),
	)
	return t.respond(prefix, raw, err)
}
