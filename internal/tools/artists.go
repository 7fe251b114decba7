package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) artistTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: artistInfoTool(), Handler: t.getArtistInfo},
		{Tool: artistAlbumsTool(), Handler: t.getArtistAlbums},
		{Tool: artistRelatedArtistsTool(), Handler: t.getArtistRelatedArtists},
		{Tool: artistTopTracksTool(), Handler: t.getArtistTopTracks},
		{Tool: artistsTool(), Handler: t.getArtists},
	}
}

func artistInfoTool() mcp.Tool {
	return mcp.NewTool("get_artist_info",
		mcp.WithDescription("Get catalog information for a single artist."),
		withToken(),
		mcp.WithString("artist_id",
			mcp.Required(),
			mcp.Description("Artist ID, URI or URL."),
		),
	)
}

func (t *Toolset) getArtistInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get artist info"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	artistID, err := req.RequireString("artist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Artist(ctx, artistID)
	return t.respond(prefix, raw, err)
}

func artistAlbumsTool() mcp.Tool {
	return mcp.NewTool("get_artist_albums",
		mcp.WithDescription("Get an artist's albums, optionally filtered by type."),
		withToken(),
		mcp.WithString("artist_id",
			mcp.Required(),
			mcp.Description("Artist ID, URI or URL."),
		),
		mcp.WithString("album_type",
			mcp.Description("Filter by album type: album, single, appears_on or compilation."),
		),
		mcp.WithString("include_groups",
			mcp.Description("Comma-separated release groups to include."),
		),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
		withLimit(20),
		withOffset(),
	)
}

func (t *Toolset) getArtistAlbums(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get artist albums"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	artistID, err := req.RequireString("artist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).ArtistAlbums(ctx, artistID,
		req.GetString("album_type", ""),
		req.GetString("include_groups", ""),
		req.GetString("country", ""),
		req.GetInt("limit", 20),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func artistRelatedArtistsTool() mcp.Tool {
	return mcp.NewTool("get_artist_related_artists",
		mcp.WithDescription("Get artists similar to a given artist."),
		withToken(),
		mcp.WithString("artist_id",
			mcp.Required(),
			mcp.Description("Artist ID, URI or URL."),
		),
	)
}

func (t *Toolset) getArtistRelatedArtists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get related artists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	artistID, err := req.RequireString("artist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).ArtistRelatedArtists(ctx, artistID)
	return t.respond(prefix, raw, err)
}

func artistTopTracksTool() mcp.Tool {
	return mcp.NewTool("get_artist_top_tracks",
		mcp.WithDescription("Get an artist's top tracks for a country."),
		withToken(),
		mcp.WithString("artist_id",
			mcp.Required(),
			mcp.Description("Artist ID, URI or URL."),
		),
		mcp.WithString("country",
			mcp.DefaultString("US"),
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
	)
}

func (t *Toolset) getArtistTopTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get artist top tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	artistID, err := req.RequireString("artist_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).ArtistTopTracks(ctx, artistID, req.GetString("country", "US"))
	return t.respond(prefix, raw, err)
}

func artistsTool() mcp.Tool {
	return mcp.NewTool("get_artists",
		mcp.WithDescription("Get catalog information for several artists at once."),
		withToken(),
		mcp.WithArray("artist_ids",
			mcp.Required(),
			mcp.Description("Artist IDs, URIs or URLs."),
			stringItems(),
		),
	)
}

func (t *Toolset) getArtists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get artists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	artistIDs, err := req.RequireStringSlice("artist_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Artists(ctx, artistIDs)
	return t.respond(prefix, raw, err)
}
