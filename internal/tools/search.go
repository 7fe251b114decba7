package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) searchTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: searchTracksTool(), Handler: t.searchTracks},
		{Tool: searchArtistsTool(), Handler: t.searchArtists},
		{Tool: searchAlbumsTool(), Handler: t.searchAlbums},
		{Tool: searchPlaylistsTool(), Handler: t.searchPlaylists},
		{Tool: searchGeneralTool(), Handler: t.searchGeneral},
		{Tool: searchMarketsTool(), Handler: t.searchMarkets},
	}
}

// typedSearchTool builds the schema shared by the single-type search tools.
func typedSearchTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		withToken(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query."),
		),
		withLimit(10),
		withOffset(),
		withMarket(),
	)
}

// typedSearch runs a search pinned to one item type.
func (t *Toolset) typedSearch(ctx context.Context, req mcp.CallToolRequest, prefix, typ string) (*mcp.CallToolResult, error) {
	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Search(ctx, query, typ,
		req.GetString("market", ""),
		req.GetInt("limit", 10),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func searchTracksTool() mcp.Tool {
	return typedSearchTool("search_tracks", "Search the catalog for tracks.")
}

func (t *Toolset) searchTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.typedSearch(ctx, req, "Track search failed", "track")
}

func searchArtistsTool() mcp.Tool {
	return typedSearchTool("search_artists", "Search the catalog for artists.")
}

func (t *Toolset) searchArtists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.typedSearch(ctx, req, "Artist search failed", "artist")
}

func searchAlbumsTool() mcp.Tool {
	return typedSearchTool("search_albums", "Search the catalog for albums.")
}

func (t *Toolset) searchAlbums(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.typedSearch(ctx, req, "Album search failed", "album")
}

func searchPlaylistsTool() mcp.Tool {
	return typedSearchTool("search_playlists", "Search the catalog for playlists.")
}

func (t *Toolset) searchPlaylists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.typedSearch(ctx, req, "Playlist search failed", "playlist")
}

func searchGeneralTool() mcp.Tool {
	return mcp.NewTool("search_general",
		mcp.WithDescription("Search the catalog for any combination of item types."),
		withToken(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query."),
		),
		mcp.WithString("type",
			mcp.DefaultString("track"),
			mcp.Description("Comma-separated item types: album, artist, playlist, track, show, episode or audiobook."),
		),
		withLimit(10),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) searchGeneral(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Search failed"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Search(ctx, query,
		req.GetString("type", "track"),
		req.GetString("market", ""),
		req.GetInt("limit", 10),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func searchMarketsTool() mcp.Tool {
	return mcp.NewTool("search_markets",
		mcp.WithDescription("Run the same search across multiple markets and aggregate the results by country."),
		withToken(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query."),
		),
		mcp.WithString("type",
			mcp.DefaultString("track"),
			mcp.Description("Item type to search for."),
		),
		mcp.WithArray("markets",
			mcp.Description("ISO 3166-1 alpha-2 market codes. Empty searches every available market."),
			stringItems(),
		),
		withLimit(10),
		withOffset(),
		mcp.WithNumber("total",
			mcp.DefaultNumber(0),
			mcp.Min(0),
			mcp.Description("Stop once this many items have been collected across markets. Zero collects every page."),
		),
	)
}

func (t *Toolset) searchMarkets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Multi-market search failed"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).SearchMarkets(ctx, query,
		req.GetString("type", "track"),
		req.GetStringSlice("markets", nil),
		req.GetInt("limit", 10),
		req.GetInt("offset", 0),
		req.GetInt("total", 0),
	)
	return t.respond(prefix, raw, err)
}
