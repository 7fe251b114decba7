package tools

import (
	"context"

	"github.com/desertthunder/spotify-mcp/internal/spotify"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// tunableBounds are the prefixes the recommendation endpoint accepts for each
// tunable attribute.
var tunableBounds = []string{"min_", "max_", "target_"}

func (t *Toolset) browseTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: availableMarketsTool(), Handler: t.getAvailableMarkets},
		{Tool: categoriesTool(), Handler: t.getCategories},
		{Tool: categoryTool(), Handler: t.getCategory},
		{Tool: categoryPlaylistsTool(), Handler: t.getCategoryPlaylists},
		{Tool: featuredPlaylistsTool(), Handler: t.getFeaturedPlaylists},
		{Tool: newReleasesTool(), Handler: t.getNewReleases},
		{Tool: availableGenresTool(), Handler: t.getAvailableGenres},
		{Tool: recommendationsTool(), Handler: t.getRecommendations},
	}
}

func availableMarketsTool() mcp.Tool {
	return mcp.NewTool("get_available_markets",
		mcp.WithDescription("Get the markets where Spotify is available."),
		withToken(),
	)
}

func (t *Toolset) getAvailableMarkets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get available markets"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).AvailableMarkets(ctx)
	return t.respond(prefix, raw, err)
}

func categoriesTool() mcp.Tool {
	return mcp.NewTool("get_categories",
		mcp.WithDescription("Get the browse categories."),
		withToken(),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
		mcp.WithString("locale",
			mcp.Description("Desired language as an ISO 639-1 and ISO 3166-1 pair, e.g. es_MX."),
		),
		withLimit(20),
		withOffset(),
	)
}

func (t *Toolset) getCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get categories"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Categories(ctx,
		req.GetString("country", ""),
		req.GetString("locale", ""),
		req.GetInt("limit", 20),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func categoryTool() mcp.Tool {
	return mcp.NewTool("get_category",
		mcp.WithDescription("Get a single browse category."),
		withToken(),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("Category ID."),
		),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
		mcp.WithString("locale",
			mcp.Description("Desired language as an ISO 639-1 and ISO 3166-1 pair, e.g. es_MX."),
		),
	)
}

func (t *Toolset) getCategory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get category"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	categoryID, err := req.RequireString("category_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Category(ctx, categoryID,
		req.GetString("country", ""),
		req.GetString("locale", ""),
	)
	return t.respond(prefix, raw, err)
}

func categoryPlaylistsTool() mcp.Tool {
	return mcp.NewTool("get_category_playlists",
		mcp.WithDescription("Get playlists curated under a browse category."),
		withToken(),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("Category ID."),
		),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
		withLimit(20),
		withOffset(),
	)
}

func (t *Toolset) getCategoryPlaylists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get category playlists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	categoryID, err := req.RequireString("category_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CategoryPlaylists(ctx, categoryID,
		req.GetString("country", ""),
		req.GetInt("limit", 20),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func featuredPlaylistsTool() mcp.Tool {
	return mcp.NewTool("get_featured_playlists",
		mcp.WithDescription("Get Spotify's editorially featured playlists."),
		withToken(),
		mcp.WithString("locale",
			mcp.Description("Desired language as an ISO 639-1 and ISO 3166-1 pair, e.g. es_MX."),
		),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
		mcp.WithString("timestamp",
			mcp.Description("ISO 8601 instant to target playlists for a time of day."),
		),
		withLimit(20),
		withOffset(),
	)
}

func (t *Toolset) getFeaturedPlaylists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get featured playlists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).FeaturedPlaylists(ctx,
		req.GetString("locale", ""),
		req.GetString("country", ""),
		req.GetString("timestamp", ""),
		req.GetInt("limit", 20),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func newReleasesTool() mcp.Tool {
	return mcp.NewTool("get_new_releases",
		mcp.WithDescription("Get newly released albums."),
		withToken(),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code."),
		),
		withLimit(20),
		withOffset(),
	)
}

func (t *Toolset) getNewReleases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get new releases"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).NewReleases(ctx,
		req.GetString("country", ""),
		req.GetInt("limit", 20),
		req.GetInt("offset", 0),
	)
	return t.respond(prefix, raw, err)
}

func availableGenresTool() mcp.Tool {
	return mcp.NewTool("get_available_genres",
		mcp.WithDescription("Get the genres usable as recommendation seeds."),
		withToken(),
	)
}

func (t *Toolset) getAvailableGenres(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get available genres"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).RecommendationGenreSeeds(ctx)
	return t.respond(prefix, raw, err)
}

func recommendationsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get track recommendations from seed artists, genres and tracks."),
		withToken(),
		mcp.WithArray("seed_artists",
			mcp.Description("Seed artist IDs, URIs or URLs."),
			stringItems(),
		),
		mcp.WithArray("seed_genres",
			mcp.Description("Seed genre names."),
			stringItems(),
		),
		mcp.WithArray("seed_tracks",
			mcp.Description("Seed track IDs, URIs or URLs."),
			stringItems(),
		),
		withLimit(20),
		withMarket(),
	}

	labels := map[string]string{"min_": "Minimum", "max_": "Maximum", "target_": "Target"}
	for _, attr := range spotify.TunableAttributes {
		for _, bound := range tunableBounds {
			opts = append(opts, mcp.WithNumber(bound+attr,
				mcp.Description(labels[bound]+" value for "+attr+"."),
			))
		}
	}

	return mcp.NewTool("get_recommendations", opts...)
}

func (t *Toolset) getRecommendations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get recommendations"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	seeds := spotify.Seeds{
		Artists: req.GetStringSlice("seed_artists", nil),
		Genres:  req.GetStringSlice("seed_genres", nil),
		Tracks:  req.GetStringSlice("seed_tracks", nil),
	}

	args := req.GetArguments()
	tunables := map[string]float64{}
	for _, attr := range spotify.TunableAttributes {
		for _, bound := range tunableBounds {
			name := bound + attr
			if _, ok := args[name]; ok {
				tunables[name] = req.GetFloat(name, 0)
			}
		}
	}

	raw, err := t.client(token).Recommendations(ctx, seeds,
		req.GetInt("limit", 20),
		req.GetString("market", ""),
		tunables,
	)
	return t.respond(prefix, raw, err)
}
