package tools

import (
	"context"
	"encoding/json"

	"github.com/desertthunder/spotify-mcp/internal/spotify"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) libraryTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: currentUserTool(), Handler: t.getCurrentUser},
		{Tool: currentUserPlaylistsTool(), Handler: t.getCurrentUserPlaylists},
		{Tool: followedArtistsTool(), Handler: t.getFollowedArtists},
		{
			Tool: containsCheckTool("check_current_user_following_artists",
				"Check whether the current user follows the given artists.",
				"artist_ids", "Artist IDs, URIs or URLs."),
			Handler: t.checkFollowingArtists,
		},
		{
			Tool: containsCheckTool("check_current_user_following_users",
				"Check whether the current user follows the given users.",
				"user_ids", "User IDs."),
			Handler: t.checkFollowingUsers,
		},
		{Tool: recentlyPlayedTool(), Handler: t.getRecentlyPlayed},
		{Tool: savedAlbumsTool(), Handler: t.getSavedAlbums},
		{
			Tool: containsCheckTool("check_current_user_saved_albums",
				"Check which of the given albums are saved in the current user's library.",
				"album_ids", "Album IDs, URIs or URLs."),
			Handler: t.checkSavedAlbums,
		},
		{Tool: savedEpisodesTool(), Handler: t.getSavedEpisodes},
		{
			Tool: containsCheckTool("check_current_user_saved_episodes",
				"Check which of the given episodes are saved in the current user's library.",
				"episode_ids", "Episode IDs, URIs or URLs."),
			Handler: t.checkSavedEpisodes,
		},
		{Tool: savedShowsTool(), Handler: t.getSavedShows},
		{
			Tool: containsCheckTool("check_current_user_saved_shows",
				"Check which of the given shows are saved in the current user's library.",
				"show_ids", "Show IDs, URIs or URLs."),
			Handler: t.checkSavedShows,
		},
		{Tool: savedTracksTool(), Handler: t.getSavedTracks},
		{
			Tool: containsCheckTool("check_current_user_saved_tracks",
				"Check which of the given tracks are saved in the current user's library.",
				"track_ids", "Track IDs, URIs or URLs."),
			Handler: t.checkSavedTracks,
		},
		{Tool: topItemsTool("get_current_user_top_artists", "Get the current user's top artists."), Handler: t.getTopArtists},
		{Tool: topItemsTool("get_current_user_top_tracks", "Get the current user's top tracks."), Handler: t.getTopTracks},
	}
}

func currentUserTool() mcp.Tool {
	return mcp.NewTool("get_current_user",
		mcp.WithDescription("Get the profile of the user the token belongs to."),
		withToken(),
	)
}

func (t *Toolset) getCurrentUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get current user"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUser(ctx)
	return t.respond(prefix, raw, err)
}

func currentUserPlaylistsTool() mcp.Tool {
	return mcp.NewTool("get_current_user_playlists",
		mcp.WithDescription("Get the current user's playlists."),
		withToken(),
		withLimit(50),
		withOffset(),
	)
}

func (t *Toolset) getCurrentUserPlaylists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get current user playlists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserPlaylists(ctx, req.GetInt("limit", 50), req.GetInt("offset", 0))
	return t.respond(prefix, raw, err)
}

func followedArtistsTool() mcp.Tool {
	return mcp.NewTool("get_current_user_followed_artists",
		mcp.WithDescription("Get the artists the current user follows."),
		withToken(),
		withLimit(20),
		mcp.WithString("after",
			mcp.Description("Last artist ID of the previous page, for cursor pagination."),
		),
	)
}

func (t *Toolset) getFollowedArtists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get followed artists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserFollowedArtists(ctx, req.GetInt("limit", 20), req.GetString("after", ""))
	return t.respond(prefix, raw, err)
}

func recentlyPlayedTool() mcp.Tool {
	return mcp.NewTool("get_current_user_recently_played",
		mcp.WithDescription("Get the current user's recently played tracks."),
		withToken(),
		withLimit(50),
		mcp.WithNumber("after",
			mcp.Min(0),
			mcp.Description("Unix millisecond timestamp. Returns items played after it."),
		),
		mcp.WithNumber("before",
			mcp.Min(0),
			mcp.Description("Unix millisecond timestamp. Returns items played before it."),
		),
	)
}

func (t *Toolset) getRecentlyPlayed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get recently played tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserRecentlyPlayed(ctx,
		req.GetInt("limit", 50),
		int64(req.GetInt("after", 0)),
		int64(req.GetInt("before", 0)),
	)
	return t.respond(prefix, raw, err)
}

func savedAlbumsTool() mcp.Tool {
	return mcp.NewTool("get_current_user_saved_albums",
		mcp.WithDescription("Get the albums saved in the current user's library."),
		withToken(),
		withLimit(20),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) getSavedAlbums(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get saved albums"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserSavedAlbums(ctx,
		req.GetInt("limit", 20), req.GetInt("offset", 0), req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func savedEpisodesTool() mcp.Tool {
	return mcp.NewTool("get_current_user_saved_episodes",
		mcp.WithDescription("Get the episodes saved in the current user's library."),
		withToken(),
		withLimit(20),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) getSavedEpisodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get saved episodes"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserSavedEpisodes(ctx,
		req.GetInt("limit", 20), req.GetInt("offset", 0), req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func savedShowsTool() mcp.Tool {
	return mcp.NewTool("get_current_user_saved_shows",
		mcp.WithDescription("Get the shows saved in the current user's library."),
		withToken(),
		withLimit(20),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) getSavedShows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get saved shows"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserSavedShows(ctx,
		req.GetInt("limit", 20), req.GetInt("offset", 0), req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func savedTracksTool() mcp.Tool {
	return mcp.NewTool("get_current_user_saved_tracks",
		mcp.WithDescription("Get the tracks saved in the current user's library."),
		withToken(),
		withLimit(20),
		withOffset(),
		withMarket(),
	)
}

func (t *Toolset) getSavedTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get saved tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserSavedTracks(ctx,
		req.GetInt("limit", 20), req.GetInt("offset", 0), req.GetString("market", ""))
	return t.respond(prefix, raw, err)
}

func topItemsTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		withToken(),
		withLimit(20),
		withOffset(),
		mcp.WithString("time_range",
			mcp.DefaultString("medium_term"),
			mcp.Enum("short_term", "medium_term", "long_term"),
			mcp.Description("Time frame the affinities are computed over."),
		),
	)
}

func (t *Toolset) getTopArtists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get top artists"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserTopArtists(ctx,
		req.GetInt("limit", 20), req.GetInt("offset", 0), req.GetString("time_range", "medium_term"))
	return t.respond(prefix, raw, err)
}

func (t *Toolset) getTopTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get top tracks"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentUserTopTracks(ctx,
		req.GetInt("limit", 20), req.GetInt("offset", 0), req.GetString("time_range", "medium_term"))
	return t.respond(prefix, raw, err)
}

// containsCheckTool builds the schema shared by the library and follow
// existence checks.
func containsCheckTool(name, desc, arg, argDesc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		withToken(),
		mcp.WithArray(arg,
			mcp.Required(),
			mcp.Description(argDesc),
			stringItems(),
		),
	)
}

// containsCheck runs one existence check and rewraps the resulting boolean
// array under key, preserving input order.
func (t *Toolset) containsCheck(ctx context.Context, req mcp.CallToolRequest, prefix, key, arg string, call func(*spotify.Client, context.Context, []string) (json.RawMessage, error)) (*mcp.CallToolResult, error) {
	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	ids, err := req.RequireStringSlice(arg)
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := call(t.client(token), ctx, ids)
	return t.rewrap(prefix, key, raw, err)
}

func (t *Toolset) checkFollowingArtists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.containsCheck(ctx, req, "Failed to check if following artists", "following", "artist_ids",
		(*spotify.Client).CurrentUserFollowingArtists)
}

func (t *Toolset) checkFollowingUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.containsCheck(ctx, req, "Failed to check if following users", "following", "user_ids",
		(*spotify.Client).CurrentUserFollowingUsers)
}

func (t *Toolset) checkSavedAlbums(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.containsCheck(ctx, req, "Failed to check saved albums", "saved", "album_ids",
		(*spotify.Client).CurrentUserSavedAlbumsContains)
}

func (t *Toolset) checkSavedEpisodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.containsCheck(ctx, req, "Failed to check saved episodes", "saved", "episode_ids",
		(*spotify.Client).CurrentUserSavedEpisodesContains)
}

func (t *Toolset) checkSavedShows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.containsCheck(ctx, req, "Failed to check saved shows", "saved", "show_ids",
		(*spotify.Client).CurrentUserSavedShowsContains)
}

func (t *Toolset) checkSavedTracks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.containsCheck(ctx, req, "Failed to check saved tracks", "saved", "track_ids",
		(*spotify.Client).CurrentUserSavedTracksContains)
}
