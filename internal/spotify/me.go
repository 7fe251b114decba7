package spotify

import (
	"context"
	"encoding/json"
	"net/url"
)

// CurrentUser retrieves the profile of the user the token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/me", nil)
}

// CurrentUserPlaylists retrieves the current user's playlists with pagination.
func (c *Client) CurrentUserPlaylists(ctx context.Context, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, "/me/playlists", q)
}

// CurrentUserFollowedArtists retrieves artists the current user follows.
// after is the last artist ID of the previous page for cursor pagination.
func (c *Client) CurrentUserFollowedArtists(ctx context.Context, limit int, after string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("type", "artist")
	setInt(q, "limit", limit)
	setStr(q, "after", after)
	return c.get(ctx, "/me/following", q)
}

// CurrentUserFollowingArtists checks whether the current user follows the
// given artists. Returns the raw boolean array in input order.
func (c *Client) CurrentUserFollowingArtists(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.followingContains(ctx, "artist", ids)
}

// CurrentUserFollowingUsers checks whether the current user follows the given
// users. Returns the raw boolean array in input order.
func (c *Client) CurrentUserFollowingUsers(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.followingContains(ctx, "user", ids)
}

func (c *Client) followingContains(ctx context.Context, typ string, ids []string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("type", typ)
	q.Set("ids", extractIDs(ids))
	return c.get(ctx, "/me/following/contains", q)
}

// CurrentUserSavedAlbums retrieves albums saved in the user's library.
func (c *Client) CurrentUserSavedAlbums(ctx context.Context, limit, offset int, market string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	return c.get(ctx, "/me/albums", q)
}

// CurrentUserSavedAlbumsContains checks which of the given albums are saved.
func (c *Client) CurrentUserSavedAlbumsContains(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.libraryContains(ctx, "/me/albums/contains", ids)
}

// CurrentUserSavedEpisodes retrieves episodes saved in the user's library.
func (c *Client) CurrentUserSavedEpisodes(ctx context.Context, limit, offset int, market string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	return c.get(ctx, "/me/episodes", q)
}

// CurrentUserSavedEpisodesContains checks which of the given episodes are saved.
func (c *Client) CurrentUserSavedEpisodesContains(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.libraryContains(ctx, "/me/episodes/contains", ids)
}

// CurrentUserSavedShows retrieves shows saved in the user's library.
func (c *Client) CurrentUserSavedShows(ctx context.Context, limit, offset int, market string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	return c.get(ctx, "/me/shows", q)
}

// CurrentUserSavedShowsContains checks which of the given shows are saved.
func (c *Client) CurrentUserSavedShowsContains(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.libraryContains(ctx, "/me/shows/contains", ids)
}

// CurrentUserSavedTracks retrieves tracks saved in the user's library.
func (c *Client) CurrentUserSavedTracks(ctx context.Context, limit, offset int, market string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	return c.get(ctx, "/me/tracks", q)
}

// CurrentUserSavedTracksContains checks which of the given tracks are saved.
func (c *Client) CurrentUserSavedTracksContains(ctx context.Context, ids []string) (json.RawMessage, error) {
	return c.libraryContains(ctx, "/me/tracks/contains", ids)
}

func (c *Client) libraryContains(ctx context.Context, endpoint string, ids []string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	return c.get(ctx, endpoint, q)
}

// CurrentUserTopArtists retrieves the user's top artists over a time range
// ("short_term", "medium_term" or "long_term").
func (c *Client) CurrentUserTopArtists(ctx context.Context, limit, offset int, timeRange string) (json.RawMessage, error) {
	return c.topItems(ctx, "/me/top/artists", limit, offset, timeRange)
}

// CurrentUserTopTracks retrieves the user's top tracks over a time range.
func (c *Client) CurrentUserTopTracks(ctx context.Context, limit, offset int, timeRange string) (json.RawMessage, error) {
	return c.topItems(ctx, "/me/top/tracks", limit, offset, timeRange)
}

func (c *Client) topItems(ctx context.Context, endpoint string, limit, offset int, timeRange string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "time_range", timeRange)
	return c.get(ctx, endpoint, q)
}
