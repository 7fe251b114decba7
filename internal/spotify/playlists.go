package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Playlist retrieves a playlist. additional_types is pinned to "track" so the
// response shape stays stable for clients that predate episode support.
func (c *Client) Playlist(ctx context.Context, id, fields, market string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "fields", fields)
	setStr(q, "market", market)
	q.Set("additional_types", "track")
	return c.get(ctx, fmt.Sprintf("/playlists/%s", extractID(id)), q)
}

// PlaylistItems retrieves a playlist's contents with pagination.
//
// additionalTypes selects which item kinds appear in the response, e.g.
// "track" or "track,episode".
func (c *Client) PlaylistItems(ctx context.Context, id, fields string, limit, offset int, market, additionalTypes string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "fields", fields)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	setStr(q, "additional_types", additionalTypes)
	return c.get(ctx, fmt.Sprintf("/playlists/%s/tracks", extractID(id)), q)
}

// PlaylistCoverImage retrieves a playlist's cover image set.
func (c *Client) PlaylistCoverImage(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/playlists/%s/images", extractID(id)), nil)
}

// PlaylistIsFollowing checks whether the given users follow a playlist.
// Returns the raw boolean array, one entry per user in input order.
func (c *Client) PlaylistIsFollowing(ctx context.Context, id string, userIDs []string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(userIDs))
	return c.get(ctx, fmt.Sprintf("/playlists/%s/followers/contains", extractID(id)), q)
}

// UserPlaylist retrieves one of a user's playlists. With an empty playlistID
// it falls back to the user's legacy starred playlist.
func (c *Client) UserPlaylist(ctx context.Context, user, playlistID, fields, market string) (json.RawMessage, error) {
	if playlistID == "" {
		q := url.Values{}
		setStr(q, "fields", fields)
		setStr(q, "market", market)
		return c.get(ctx, fmt.Sprintf("/users/%s/starred", user), q)
	}
	return c.Playlist(ctx, playlistID, fields, market)
}
