package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Album retrieves a single album.
func (c *Client) Album(ctx context.Context, id, market string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/albums/%s", extractID(id)), q)
}

// AlbumTracks retrieves an album's tracks with pagination.
func (c *Client) AlbumTracks(ctx context.Context, id string, limit, offset int, market string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/albums/%s/tracks", extractID(id)), q)
}

// Albums retrieves multiple albums in one request.
func (c *Client) Albums(ctx context.Context, ids []string, market string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	setStr(q, "market", market)
	return c.get(ctx, "/albums", q)
}

// Artist retrieves a single artist.
func (c *Client) Artist(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/artists/%s", extractID(id)), nil)
}

// ArtistAlbums retrieves an artist's albums, optionally filtered by album type
// or release groups.
func (c *Client) ArtistAlbums(ctx context.Context, id, albumType, includeGroups, country string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "album_type", albumType)
	setStr(q, "include_groups", includeGroups)
	setStr(q, "country", country)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, fmt.Sprintf("/artists/%s/albums", extractID(id)), q)
}

// ArtistRelatedArtists retrieves artists similar to the given artist.
func (c *Client) ArtistRelatedArtists(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/artists/%s/related-artists", extractID(id)), nil)
}

// ArtistTopTracks retrieves an artist's top tracks for a country.
func (c *Client) ArtistTopTracks(ctx context.Context, id, country string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "country", country)
	return c.get(ctx, fmt.Sprintf("/artists/%s/top-tracks", extractID(id)), q)
}

// Artists retrieves multiple artists in one request.
func (c *Client) Artists(ctx context.Context, ids []string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	return c.get(ctx, "/artists", q)
}

// Track retrieves a single track.
func (c *Client) Track(ctx context.Context, id, market string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/tracks/%s", extractID(id)), q)
}

// Tracks retrieves multiple tracks in one request.
func (c *Client) Tracks(ctx context.Context, ids []string, market string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	setStr(q, "market", market)
	return c.get(ctx, "/tracks", q)
}

// AudioAnalysis retrieves the low-level audio analysis for a track.
func (c *Client) AudioAnalysis(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/audio-analysis/%s", extractID(id)), nil)
}

// AudioFeatures retrieves audio features for one or more tracks.
//
// The API nests the feature objects under an "audio_features" key; that inner
// array is returned directly, matching the shape callers historically expect.
func (c *Client) AudioFeatures(ctx context.Context, ids []string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))

	raw, err := c.get(ctx, "/audio-features", q)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if inner, ok := envelope["audio_features"]; ok {
			return inner, nil
		}
	}

	return raw, nil
}

// Show retrieves a single show.
func (c *Client) Show(ctx context.Context, id, market string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/shows/%s", extractID(id)), q)
}

// ShowEpisodes retrieves a show's episodes with pagination.
func (c *Client) ShowEpisodes(ctx context.Context, id string, limit, offset int, market string) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/shows/%s/episodes", extractID(id)), q)
}

// Shows retrieves multiple shows in one request.
func (c *Client) Shows(ctx context.Context, ids []string, market string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	setStr(q, "market", market)
	return c.get(ctx, "/shows", q)
}

// Episode retrieves a single episode.
func (c *Client) Episode(ctx context.Context, id, market string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/episodes/%s", extractID(id)), q)
}

// Episodes retrieves multiple episodes in one request.
func (c *Client) Episodes(ctx context.Context, ids []string, market string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	setStr(q, "market", market)
	return c.get(ctx, "/episodes", q)
}

// Audiobook retrieves a single audiobook.
func (c *Client) Audiobook(ctx context.Context, id, market string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	return c.get(ctx, fmt.Sprintf("/audiobooks/%s", extractID(id)), q)
}

// AudiobookChapters retrieves an audiobook's chapters with pagination.
func (c *Client) AudiobookChapters(ctx context.Context, id, market string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, fmt.Sprintf("/audiobooks/%s/chapters", extractID(id)), q)
}

// Audiobooks retrieves multiple audiobooks in one request.
func (c *Client) Audiobooks(ctx context.Context, ids []string, market string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ids", extractIDs(ids))
	setStr(q, "market", market)
	return c.get(ctx, "/audiobooks", q)
}

// User retrieves a user's public profile.
func (c *Client) User(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/users/%s", id), nil)
}

// UserPlaylists retrieves a user's public playlists with pagination.
func (c *Client) UserPlaylists(ctx context.Context, id string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, fmt.Sprintf("/users/%s/playlists", id), q)
}
