package spotify

import (
	"context"
	"encoding/json"
	"net/url"
)

// CurrentPlayback retrieves the user's full playback state, including device
// and shuffle/repeat modes. Returns an empty message when nothing is active.
// additionalTypes selects which item kinds may appear, e.g. "episode".
func (c *Client) CurrentPlayback(ctx context.Context, market, additionalTypes string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	setStr(q, "additional_types", additionalTypes)
	return c.get(ctx, "/me/player", q)
}

// CurrentlyPlaying retrieves the item the user is currently playing. Returns
// an empty message when nothing is playing.
func (c *Client) CurrentlyPlaying(ctx context.Context, market, additionalTypes string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "market", market)
	setStr(q, "additional_types", additionalTypes)
	return c.get(ctx, "/me/player/currently-playing", q)
}

// CurrentUserRecentlyPlayed retrieves the user's play history. after and
// before are unix millisecond cursors; zero means unset.
func (c *Client) CurrentUserRecentlyPlayed(ctx context.Context, limit int, after, before int64) (json.RawMessage, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt64(q, "after", after)
	setInt64(q, "before", before)
	return c.get(ctx, "/me/player/recently-played", q)
}

// Devices retrieves the devices available for playback.
func (c *Client) Devices(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/me/player/devices", nil)
}

// Queue retrieves the user's playback queue.
func (c *Client) Queue(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/me/player/queue", nil)
}
