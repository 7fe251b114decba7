package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// TunableAttributes lists the track attributes the recommendation endpoint
// accepts min_, max_ and target_ bounds for.
var TunableAttributes = []string{
	"acousticness",
	"danceability",
	"duration_ms",
	"energy",
	"instrumentalness",
	"key",
	"liveness",
	"loudness",
	"mode",
	"popularity",
	"speechiness",
	"tempo",
	"time_signature",
	"valence",
}

// Seeds identifies the starting points for a recommendation request. At least
// one artist, genre or track is expected by the API; up to five in total.
type Seeds struct {
	Artists []string
	Genres  []string
	Tracks  []string
}

// Categories retrieves the browse category list.
func (c *Client) Categories(ctx context.Context, country, locale string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "country", country)
	setStr(q, "locale", locale)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, "/browse/categories", q)
}

// Category retrieves a single browse category.
func (c *Client) Category(ctx context.Context, id, country, locale string) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "country", country)
	setStr(q, "locale", locale)
	return c.get(ctx, fmt.Sprintf("/browse/categories/%s", id), q)
}

// CategoryPlaylists retrieves playlists curated under a browse category.
func (c *Client) CategoryPlaylists(ctx context.Context, id, country string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "country", country)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, fmt.Sprintf("/browse/categories/%s/playlists", id), q)
}

// FeaturedPlaylists retrieves the editorially featured playlists.
//
// timestamp is an ISO 8601 instant used to target playlists relevant at a
// specific time of day.
func (c *Client) FeaturedPlaylists(ctx context.Context, locale, country, timestamp string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "locale", locale)
	setStr(q, "country", country)
	setStr(q, "timestamp", timestamp)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, "/browse/featured-playlists", q)
}

// NewReleases retrieves newly released albums.
func (c *Client) NewReleases(ctx context.Context, country string, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	setStr(q, "country", country)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, "/browse/new-releases", q)
}

// AvailableMarkets retrieves the markets the API serves content in.
func (c *Client) AvailableMarkets(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/markets", nil)
}

// RecommendationGenreSeeds retrieves the genres usable as recommendation seeds.
func (c *Client) RecommendationGenreSeeds(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/recommendations/available-genre-seeds", nil)
}

// Recommendations generates track recommendations from the given seeds.
//
// tunables carries attribute bounds keyed by their wire names, e.g.
// "min_energy" or "target_tempo". Values are forwarded verbatim.
func (c *Client) Recommendations(ctx context.Context, seeds Seeds, limit int, country string, tunables map[string]float64) (json.RawMessage, error) {
	q := url.Values{}
	if len(seeds.Artists) > 0 {
		q.Set("seed_artists", extractIDs(seeds.Artists))
	}
	if len(seeds.Genres) > 0 {
		q.Set("seed_genres", extractIDs(seeds.Genres))
	}
	if len(seeds.Tracks) > 0 {
		q.Set("seed_tracks", extractIDs(seeds.Tracks))
	}
	setInt(q, "limit", limit)
	setStr(q, "country", country)

	for name, value := range tunables {
		q.Set(name, strconv.FormatFloat(value, 'f', -1, 64))
	}

	return c.get(ctx, "/recommendations", q)
}
