package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

// recordedRequest captures the path and query of the last request a test
// client issued.
type recordedRequest struct {
	path  string
	query map[string]string
}

func recordingClient(t *testing.T) (*Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.query = map[string]string{}
		for key := range r.URL.Query() {
			rec.query[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{}`))
	})
	return c, rec
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()

	tc := []struct {
		name      string
		call      func(c *Client) (json.RawMessage, error)
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:      "Album",
			call:      func(c *Client) (json.RawMessage, error) { return c.Album(ctx, "spotify:album:abc", "SE") },
			wantPath:  "/albums/abc",
			wantQuery: map[string]string{"market": "SE"},
		},
		{
			name: "Albums extracts URIs",
			call: func(c *Client) (json.RawMessage, error) {
				return c.Albums(ctx, []string{"spotify:album:a", "b"}, "DE")
			},
			wantPath:  "/albums",
			wantQuery: map[string]string{"ids": "a,b", "market": "DE"},
		},
		{
			name: "ArtistAlbums",
			call: func(c *Client) (json.RawMessage, error) {
				return c.ArtistAlbums(ctx, "art1", "album", "single,appears_on", "US", 10, 5)
			},
			wantPath: "/artists/art1/albums",
			wantQuery: map[string]string{
				"album_type":     "album",
				"include_groups": "single,appears_on",
				"country":        "US",
				"limit":          "10",
				"offset":         "5",
			},
		},
		{
			name:      "ArtistTopTracks",
			call:      func(c *Client) (json.RawMessage, error) { return c.ArtistTopTracks(ctx, "art1", "DE") },
			wantPath:  "/artists/art1/top-tracks",
			wantQuery: map[string]string{"country": "DE"},
		},
		{
			name:     "ArtistRelatedArtists",
			call:     func(c *Client) (json.RawMessage, error) { return c.ArtistRelatedArtists(ctx, "art1") },
			wantPath: "/artists/art1/related-artists",
		},
		{
			name:      "Tracks",
			call:      func(c *Client) (json.RawMessage, error) { return c.Tracks(ctx, []string{"t1", "t2"}, "FR") },
			wantPath:  "/tracks",
			wantQuery: map[string]string{"ids": "t1,t2", "market": "FR"},
		},
		{
			name:     "AudioAnalysis",
			call:     func(c *Client) (json.RawMessage, error) { return c.AudioAnalysis(ctx, "t1") },
			wantPath: "/audio-analysis/t1",
		},
		{
			name: "ShowEpisodes",
			call: func(c *Client) (json.RawMessage, error) {
				return c.ShowEpisodes(ctx, "sh1", 12, 3, "ES")
			},
			wantPath:  "/shows/sh1/episodes",
			wantQuery: map[string]string{"limit": "12", "offset": "3", "market": "ES"},
		},
		{
			name: "AudiobookChapters",
			call: func(c *Client) (json.RawMessage, error) {
				return c.AudiobookChapters(ctx, "ab1", "US", 7, 0)
			},
			wantPath:  "/audiobooks/ab1/chapters",
			wantQuery: map[string]string{"market": "US", "limit": "7"},
		},
		{
			name:     "User keeps raw id",
			call:     func(c *Client) (json.RawMessage, error) { return c.User(ctx, "some.user") },
			wantPath: "/users/some.user",
		},
		{
			name:      "UserPlaylists",
			call:      func(c *Client) (json.RawMessage, error) { return c.UserPlaylists(ctx, "u1", 20, 40) },
			wantPath:  "/users/u1/playlists",
			wantQuery: map[string]string{"limit": "20", "offset": "40"},
		},
		{
			name:     "CurrentUser",
			call:     func(c *Client) (json.RawMessage, error) { return c.CurrentUser(ctx) },
			wantPath: "/me",
		},
		{
			name:      "CurrentUserFollowedArtists",
			call:      func(c *Client) (json.RawMessage, error) { return c.CurrentUserFollowedArtists(ctx, 10, "last1") },
			wantPath:  "/me/following",
			wantQuery: map[string]string{"type": "artist", "limit": "10", "after": "last1"},
		},
		{
			name: "CurrentUserFollowingArtists",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserFollowingArtists(ctx, []string{"a1", "a2"})
			},
			wantPath:  "/me/following/contains",
			wantQuery: map[string]string{"type": "artist", "ids": "a1,a2"},
		},
		{
			name: "CurrentUserFollowingUsers",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserFollowingUsers(ctx, []string{"u1"})
			},
			wantPath:  "/me/following/contains",
			wantQuery: map[string]string{"type": "user", "ids": "u1"},
		},
		{
			name: "CurrentUserSavedTracks",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserSavedTracks(ctx, 50, 0, "GB")
			},
			wantPath:  "/me/tracks",
			wantQuery: map[string]string{"limit": "50", "market": "GB"},
		},
		{
			name: "CurrentUserSavedTracksContains",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserSavedTracksContains(ctx, []string{"spotify:track:t1", "t2"})
			},
			wantPath:  "/me/tracks/contains",
			wantQuery: map[string]string{"ids": "t1,t2"},
		},
		{
			name: "CurrentUserSavedShows",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserSavedShows(ctx, 10, 0, "NO")
			},
			wantPath:  "/me/shows",
			wantQuery: map[string]string{"limit": "10", "market": "NO"},
		},
		{
			name: "CurrentUserSavedShowsContains",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserSavedShowsContains(ctx, []string{"s1"})
			},
			wantPath:  "/me/shows/contains",
			wantQuery: map[string]string{"ids": "s1"},
		},
		{
			name: "CurrentUserTopArtists",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserTopArtists(ctx, 5, 0, "long_term")
			},
			wantPath:  "/me/top/artists",
			wantQuery: map[string]string{"limit": "5", "time_range": "long_term"},
		},
		{
			name: "CurrentUserRecentlyPlayed",
			call: func(c *Client) (json.RawMessage, error) {
				return c.CurrentUserRecentlyPlayed(ctx, 25, 1700000000000, 0)
			},
			wantPath:  "/me/player/recently-played",
			wantQuery: map[string]string{"limit": "25", "after": "1700000000000"},
		},
		{
			name:      "CurrentPlayback",
			call:      func(c *Client) (json.RawMessage, error) { return c.CurrentPlayback(ctx, "US", "episode") },
			wantPath:  "/me/player",
			wantQuery: map[string]string{"market": "US", "additional_types": "episode"},
		},
		{
			name:     "CurrentlyPlaying",
			call:     func(c *Client) (json.RawMessage, error) { return c.CurrentlyPlaying(ctx, "", "") },
			wantPath: "/me/player/currently-playing",
		},
		{
			name:     "Devices",
			call:     func(c *Client) (json.RawMessage, error) { return c.Devices(ctx) },
			wantPath: "/me/player/devices",
		},
		{
			name:     "Queue",
			call:     func(c *Client) (json.RawMessage, error) { return c.Queue(ctx) },
			wantPath: "/me/player/queue",
		},
		{
			name: "Categories",
			call: func(c *Client) (json.RawMessage, error) {
				return c.Categories(ctx, "SE", "sv_SE", 10, 0)
			},
			wantPath:  "/browse/categories",
			wantQuery: map[string]string{"country": "SE", "locale": "sv_SE", "limit": "10"},
		},
		{
			name:     "Category",
			call:     func(c *Client) (json.RawMessage, error) { return c.Category(ctx, "party", "", "") },
			wantPath: "/browse/categories/party",
		},
		{
			name:     "CategoryPlaylists",
			call:     func(c *Client) (json.RawMessage, error) { return c.CategoryPlaylists(ctx, "party", "", 0, 0) },
			wantPath: "/browse/categories/party/playlists",
		},
		{
			name: "FeaturedPlaylists",
			call: func(c *Client) (json.RawMessage, error) {
				return c.FeaturedPlaylists(ctx, "en_US", "US", "2014-10-23T09:00:00", 2, 0)
			},
			wantPath: "/browse/featured-playlists",
			wantQuery: map[string]string{
				"locale":    "en_US",
				"country":   "US",
				"timestamp": "2014-10-23T09:00:00",
				"limit":     "2",
			},
		},
		{
			name:      "NewReleases",
			call:      func(c *Client) (json.RawMessage, error) { return c.NewReleases(ctx, "NO", 10, 20) },
			wantPath:  "/browse/new-releases",
			wantQuery: map[string]string{"country": "NO", "limit": "10", "offset": "20"},
		},
		{
			name:     "AvailableMarkets",
			call:     func(c *Client) (json.RawMessage, error) { return c.AvailableMarkets(ctx) },
			wantPath: "/markets",
		},
		{
			name:     "RecommendationGenreSeeds",
			call:     func(c *Client) (json.RawMessage, error) { return c.RecommendationGenreSeeds(ctx) },
			wantPath: "/recommendations/available-genre-seeds",
		},
		{
			name: "PlaylistItems",
			call: func(c *Client) (json.RawMessage, error) {
				return c.PlaylistItems(ctx, "pl1", "items(track(name))", 100, 0, "US", "track,episode")
			},
			wantPath: "/playlists/pl1/tracks",
			wantQuery: map[string]string{
				"fields":           "items(track(name))",
				"limit":            "100",
				"market":           "US",
				"additional_types": "track,episode",
			},
		},
		{
			name:     "PlaylistCoverImage",
			call:     func(c *Client) (json.RawMessage, error) { return c.PlaylistCoverImage(ctx, "pl1") },
			wantPath: "/playlists/pl1/images",
		},
		{
			name: "PlaylistIsFollowing",
			call: func(c *Client) (json.RawMessage, error) {
				return c.PlaylistIsFollowing(ctx, "pl1", []string{"u1", "u2"})
			},
			wantPath:  "/playlists/pl1/followers/contains",
			wantQuery: map[string]string{"ids": "u1,u2"},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := recordingClient(t)

			if _, err := tt.call(c); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if rec.path != tt.wantPath {
				t.Errorf("path = %s, want %s", rec.path, tt.wantPath)
			}
			for key, want := range tt.wantQuery {
				if got := rec.query[key]; got != want {
					t.Errorf("query[%s] = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestPlaylist(t *testing.T) {
	t.Run("pins additional_types to track", func(t *testing.T) {
		c, rec := recordingClient(t)

		if _, err := c.Playlist(context.Background(), "spotify:playlist:pl1", "", "DE"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if rec.path != "/playlists/pl1" {
			t.Errorf("path = %s, want /playlists/pl1", rec.path)
		}
		if rec.query["additional_types"] != "track" {
			t.Errorf("expected additional_types=track, got %q", rec.query["additional_types"])
		}
		if rec.query["market"] != "DE" {
			t.Errorf("expected market=DE, got %q", rec.query["market"])
		}
	})
}

func TestUserPlaylist(t *testing.T) {
	t.Run("with playlist id", func(t *testing.T) {
		c, rec := recordingClient(t)

		if _, err := c.UserPlaylist(context.Background(), "u1", "pl1", "", ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if rec.path != "/playlists/pl1" {
			t.Errorf("path = %s, want /playlists/pl1", rec.path)
		}
	})

	t.Run("falls back to starred", func(t *testing.T) {
		c, rec := recordingClient(t)

		if _, err := c.UserPlaylist(context.Background(), "u1", "", "name", "US"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if rec.path != "/users/u1/starred" {
			t.Errorf("path = %s, want /users/u1/starred", rec.path)
		}
		if rec.query["fields"] != "name" || rec.query["market"] != "US" {
			t.Errorf("unexpected query %v", rec.query)
		}
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("encodes seeds and tunables", func(t *testing.T) {
		c, rec := recordingClient(t)

		seeds := Seeds{
			Artists: []string{"spotify:artist:a1"},
			Genres:  []string{"indie"},
			Tracks:  []string{"t1", "t2"},
		}
		tunables := map[string]float64{
			"min_energy":   0.5,
			"target_tempo": 120,
		}

		if _, err := c.Recommendations(context.Background(), seeds, 10, "US", tunables); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if rec.path != "/recommendations" {
			t.Errorf("path = %s, want /recommendations", rec.path)
		}
		if rec.query["seed_artists"] != "a1" {
			t.Errorf("seed_artists = %q", rec.query["seed_artists"])
		}
		if rec.query["seed_genres"] != "indie" {
			t.Errorf("seed_genres = %q", rec.query["seed_genres"])
		}
		if rec.query["seed_tracks"] != "t1,t2" {
			t.Errorf("seed_tracks = %q", rec.query["seed_tracks"])
		}
		if rec.query["min_energy"] != "0.5" {
			t.Errorf("min_energy = %q, want 0.5", rec.query["min_energy"])
		}
		if rec.query["target_tempo"] != "120" {
			t.Errorf("target_tempo = %q, want 120", rec.query["target_tempo"])
		}
		if rec.query["limit"] != "10" || rec.query["country"] != "US" {
			t.Errorf("unexpected query %v", rec.query)
		}
	})

	t.Run("omits empty seeds", func(t *testing.T) {
		c, rec := recordingClient(t)

		if _, err := c.Recommendations(context.Background(), Seeds{Genres: []string{"jazz"}}, 0, "", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, ok := rec.query["seed_artists"]; ok {
			t.Error("expected seed_artists to be absent")
		}
		if _, ok := rec.query["seed_tracks"]; ok {
			t.Error("expected seed_tracks to be absent")
		}
		if rec.query["seed_genres"] != "jazz" {
			t.Errorf("seed_genres = %q", rec.query["seed_genres"])
		}
	})
}

func TestTunableAttributes(t *testing.T) {
	if len(TunableAttributes) != 14 {
		t.Errorf("expected 14 tunable attributes, got %d", len(TunableAttributes))
	}
}
