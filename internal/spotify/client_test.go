package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newTestClient builds a Client pointed at a local fake API.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("test_token", WithBaseURL(server.URL))
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := New("test_token")

		if c.baseURL != "https://api.spotify.com/v1" {
			t.Errorf("expected production base URL, got %s", c.baseURL)
		}
		if c.httpClient == nil {
			t.Fatal("expected an HTTP client to be constructed")
		}
	})

	t.Run("WithBaseURL", func(t *testing.T) {
		c := New("test_token", WithBaseURL("http://localhost:9999"))

		if c.baseURL != "http://localhost:9999" {
			t.Errorf("expected overridden base URL, got %s", c.baseURL)
		}
	})

	t.Run("WithHTTPClient", func(t *testing.T) {
		custom := &http.Client{}
		c := New("test_token", WithHTTPClient(custom))

		if c.httpClient != custom {
			t.Error("expected custom client to be used")
		}
	})

	t.Run("WithTimeout", func(t *testing.T) {
		c := New("test_token", WithTimeout(5*time.Second))

		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("expected 5s timeout, got %v", c.httpClient.Timeout)
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("sends bearer token", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test_token" {
				t.Errorf("expected bearer auth header, got %q", got)
			}
			w.Write([]byte(`{}`))
		})

		if _, err := c.get(context.Background(), "/me", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("returns body verbatim", func(t *testing.T) {
		payload := `{"id":"abc123","name":"Test Track","popularity":73}`
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})

		raw, err := c.get(context.Background(), "/tracks/abc123", nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(raw) != payload {
			t.Errorf("expected verbatim body, got %s", raw)
		}
	})

	t.Run("decodes error envelope", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"status":401,"message":"Invalid access token"}}`))
		})

		_, err := c.get(context.Background(), "/me", nil)
		if err == nil {
			t.Fatal("expected error for 401 response")
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Status != 401 {
			t.Errorf("expected status 401, got %d", apiErr.Status)
		}
		if !strings.Contains(apiErr.Error(), "Invalid access token") {
			t.Errorf("expected message in error, got %q", apiErr.Error())
		}
	})

	t.Run("falls back to status on unparseable error body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream broke"))
		})

		_, err := c.get(context.Background(), "/me", nil)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Status != http.StatusBadGateway {
			t.Errorf("expected status 502, got %d", apiErr.Status)
		}
		if apiErr.Error() != "spotify API error: status 502" {
			t.Errorf("unexpected error string: %q", apiErr.Error())
		}
	})

	t.Run("204 yields empty message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		raw, err := c.get(context.Background(), "/me/player", nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(raw) != 0 {
			t.Errorf("expected empty body, got %q", raw)
		}
	})

	t.Run("encodes query values", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/tracks/abc":
				if got := r.URL.Query().Get("market"); got != "SE" {
					t.Errorf("expected market=SE, got %q", got)
				}
			case "/albums/xyz/tracks":
				if got := r.URL.Query().Get("limit"); got != "25" {
					t.Errorf("expected limit=25, got %q", got)
				}
				if r.URL.Query().Has("offset") {
					t.Error("expected zero offset to be omitted")
				}
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{}`))
		})

		if _, err := c.Track(context.Background(), "abc", "SE"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := c.AlbumTracks(context.Background(), "xyz", 25, 0, ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("request failure wraps transport error", func(t *testing.T) {
		c := New("test_token", WithBaseURL("http://127.0.0.1:1"), WithTimeout(50*time.Millisecond))

		_, err := c.get(context.Background(), "/me", nil)
		if err == nil {
			t.Fatal("expected connection error")
		}
		if !strings.Contains(err.Error(), "request failed") {
			t.Errorf("expected wrapped transport error, got %v", err)
		}
	})
}

func TestAPIError(t *testing.T) {
	cases := []struct {
		name string
		err  APIError
		want string
	}{
		{
			name: "with message",
			err:  APIError{Status: 404, Message: "Non existing id"},
			want: "spotify API error: status 404: Non existing id",
		},
		{
			name: "without message",
			err:  APIError{Status: 500},
			want: "spotify API error: status 500",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAudioFeatures(t *testing.T) {
	t.Run("unwraps audio_features key", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/audio-features" {
				t.Errorf("expected /audio-features, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("ids"); got != "id1,id2" {
				t.Errorf("expected ids=id1,id2, got %q", got)
			}
			w.Write([]byte(`{"audio_features":[{"id":"id1","energy":0.7},{"id":"id2","energy":0.2}]}`))
		})

		raw, err := c.AudioFeatures(context.Background(), []string{"id1", "id2"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var features []map[string]any
		if err := json.Unmarshal(raw, &features); err != nil {
			t.Fatalf("expected a bare array, got %s", raw)
		}
		if len(features) != 2 {
			t.Errorf("expected 2 feature objects, got %d", len(features))
		}
	})

	t.Run("passes unknown shapes through", func(t *testing.T) {
		payload := `{"something_else":true}`
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})

		raw, err := c.AudioFeatures(context.Background(), []string{"id1"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(raw) != payload {
			t.Errorf("expected passthrough, got %s", raw)
		}
	})
}
