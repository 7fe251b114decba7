package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// APIError is the error envelope returned by the Spotify Web API.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spotify API error: status %d", e.Status)
	}
	return fmt.Sprintf("spotify API error: status %d: %s", e.Status, e.Message)
}

// Client issues authenticated requests against the Spotify Web API.
//
// A Client is scoped to the token it was created with. Construct one per
// operation with [New] rather than sharing instances across callers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	timeout    time.Duration
	token      string
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the client at
// a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the token-bound HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client bound to the given bearer token.
func New(token string, opts ...Option) *Client {
	c := &Client{baseURL: defaultBaseURL, token: token}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		c.httpClient = oauth2.NewClient(context.Background(), src)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}

	return c
}

// get performs an authenticated GET request and returns the raw response body.
//
// Responses outside the 2xx range are decoded into an [APIError]. A 204 with
// no body yields an empty message, which callers treat as "nothing to return".
func (c *Client) get(ctx context.Context, endpoint string, q url.Values) (json.RawMessage, error) {
	apiURL := c.baseURL + endpoint
	if len(q) > 0 {
		apiURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.logger != nil {
		c.logger.Debug("spotify request", "endpoint", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error APIError `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			return nil, &APIError{Status: envelope.Error.Status, Message: envelope.Error.Message}
		}
		return nil, &APIError{Status: resp.StatusCode}
	}

	return json.RawMessage(body), nil
}

// setInt adds a positive integer query parameter.
func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, fmt.Sprintf("%d", v))
	}
}

// setInt64 adds a positive 64-bit integer query parameter.
func setInt64(q url.Values, key string, v int64) {
	if v > 0 {
		q.Set(key, fmt.Sprintf("%d", v))
	}
}

// setStr adds a non-empty string query parameter.
func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
