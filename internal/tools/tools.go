package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/desertthunder/spotify-mcp/internal/spotify"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Toolset builds the tool catalog. A fresh API client is constructed per
// invocation from the token the caller supplies; nothing is shared or cached
// between calls.
type Toolset struct {
	logger    *log.Logger
	newClient func(token string) *spotify.Client
}

// Option configures a [Toolset].
type Option func(*Toolset)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *log.Logger) Option {
	return func(t *Toolset) { t.logger = l }
}

// WithClientFactory replaces how API clients are constructed from tokens.
// Used by tests to point calls at a local server.
func WithClientFactory(fn func(token string) *spotify.Client) Option {
	return func(t *Toolset) { t.newClient = fn }
}

// New creates a Toolset.
func New(opts ...Option) *Toolset {
	t := &Toolset{}

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = shared.NewLogger(nil)
	}
	if t.newClient == nil {
		t.newClient = func(token string) *spotify.Client {
			return spotify.New(token)
		}
	}

	return t
}

func (t *Toolset) client(token string) *spotify.Client {
	return t.newClient(token)
}

// Tools returns the full catalog in registration order.
func (t *Toolset) Tools() []server.ServerTool {
	var catalog []server.ServerTool
	for _, family := range [][]server.ServerTool{
		t.albumTools(),
		t.artistTools(),
		t.audioTools(),
		t.browseTools(),
		t.audiobookTools(),
		t.episodeTools(),
		t.playlistTools(),
		t.searchTools(),
		t.showTools(),
		t.trackTools(),
		t.userTools(),
		t.libraryTools(),
		t.playerTools(),
	} {
		catalog = append(catalog, family...)
	}
	return catalog
}

// failure converts any failure into the uniform error payload. The result is
// a normal tool result, not a protocol error; callers detect failure solely
// by the presence of the "error" field.
func (t *Toolset) failure(prefix string, err error) *mcp.CallToolResult {
	t.logger.Debug("operation failed", "prefix", prefix, "err", err)

	payload := map[string]string{"error": fmt.Sprintf("%s: %s", prefix, err)}
	text, _ := json.Marshal(payload)
	return mcp.NewToolResultStructured(payload, string(text))
}

// respond converts a delegated call's outcome into a tool result.
func (t *Toolset) respond(prefix string, raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return t.failure(prefix, err), nil
	}
	return passthrough(raw), nil
}

// respondOrPlaceholder substitutes {key: null} when the API legitimately
// returned nothing for an operation that normally yields one object.
func (t *Toolset) respondOrPlaceholder(prefix, key string, raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return t.failure(prefix, err), nil
	}
	if isEmptyJSON(raw) {
		payload := map[string]any{key: nil}
		text, _ := json.Marshal(payload)
		return mcp.NewToolResultStructured(payload, string(text)), nil
	}
	return passthrough(raw), nil
}

// rewrap nests the raw response under a fixed key. Used by the existence
// checks, whose raw responses are bare boolean arrays.
func (t *Toolset) rewrap(prefix, key string, raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return t.failure(prefix, err), nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage("null")
	}

	payload := map[string]json.RawMessage{key: raw}
	text, merr := json.Marshal(payload)
	if merr != nil {
		return t.failure(prefix, merr), nil
	}
	return mcp.NewToolResultStructured(payload, string(text)), nil
}

// passthrough returns the raw API response unmodified. Objects carry
// structured content with the verbatim body as text; arrays and scalars go
// out as plain text.
func passthrough(raw json.RawMessage) *mcp.CallToolResult {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return mcp.NewToolResultText("null")
	}
	if trimmed[0] == '{' {
		return mcp.NewToolResultStructured(raw, string(raw))
	}
	return mcp.NewToolResultText(string(raw))
}

// isEmptyJSON reports whether raw carries no usable payload.
func isEmptyJSON(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}

func withToken() mcp.ToolOption {
	return mcp.WithString("token",
		mcp.Required(),
		mcp.Description("Spotify API bearer token."),
	)
}

func withMarket() mcp.ToolOption {
	return mcp.WithString("market",
		mcp.Description("ISO 3166-1 alpha-2 market code."),
	)
}

func withLimit(def float64) mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.DefaultNumber(def),
		mcp.Min(1),
		mcp.Description("Maximum number of items to return."),
	)
}

func withOffset() mcp.ToolOption {
	return mcp.WithNumber("offset",
		mcp.DefaultNumber(0),
		mcp.Min(0),
		mcp.Description("Index of the first item to return."),
	)
}

func stringItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "string"})
}
