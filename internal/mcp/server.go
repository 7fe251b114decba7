// Package mcp assembles the MCP server: tool registration, lifecycle hooks
// and the transports it is served over.
package mcp

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/desertthunder/spotify-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "Spotify MCP Server"

// Version is the advertised server version.
const Version = "0.1.0"

// Server wraps the MCP protocol server.
type Server struct {
	mcp    *server.MCPServer
	logger *log.Logger
}

// callTimer tracks invocation start times by request id so the after hook can
// log durations.
type callTimer struct {
	mu     sync.Mutex
	starts map[any]time.Time
}

func newCallTimer() *callTimer {
	return &callTimer{starts: make(map[any]time.Time)}
}

func (c *callTimer) begin(id any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.starts[id] = time.Now()
}

func (c *callTimer) end(id any) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	start, ok := c.starts[id]
	if !ok {
		return 0
	}
	delete(c.starts, id)
	return time.Since(start)
}

// New builds the protocol server and registers the full tool catalog.
//
// The hooks log call lifecycle only; tokens and arguments never reach the
// logger.
func New(ts *tools.Toolset, logger *log.Logger) *Server {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	timer := newCallTimer()
	hooks := &server.Hooks{}

	hooks.AddBeforeCallTool(func(ctx context.Context, id any, message *mcp.CallToolRequest) {
		timer.begin(id)
		logger.Debug("tool call started", "id", id, "tool", message.Params.Name)
	})
	hooks.AddAfterCallTool(func(ctx context.Context, id any, message *mcp.CallToolRequest, result *mcp.CallToolResult) {
		logger.Info("tool call completed", "id", id, "tool", message.Params.Name, "duration", timer.end(id))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Error("request failed", "id", id, "method", method, "err", err)
	})

	srv := server.NewMCPServer(serverName, Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)
	srv.AddTools(ts.Tools()...)

	return &Server{mcp: srv, logger: logger}
}

// ServeStdio serves the protocol over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	if s.mcp == nil {
		return shared.ErrServiceUnavailable
	}

	s.logger.Info("serving MCP over stdio", "name", serverName, "version", Version)
	return server.ServeStdio(s.mcp)
}

// Handler returns a stateless streamable HTTP handler for mounting on a
// router.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp, server.WithStateLess(true))
}
