package server

import "net/http"

// MCPHandler mounts the streamable MCP endpoint on a [Router]. Implements the
// [Handler] interface.
type MCPHandler struct {
	inner http.Handler
}

// NewMCPHandler wraps the protocol handler for registration with a Router.
func NewMCPHandler(inner http.Handler) *MCPHandler {
	return &MCPHandler{inner: inner}
}

// Routes returns the HTTP routes this handler serves. The endpoint accepts
// multiple methods, so the patterns carry no method qualifier.
func (h *MCPHandler) Routes() []string {
	return []string{"/mcp", "/mcp/"}
}

// ServeHTTP delegates to the protocol handler.
func (h *MCPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.inner.ServeHTTP(w, r)
}
