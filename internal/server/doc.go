// Package server provides the HTTP hosting layer for the MCP endpoint.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern.
//
// The [BasicRouter] implementation registers patterns on an [http.ServeMux],
// so method-qualified patterns like "GET /healthz" behave as the stdlib mux
// defines.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds routes, allowing a handler to register multiple
// patterns and keep its route definitions within the implementation. The MCP
// endpoint and the health check are both mounted this way.
//
// # Serving
//
// [Serve] runs a router on an address until the given context is canceled,
// then drains connections within a bounded shutdown window.
package server
