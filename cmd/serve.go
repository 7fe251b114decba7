package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/mcp"
	"github.com/desertthunder/spotify-mcp/internal/server"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the MCP server over the configured transport.
//
// Flags override config file values. The stdio transport serves a single
// session on stdin/stdout; http mounts the streamable handler at /mcp.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrMissingConfig, err)
		}
		r.config = config
		r.configPath = path
	}

	if host := cmd.String("host"); host != "" {
		r.config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		r.config.Server.Port = port
	}
	if transport := cmd.String("transport"); transport != "" {
		r.config.Server.Transport = transport
	}

	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	} else if level, err := log.ParseLevel(r.config.Logging.Level); err == nil {
		shared.SetLogLevel(r.logger, level)
	}

	transport := r.config.Server.Transport
	if transport != "stdio" && transport != "http" {
		return fmt.Errorf("%w: %s", shared.ErrUnsupportedTransport, transport)
	}

	srv := mcp.New(r.buildToolset(), r.logger)

	if transport == "stdio" {
		return srv.ServeStdio()
	}
	return r.serveHTTP(ctx, srv)
}

// serveHTTP mounts the protocol handler behind the router and blocks until
// shutdown.
func (r *Runner) serveHTTP(ctx context.Context, srv *mcp.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := server.NewBasicRouter()
	router.Use(server.RequestID(), server.RequestLogger(r.logger))
	router.Handler(server.NewHealthHandler(mcp.Version))
	router.Handler(server.NewMCPHandler(srv.Handler()))

	return server.Serve(ctx, r.config.Server.Addr(), router, r.logger)
}
