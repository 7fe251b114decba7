package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotify-mcp/internal/mcp"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the embedded example configuration to disk.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	r.logger.Info("config created", "path", path)

	r.writePlainln("✓ Config written to %s", path)
	r.writePlain("Edit it and start the server with: spotify-mcp serve\n")

	return nil
}

// Version prints the application version.
func (r *Runner) Version(ctx context.Context, cmd *cli.Command) error {
	return r.writePlain("spotify-mcp %s\n", mcp.Version)
}
