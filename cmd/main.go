package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/spotify-mcp/internal/mcp"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
		} else {
			logger.Warnf("failed to load %s, using defaults: %v", configPath, err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "spotify-mcp",
		Usage:    "Serve the Spotify Web API catalog as MCP tools",
		Version:  mcp.Version,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrUnknownTool) || errors.Is(err, shared.ErrInvalidFlag) {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
