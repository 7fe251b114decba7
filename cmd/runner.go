package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/desertthunder/spotify-mcp/internal/spotify"
	"github.com/desertthunder/spotify-mcp/internal/tools"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	toolset    *tools.Toolset
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Toolset    *tools.Toolset
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		toolset:    opts.Toolset,
	}
}

// buildToolset wires the catalog to a client factory honoring the configured
// base URL and request timeout.
func (r *Runner) buildToolset() *tools.Toolset {
	cfg := r.config.Spotify

	factory := func(token string) *spotify.Client {
		opts := []spotify.Option{spotify.WithLogger(r.logger)}
		if cfg.BaseURL != "" {
			opts = append(opts, spotify.WithBaseURL(cfg.BaseURL))
		}
		if cfg.TimeoutSeconds > 0 {
			opts = append(opts, spotify.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
		}
		return spotify.New(token, opts...)
	}

	return tools.New(tools.WithLogger(r.logger), tools.WithClientFactory(factory))
}

// catalog returns the toolset, building it on first use so serve can apply
// config overrides beforehand.
func (r *Runner) catalog() *tools.Toolset {
	if r.toolset == nil {
		r.toolset = r.buildToolset()
	}
	return r.toolset
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, toolsCommand, callCommand, configCommand, versionCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
