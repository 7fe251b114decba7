package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/spotify-mcp/internal/formatter"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
)

// Tools renders the registered tool catalog.
func (r *Runner) Tools(ctx context.Context, cmd *cli.Command) error {
	rows := formatter.FromServerTools(r.catalog().Tools())

	if cmd.Bool("json") {
		data, err := formatter.ToJSON(rows)
		if err != nil {
			return err
		}
		return r.writePlain("%s\n", data)
	}

	if cmd.Bool("plain") {
		return r.writePlain("%s", formatter.RenderPlain(rows))
	}

	return r.writePlain("%s", formatter.RenderTable(rows))
}

// Call invokes a single registered tool in-process and prints its result text.
func (r *Runner) Call(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("tool")
	if name == "" {
		return fmt.Errorf("%w: tool name is required", shared.ErrMissingArgument)
	}

	args := map[string]any{}
	if raw := cmd.String("args"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return fmt.Errorf("%w: --args is not a JSON object: %v", shared.ErrInvalidFlag, err)
		}
	}

	var handler mcpserver.ToolHandlerFunc
	for _, st := range r.catalog().Tools() {
		if st.Tool.Name == name {
			handler = st.Handler
			break
		}
	}
	if handler == nil {
		return fmt.Errorf("%w: %s", shared.ErrUnknownTool, name)
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	r.logger.Info("calling tool", "tool", name)

	result, err := handler(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	for _, content := range result.Content {
		switch tc := content.(type) {
		case mcp.TextContent:
			return r.writePlain("%s\n", tc.Text)
		case *mcp.TextContent:
			return r.writePlain("%s\n", tc.Text)
		}
	}

	return nil
}
