package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) playerTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: currentPlaybackTool(), Handler: t.getCurrentPlayback},
		{Tool: currentUserPlayingTrackTool(), Handler: t.getCurrentUserPlayingTrack},
		{Tool: currentlyPlayingTool(), Handler: t.getCurrentlyPlaying},
		{Tool: devicesTool(), Handler: t.getDevices},
		{Tool: queueTool(), Handler: t.getQueue},
	}
}

func currentPlaybackTool() mcp.Tool {
	return mcp.NewTool("get_current_playback",
		mcp.WithDescription("Get the current user's full playback state, device and modes included."),
		withToken(),
		withMarket(),
		mcp.WithString("additional_types",
			mcp.Description("Comma-separated item types the response may carry, e.g. episode."),
		),
	)
}

func (t *Toolset) getCurrentPlayback(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get current playback"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentPlayback(ctx,
		req.GetString("market", ""), req.GetString("additional_types", ""))
	return t.respondOrPlaceholder(prefix, "playback", raw, err)
}

func currentUserPlayingTrackTool() mcp.Tool {
	return mcp.NewTool("get_current_user_playing_track",
		mcp.WithDescription("Get the track the current user is playing right now."),
		withToken(),
	)
}

func (t *Toolset) getCurrentUserPlayingTrack(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get currently playing track"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentlyPlaying(ctx, "", "")
	return t.respondOrPlaceholder(prefix, "track", raw, err)
}

func currentlyPlayingTool() mcp.Tool {
	return mcp.NewTool("get_currently_playing",
		mcp.WithDescription("Get the item the current user is playing, episodes included."),
		withToken(),
		withMarket(),
		mcp.WithString("additional_types",
			mcp.Description("Comma-separated item types the response may carry, e.g. episode."),
		),
	)
}

func (t *Toolset) getCurrentlyPlaying(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get currently playing"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).CurrentlyPlaying(ctx,
		req.GetString("market", ""), req.GetString("additional_types", ""))
	return t.respondOrPlaceholder(prefix, "currently_playing", raw, err)
}

func devicesTool() mcp.Tool {
	return mcp.NewTool("get_devices",
		mcp.WithDescription("Get the devices available for playback."),
		withToken(),
	)
}

func (t *Toolset) getDevices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get devices"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Devices(ctx)
	return t.respond(prefix, raw, err)
}

func queueTool() mcp.Tool {
	return mcp.NewTool("get_queue",
		mcp.WithDescription("Get the current user's playback queue."),
		withToken(),
	)
}

func (t *Toolset) getQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get queue"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).Queue(ctx)
	return t.respond(prefix, raw, err)
}
