package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) audioTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: audioAnalysisTool(), Handler: t.getAudioAnalysis},
		{Tool: audioFeaturesTool(), Handler: t.getAudioFeatures},
	}
}

func audioAnalysisTool() mcp.Tool {
	return mcp.NewTool("get_audio_analysis",
		mcp.WithDescription("Get the low-level audio analysis for a track."),
		withToken(),
		mcp.WithString("track_id",
			mcp.Required(),
			mcp.Description("Track ID, URI or URL."),
		),
	)
}

func (t *Toolset) getAudioAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get audio analysis"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	trackID, err := req.RequireString("track_id")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).AudioAnalysis(ctx, trackID)
	return t.respond(prefix, raw, err)
}

func audioFeaturesTool() mcp.Tool {
	return mcp.NewTool("get_audio_features",
		mcp.WithDescription("Get audio features for one or more tracks."),
		withToken(),
		mcp.WithArray("track_ids",
			mcp.Required(),
			mcp.Description("Track IDs, URIs or URLs."),
			stringItems(),
		),
	)
}

func (t *Toolset) getAudioFeatures(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const prefix = "Failed to get audio features"

	token, err := req.RequireString("token")
	if err != nil {
		return t.failure(prefix, err), nil
	}
	trackIDs, err := req.RequireStringSlice("track_ids")
	if err != nil {
		return t.failure(prefix, err), nil
	}

	raw, err := t.client(token).AudioFeatures(ctx, trackIDs)
	return t.respondOrPlaceholder(prefix, "audio_features", raw, err)
}
