package postserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/anatolykoptev/go_ytpost/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_transcript",
		Description: "Extract the transcript and metadata (title, channel, duration) from a YouTube video. Accepts youtu.be, watch, embed and /v/ URL shapes.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TranscriptRequest) (*mcp.CallToolResult, engine.TranscriptResponse, error) {
		if input.YouTubeURL == "" {
			return nil, engine.TranscriptResponse{}, fmt.Errorf("youtube_url is required")
		}

		out, err := sources.ExtractTranscript(ctx, input)
		if err != nil {
			if msg, ok := toolError(err); ok {
				return nil, engine.TranscriptResponse{Error: msg}, nil
			}
			return nil, engine.TranscriptResponse{}, err
		}
		return nil, out, nil
	})
}
