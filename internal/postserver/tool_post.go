package postserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGeneratePost(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_post",
		Description: "Generate a LinkedIn post from a video summary. Supports tone, voice, audience, speaker attribution, requested hashtags, a call-to-action flag and a character budget.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.PostRequest) (*mcp.CallToolResult, engine.PostResponse, error) {
		if input.Summary == "" {
			return nil, engine.PostResponse{}, fmt.Errorf("summary is required")
		}
		if !input.Tone.Valid() || !input.Audience.Valid() || !input.Voice.Valid() {
			return nil, engine.PostResponse{}, fmt.Errorf("unknown tone, voice or audience")
		}

		out, err := engine.GeneratePost(ctx, input)
		if err != nil {
			if msg, ok := toolError(err); ok {
				return nil, engine.PostResponse{Error: msg}, nil
			}
			return nil, engine.PostResponse{}, err
		}
		return nil, out, nil
	})
}
