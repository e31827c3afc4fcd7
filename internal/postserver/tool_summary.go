package postserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGenerateSummary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_summary",
		Description: "Generate a structured summary (summary text + key points) from a video transcript. Tone and audience shape the writing; length bounds are in words.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SummaryRequest) (*mcp.CallToolResult, engine.SummaryResponse, error) {
		if input.Transcript == "" {
			return nil, engine.SummaryResponse{}, fmt.Errorf("transcript is required")
		}
		if !input.Tone.Valid() || !input.Audience.Valid() {
			return nil, engine.SummaryResponse{}, fmt.Errorf("unknown tone or audience")
		}

		out, err := engine.GenerateSummary(ctx, input)
		if err != nil {
			if msg, ok := toolError(err); ok {
				return nil, engine.SummaryResponse{Error: msg}, nil
			}
			return nil, engine.SummaryResponse{}, err
		}
		return nil, out, nil
	})
}
