package postserver

import (
	"context"

	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFormatOutput(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_output",
		Description: "Format a LinkedIn post for output as 'json' (content + character count) or 'text' (raw post).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.OutputRequest) (*mcp.CallToolResult, engine.OutputResponse, error) {
		engine.IncrOutputRequests()

		format := input.Format
		if format == "" {
			format = engine.FormatJSON
		}
		out, err := engine.FormatPost(input.PostContent, format)
		if err != nil {
			if msg, ok := toolError(err); ok {
				return nil, engine.OutputResponse{Format: format, Error: msg}, nil
			}
			return nil, engine.OutputResponse{}, err
		}
		return nil, out, nil
	})
}
