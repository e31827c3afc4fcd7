// Package postserver registers the MCP tools that mirror the REST API:
// extract_transcript, generate_summary, generate_post, format_output.
package postserver

import (
	"github.com/anatolykoptev/go_ytpost/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all pipeline tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerExtractTranscript(server)
	registerGenerateSummary(server)
	registerGeneratePost(server)
	registerFormatOutput(server)
}

// toolError marks an expected component failure in the output struct instead
// of failing the call: agents check the error field, same as REST clients.
// Unexpected failures still surface as tool errors.
func toolError(err error) (string, bool) {
	if engine.IsComponentError(err) {
		return err.Error(), true
	}
	return "", false
}
