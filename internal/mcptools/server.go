package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

// ServerName is the MCP server identity presented during the handshake.
const ServerName = "pdf-extract-mcp"

// NewServer builds an MCP server with the three extraction tools registered
// over a shared extractor.
func NewServer(extractor *extract.Extractor, logger *logrus.Logger, version string) *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(ServerName, version)

	tools := []Tool{
		NewTextTool(extractor, logger),
		NewImagesTool(extractor, logger),
		NewAllTool(extractor, logger),
	}
	for _, tool := range tools {
		tool := tool
		srv.AddTool(tool.Definition(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, ok := request.Params.Arguments.(map[string]any)
			if !ok {
				if request.Params.Arguments == nil {
					args = map[string]any{}
				} else {
					return nil, fmt.Errorf("invalid arguments type: expected object, got %T", request.Params.Arguments)
				}
			}
			return tool.Execute(ctx, args)
		})
	}

	return srv
}

// ServeStdio assembles the server and blocks on the stdio transport until
// the client disconnects.
func ServeStdio(logger *logrus.Logger, version string) error {
	extractor := extract.New(logger)
	return mcpserver.ServeStdio(NewServer(extractor, logger, version))
}
