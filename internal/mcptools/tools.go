// Package mcptools exposes the extraction core as MCP tools. Tools are
// constructed over a shared *extract.Extractor and registered explicitly;
// there is no process-wide registry.
package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is one MCP-callable operation.
type Tool interface {
	// Definition returns the tool's definition for MCP registration.
	Definition() mcp.Tool

	// Execute runs the tool. Extraction failures come back as an
	// error-flagged result, not as a Go error; the error return is reserved
	// for protocol-level problems.
	Execute(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)
}

// stringArg fetches an optional string argument with a default.
func stringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// requiredStringArg fetches a required string argument.
func requiredStringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok && v != ""
}

// boolArg fetches an optional boolean argument with a default.
func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// intArg fetches an optional numeric argument with a default. JSON numbers
// arrive as float64.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}
