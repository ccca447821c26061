package mcptools

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testTools() []Tool {
	logger := quietLogger()
	extractor := extract.New(logger)
	return []Tool{
		NewTextTool(extractor, logger),
		NewImagesTool(extractor, logger),
		NewAllTool(extractor, logger),
	}
}

func TestToolDefinitions(t *testing.T) {
	tools := testTools()

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		def := tool.Definition()
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.Contains(t, def.InputSchema.Required, "pdfPath", "tool %s", def.Name)
	}
	assert.Equal(t, []string{"extract_pdf_text", "extract_pdf_images", "extract_pdf_all"}, names)
}

func TestToolDefaults(t *testing.T) {
	def := testTools()[1].Definition() // extract_pdf_images

	format, ok := def.InputSchema.Properties["format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "png", format["default"])

	dpi, ok := def.InputSchema.Properties["dpi"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, extract.DefaultDPI, dpi["default"])

	inline, ok := def.InputSchema.Properties["returnBase64"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, inline["default"])
}

// A nonexistent path must come back as an error-flagged result, not as a
// handler error.
func TestMissingFileBecomesErrorResult(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	for _, tool := range testTools() {
		result, err := tool.Execute(context.Background(), map[string]any{"pdfPath": missing})
		require.NoError(t, err, "tool %s", tool.Definition().Name)
		require.NotNil(t, result)
		assert.True(t, result.IsError, "tool %s", tool.Definition().Name)
		require.NotEmpty(t, result.Content)
		text, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, text.Text, "file not found")
	}
}

func TestMissingPathArgument(t *testing.T) {
	for _, tool := range testTools() {
		result, err := tool.Execute(context.Background(), map[string]any{})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	}
}

func TestInvalidFormatArgument(t *testing.T) {
	tool := testTools()[1]
	result, err := tool.Execute(context.Background(), map[string]any{
		"pdfPath": "/tmp/whatever.pdf",
		"format":  "bmp",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestArgHelpers(t *testing.T) {
	args := map[string]any{
		"s": "value",
		"b": true,
		"f": float64(300),
		"i": 42,
	}

	assert.Equal(t, "value", stringArg(args, "s", "def"))
	assert.Equal(t, "def", stringArg(args, "missing", "def"))
	assert.Equal(t, true, boolArg(args, "b", false))
	assert.Equal(t, false, boolArg(args, "missing", false))
	assert.Equal(t, 300, intArg(args, "f", 1))
	assert.Equal(t, 42, intArg(args, "i", 1))
	assert.Equal(t, 1, intArg(args, "missing", 1))

	v, ok := requiredStringArg(args, "s")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
	_, ok = requiredStringArg(args, "missing")
	assert.False(t, ok)
}
