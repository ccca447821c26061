package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

// TextTool extracts text and metadata from a PDF.
type TextTool struct {
	extractor *extract.Extractor
	logger    *logrus.Logger
}

// NewTextTool creates the extract_pdf_text tool.
func NewTextTool(extractor *extract.Extractor, logger *logrus.Logger) *TextTool {
	return &TextTool{extractor: extractor, logger: logger}
}

// Definition returns the tool's definition for MCP registration.
func (t *TextTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"extract_pdf_text",
		mcp.WithDescription("Extract text and document metadata from a PDF file, page by page"),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Absolute path to the PDF file"),
		),
		mcp.WithString("pages",
			mcp.DefaultString("all"),
			mcp.Description("Page selection, e.g. '1-5', '1,3,5' or 'all'"),
		),
	)
}

// Execute runs text extraction and renders a single formatted text block.
func (t *TextTool) Execute(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	pdfPath, ok := requiredStringArg(args, "pdfPath")
	if !ok {
		return mcp.NewToolResultError("missing or invalid required parameter: pdfPath"), nil
	}

	result, err := t.extractor.Text(ctx, pdfPath, stringArg(args, "pages", "all"))
	if err != nil {
		t.logger.WithError(err).Debug("extract_pdf_text failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTextResult(result)), nil
}
