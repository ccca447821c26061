package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

// AllTool extracts text and images in one pass, images always inline.
type AllTool struct {
	extractor *extract.Extractor
	logger    *logrus.Logger
}

// NewAllTool creates the extract_pdf_all tool.
func NewAllTool(extractor *extract.Extractor, logger *logrus.Logger) *AllTool {
	return &AllTool{extractor: extractor, logger: logger}
}

// Definition returns the tool's definition for MCP registration.
func (t *AllTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"extract_pdf_all",
		mcp.WithDescription("Extract text, metadata and images from a PDF in one call; images are returned inline"),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Absolute path to the PDF file"),
		),
		mcp.WithString("outputDir",
			mcp.Description("Unused in inline mode, accepted for symmetry with extract_pdf_images"),
		),
		mcp.WithString("format",
			mcp.DefaultString("png"),
			mcp.Enum("png", "jpeg"),
			mcp.Description("Image encoding"),
		),
		mcp.WithNumber("dpi",
			mcp.DefaultNumber(extract.DefaultDPI),
			mcp.Description("Rasterization resolution in dots per inch"),
		),
		mcp.WithString("pages",
			mcp.DefaultString("all"),
			mcp.Description("Page selection, e.g. '1-5', '1,3,5' or 'all'"),
		),
	)
}

// Execute runs the combined extraction: one summary block, then per page a
// text block followed by that page's image blocks.
func (t *AllTool) Execute(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	pdfPath, ok := requiredStringArg(args, "pdfPath")
	if !ok {
		return mcp.NewToolResultError("missing or invalid required parameter: pdfPath"), nil
	}

	format, err := extract.ParseFormat(stringArg(args, "format", "png"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := extract.Options{
		Format: format,
		DPI:    intArg(args, "dpi", extract.DefaultDPI),
		Inline: true,
		Pages:  stringArg(args, "pages", "all"),
	}

	result, err := t.extractor.All(ctx, pdfPath, opts)
	if err != nil {
		t.logger.WithError(err).Debug("extract_pdf_all failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	content := []mcp.Content{
		mcp.TextContent{Type: "text", Text: formatCombinedSummary(result)},
	}
	for _, page := range result.Pages {
		content = append(content, mcp.TextContent{Type: "text", Text: formatPageText(page)})
		for _, artifact := range page.Images {
			if artifact.Inline() {
				content = append(content, mcp.ImageContent{
					Type:     "image",
					Data:     artifact.Data,
					MIMEType: artifact.MIMEType,
				})
			}
		}
	}

	return &mcp.CallToolResult{Content: content}, nil
}
