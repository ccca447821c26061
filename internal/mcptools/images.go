package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

// ImagesTool extracts page renders and embedded images from a PDF.
type ImagesTool struct {
	extractor *extract.Extractor
	logger    *logrus.Logger
}

// NewImagesTool creates the extract_pdf_images tool.
func NewImagesTool(extractor *extract.Extractor, logger *logrus.Logger) *ImagesTool {
	return &ImagesTool{extractor: extractor, logger: logger}
}

// Definition returns the tool's definition for MCP registration.
func (t *ImagesTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"extract_pdf_images",
		mcp.WithDescription("Render PDF pages to images and extract embedded images, to disk or as inline base64"),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Absolute path to the PDF file"),
		),
		mcp.WithString("outputDir",
			mcp.Description("Directory for image files (defaults to the PDF's directory)"),
		),
		mcp.WithString("format",
			mcp.DefaultString("png"),
			mcp.Enum("png", "jpeg"),
			mcp.Description("Image encoding"),
		),
		mcp.WithBoolean("returnBase64",
			mcp.DefaultBool(false),
			mcp.Description("Return images inline as base64 instead of writing files"),
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

// Execute runs image extraction. The first content block is always a text
// summary; in base64 mode each inline artifact follows as an image block.
func (t *ImagesTool) Execute(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	pdfPath, ok := requiredStringArg(args, "pdfPath")
	if !ok {
		return mcp.NewToolResultError("missing or invalid required parameter: pdfPath"), nil
	}

	format, err := extract.ParseFormat(stringArg(args, "format", "png"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := extract.Options{
		OutputDir: stringArg(args, "outputDir", ""),
		Format:    format,
		DPI:       intArg(args, "dpi", extract.DefaultDPI),
		Inline:    boolArg(args, "returnBase64", false),
		Pages:     stringArg(args, "pages", "all"),
	}

	result, err := t.extractor.Images(ctx, pdfPath, opts)
	if err != nil {
		t.logger.WithError(err).Debug("extract_pdf_images failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	content := []mcp.Content{
		mcp.TextContent{Type: "text", Text: formatImagesSummary(result)},
	}
	for _, artifact := range result.Images {
		if artifact.Inline() {
			content = append(content, mcp.ImageContent{
				Type:     "image",
				Data:     artifact.Data,
				MIMEType: artifact.MIMEType,
			})
		}
	}

	return &mcp.CallToolResult{Content: content}, nil
}
