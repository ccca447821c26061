package mcptools

import (
	"fmt"
	"strings"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

// formatTextResult renders a text extraction as a single readable block.
func formatTextResult(res *extract.TextResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", res.File)
	fmt.Fprintf(&b, "Pages: %d\n", res.TotalPages)
	if res.Metadata.Title != nil {
		fmt.Fprintf(&b, "Title: %s\n", *res.Metadata.Title)
	}
	if res.Metadata.Author != nil {
		fmt.Fprintf(&b, "Author: %s\n", *res.Metadata.Author)
	}
	for _, page := range res.Pages {
		fmt.Fprintf(&b, "\n--- Page %d ---\n%s\n", page.PageNumber, page.Text)
	}
	return b.String()
}

// formatImagesSummary renders a one-line-per-artifact summary.
func formatImagesSummary(res *extract.ImagesResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extracted %d images from %d pages of %s\n", res.TotalImages, res.TotalPages, res.File)
	for _, a := range res.Images {
		b.WriteString(artifactLine(a))
	}
	return b.String()
}

func artifactLine(a extract.ImageArtifact) string {
	dest := a.Path
	if a.Inline() {
		dest = fmt.Sprintf("inline %s", a.MIMEType)
	}
	return fmt.Sprintf("page %d image %d (%s): %dx%d %s -> %s\n",
		a.PageNumber, a.Index, a.Kind, a.Width, a.Height, a.Format, dest)
}

func formatPageText(page extract.CombinedPage) string {
	return fmt.Sprintf("--- Page %d ---\n%s", page.PageNumber, page.Text)
}

func formatCombinedSummary(res *extract.CombinedResult) string {
	title := ""
	if res.Metadata.Title != nil {
		title = fmt.Sprintf(" (%q)", *res.Metadata.Title)
	}
	return fmt.Sprintf("Extracted %d pages and %d images from %s%s",
		res.TotalPages, res.TotalImages, res.File, title)
}
