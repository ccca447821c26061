// Package cli renders extraction results for the terminal, either as a
// human-readable report or as pretty-printed JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdftools/pdf-extract-mcp/internal/extract"
)

// Renderer writes extraction results to out.
type Renderer struct {
	out  io.Writer
	json bool
}

// NewRenderer creates a Renderer. When jsonMode is set, results are emitted
// as indented JSON instead of the text report.
func NewRenderer(out io.Writer, jsonMode bool) *Renderer {
	return &Renderer{out: out, json: jsonMode}
}

func (r *Renderer) encodeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

var (
	headerColor    = color.New(color.FgCyan, color.Bold)
	separatorColor = color.New(color.FgHiBlack)
)

func (r *Renderer) header(file string) {
	_, _ = headerColor.Fprintln(r.out, file)
	_, _ = separatorColor.Fprintln(r.out, strings.Repeat("=", min(len(file), 72)))
}

func (r *Renderer) pageSeparator(page int) {
	_, _ = separatorColor.Fprintf(r.out, "--- Page %d ---\n", page)
}

// Text renders a text extraction result.
func (r *Renderer) Text(res *extract.TextResult) error {
	if r.json {
		return r.encodeJSON(res)
	}

	r.header(res.File)
	fmt.Fprintf(r.out, "Pages: %d\n", res.TotalPages)
	if res.Metadata.Title != nil {
		fmt.Fprintf(r.out, "Title: %s\n", *res.Metadata.Title)
	}
	if res.Metadata.Author != nil {
		fmt.Fprintf(r.out, "Author: %s\n", *res.Metadata.Author)
	}
	for _, page := range res.Pages {
		fmt.Fprintln(r.out)
		r.pageSeparator(page.PageNumber)
		fmt.Fprintln(r.out, page.Text)
	}
	return nil
}

// Images renders an image extraction result.
func (r *Renderer) Images(res *extract.ImagesResult) error {
	if r.json {
		return r.encodeJSON(res)
	}

	r.header(res.File)
	fmt.Fprintf(r.out, "Pages: %d, images: %d\n", res.TotalPages, res.TotalImages)
	for _, artifact := range res.Images {
		fmt.Fprint(r.out, artifactLine(artifact))
	}
	return nil
}

// Combined renders a combined extraction result.
func (r *Renderer) Combined(res *extract.CombinedResult) error {
	if r.json {
		return r.encodeJSON(res)
	}

	r.header(res.File)
	fmt.Fprintf(r.out, "Pages: %d, images: %d\n", res.TotalPages, res.TotalImages)
	if res.Metadata.Title != nil {
		fmt.Fprintf(r.out, "Title: %s\n", *res.Metadata.Title)
	}
	if res.Metadata.Author != nil {
		fmt.Fprintf(r.out, "Author: %s\n", *res.Metadata.Author)
	}
	for _, page := range res.Pages {
		fmt.Fprintln(r.out)
		r.pageSeparator(page.PageNumber)
		fmt.Fprintln(r.out, page.Text)
		for _, artifact := range page.Images {
			fmt.Fprint(r.out, artifactLine(artifact))
		}
	}
	return nil
}

func artifactLine(a extract.ImageArtifact) string {
	dest := a.Path
	if a.Inline() {
		dest = fmt.Sprintf("inline %s (%d bytes base64)", a.MIMEType, len(a.Data))
	}
	return fmt.Sprintf("  [%s %d] %dx%d %s -> %s\n", a.Kind, a.Index, a.Width, a.Height, a.Format, dest)
}
