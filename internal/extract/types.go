package extract

import "github.com/pdftools/pdf-extract-mcp/internal/pdfmeta"

// Metadata is the document information dictionary, null-valued where absent.
// Structurally identical to pdfmeta.Info so the adapter result converts
// directly.
type Metadata struct {
	Title            *string `json:"title"`
	Author           *string `json:"author"`
	Subject          *string `json:"subject"`
	Creator          *string `json:"creator"`
	Producer         *string `json:"producer"`
	CreationDate     *string `json:"creation_date"`
	ModificationDate *string `json:"modification_date"`
}

// PageText is the trimmed text of one page. PageNumber is 1-based.
type PageText struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// ArtifactKind distinguishes full-page renders from embedded image objects.
type ArtifactKind string

const (
	KindPageRender ArtifactKind = "page-render"
	KindEmbedded   ArtifactKind = "embedded"
)

// Rect is a bounding box in page space (x, y, width, height).
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ImageArtifact is one extracted image. Index is 0 for the page render and
// 1..N for embedded images in page order. Exactly one of Path or
// Data+MIMEType is set; use the newDiskArtifact / newInlineArtifact
// constructors rather than building literals.
type ImageArtifact struct {
	PageNumber  int          `json:"page_number"`
	Index       int          `json:"image_index"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Format      Format       `json:"format"`
	Kind        ArtifactKind `json:"kind"`
	BoundingBox *Rect        `json:"bounding_box,omitempty"`

	// Disk mode
	Path string `json:"path,omitempty"`

	// Inline mode
	Data     string `json:"base64_data,omitempty"`
	MIMEType string `json:"mime_type,omitempty"`
}

// Inline reports whether the artifact carries its bytes inline instead of a
// file path.
func (a ImageArtifact) Inline() bool {
	return a.Data != ""
}

// TextResult is the outcome of a text extraction.
type TextResult struct {
	File       string     `json:"file"`
	TotalPages int        `json:"total_pages"`
	Metadata   Metadata   `json:"metadata"`
	Pages      []PageText `json:"pages"`
}

// ImagesResult is the outcome of an image extraction. Images are ordered by
// page number, then by image index.
type ImagesResult struct {
	File        string          `json:"file"`
	TotalPages  int             `json:"total_pages"`
	TotalImages int             `json:"total_images"`
	Images      []ImageArtifact `json:"images"`
}

// CombinedPage is one page's text together with its image artifacts.
type CombinedPage struct {
	PageNumber int             `json:"page_number"`
	Text       string          `json:"text"`
	Images     []ImageArtifact `json:"images"`
}

// CombinedResult is the outcome of a combined text+image extraction.
type CombinedResult struct {
	File        string         `json:"file"`
	TotalPages  int            `json:"total_pages"`
	Metadata    Metadata       `json:"metadata"`
	TotalImages int            `json:"total_images"`
	Pages       []CombinedPage `json:"pages"`
}

func metadataFromInfo(info pdfmeta.Info) Metadata {
	return Metadata(info)
}
