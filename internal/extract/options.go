package extract

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Format is the encoding for extracted images.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

const (
	// DefaultDPI is the rasterization resolution. PDF's native unit is 72
	// dots per inch, so the linear scale factor is DPI/72.
	DefaultDPI = 150

	// JPEGQuality is fixed; callers pick the format, not the quality.
	JPEGQuality = 85

	// DefaultMaxFileSize caps input PDFs at 200MB unless overridden via
	// PDF_EXTRACT_MAX_FILE_SIZE.
	DefaultMaxFileSize = int64(200 * 1024 * 1024)

	maxFileSizeEnvVar = "PDF_EXTRACT_MAX_FILE_SIZE"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (png or jpeg)", s)
	}
}

// MIMEType returns the media type for the format.
func (f Format) MIMEType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Ext returns the file extension, without the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// Options control image extraction. The zero value means: output next to the
// input file, PNG, 150 DPI, all pages, artifacts written to disk.
type Options struct {
	// OutputDir receives image files in disk mode. Empty means the
	// directory of the input PDF.
	OutputDir string

	// Format is png or jpeg. Empty means png.
	Format Format

	// DPI must be positive. Zero means DefaultDPI.
	DPI int

	// Inline attaches base64 payloads instead of writing files.
	Inline bool

	// Pages selects pages to process: "all", "3", "1-5", "1,3,5-7".
	// Empty means all.
	Pages string
}

func (o Options) normalize() Options {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Pages == "" {
		o.Pages = "all"
	}
	return o
}

func (o Options) validate() error {
	if o.DPI < 0 {
		return fmt.Errorf("dpi must be positive, got %d", o.DPI)
	}
	if o.Format != "" && o.Format != FormatPNG && o.Format != FormatJPEG {
		return fmt.Errorf("unsupported image format %q", o.Format)
	}
	return nil
}

// ParsePageSelection expands a selection string against the document's page
// count into a sorted, deduplicated list of 1-based page numbers.
func ParsePageSelection(pages string, maxPage int) ([]int, error) {
	if pages == "" || pages == "all" {
		result := make([]int, maxPage)
		for i := range maxPage {
			result[i] = i + 1
		}
		return result, nil
	}

	pageSet := make(map[int]bool)
	for part := range strings.SplitSeq(pages, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				return nil, fmt.Errorf("invalid range format: %s", part)
			}
			start, err := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			if err != nil {
				return nil, fmt.Errorf("invalid start page: %s", rangeParts[0])
			}
			end, err := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err != nil {
				return nil, fmt.Errorf("invalid end page: %s", rangeParts[1])
			}
			if start < 1 || end > maxPage || start > end {
				return nil, fmt.Errorf("invalid page range: %d-%d (max page: %d)", start, end, maxPage)
			}
			for i := start; i <= end; i++ {
				pageSet[i] = true
			}
		} else {
			page, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			if page < 1 || page > maxPage {
				return nil, fmt.Errorf("page number out of range: %d (max page: %d)", page, maxPage)
			}
			pageSet[page] = true
		}
	}

	result := make([]int, 0, len(pageSet))
	for page := range pageSet {
		result = append(result, page)
	}
	sort.Ints(result)
	return result, nil
}

// maxFileSize returns the configured input size cap in bytes.
func maxFileSize() int64 {
	if sizeStr := os.Getenv(maxFileSizeEnvVar); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxFileSize
}

func validateFileSize(size int64) error {
	limit := maxFileSize()
	if size > limit {
		return fmt.Errorf("PDF file size %.1fMB exceeds maximum allowed size of %.1fMB (use %s to adjust)",
			float64(size)/(1024*1024), float64(limit)/(1024*1024), maxFileSizeEnvVar)
	}
	return nil
}
