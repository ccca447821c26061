// Package pdfaccess wraps the native PDF toolkits behind a small surface:
// go-fitz (MuPDF) for page text and rasterization, pdfcpu for embedded-image
// enumeration. Everything above this package works with plain Go values.
package pdfaccess

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Document is an open PDF. Not safe for concurrent use; each extraction call
// opens its own Document.
type Document struct {
	doc  *fitz.Document
	path string

	// embedded images are enumerated lazily, once per Document
	embedded       map[int][]EmbeddedImage
	embeddedLoaded bool
}

// Open opens the PDF at path. The caller must Close the returned Document.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{doc: doc, path: path}, nil
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.doc.NumPage()
}

// PageText returns the preserved-whitespace text of page n (0-based).
func (d *Document) PageText(n int) (string, error) {
	text, err := d.doc.Text(n)
	if err != nil {
		return "", fmt.Errorf("extract text from page %d: %w", n+1, err)
	}
	return text, nil
}

// RenderPage rasterizes page n (0-based) at the given DPI. MuPDF composites
// annotations and renders RGB without alpha, which is what we want.
func (d *Document) RenderPage(n int, dpi float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(n, dpi)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", n+1, err)
	}
	return img, nil
}

// Close releases the underlying MuPDF handle.
func (d *Document) Close() error {
	return d.doc.Close()
}
