// Package extract orchestrates the PDF toolkits into three operations: text
// for all pages, images (page renders plus embedded images), and both
// combined. It owns no parsing or rendering of its own.
package extract

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdftools/pdf-extract-mcp/internal/pdfaccess"
	"github.com/pdftools/pdf-extract-mcp/internal/pdfmeta"
)

// Document is the slice of the PDF toolkit the extractor needs. Page indices
// are 0-based at this boundary; results are 1-based.
type Document interface {
	NumPages() int
	PageText(n int) (string, error)
	RenderPage(n int, dpi float64) (image.Image, error)
	PageImages(n int) ([]pdfaccess.EmbeddedImage, error)
	Close() error
}

// Extractor runs extractions. Construct with New; the zero value is not
// usable.
type Extractor struct {
	logger   *logrus.Logger
	openDoc  func(path string) (Document, error)
	readMeta func(path string) (Metadata, bool)
}

// New returns an Extractor backed by the real PDF toolkits.
func New(logger *logrus.Logger) *Extractor {
	return &Extractor{
		logger: logger,
		openDoc: func(path string) (Document, error) {
			return pdfaccess.Open(path)
		},
		readMeta: func(path string) (Metadata, bool) {
			info, ok := pdfmeta.Read(path)
			return metadataFromInfo(info), ok
		},
	}
}

// resolveInput turns path into an absolute path and verifies it references an
// existing regular file within the size limit. This runs before any toolkit
// call.
func resolveInput(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, abs)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileNotFound, abs)
	}
	if err := validateFileSize(info.Size()); err != nil {
		return "", err
	}
	return abs, nil
}

func (e *Extractor) open(path string) (Document, error) {
	doc, err := e.openDoc(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentOpen, err)
	}
	return doc, nil
}

// Text extracts the text of the selected pages ("", "all", "3", "1-5",
// "1,3,5-7") together with best-effort document metadata.
func (e *Extractor) Text(ctx context.Context, path, pages string) (*TextResult, error) {
	abs, err := resolveInput(path)
	if err != nil {
		return nil, err
	}

	metadata, ok := e.readMeta(abs)
	if !ok {
		e.logger.WithField("file", abs).Debug("Metadata unavailable, continuing with empty values")
	}

	doc, err := e.open(abs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	total := doc.NumPages()
	selected, err := ParsePageSelection(pages, total)
	if err != nil {
		return nil, err
	}

	result := &TextResult{
		File:       abs,
		TotalPages: total,
		Metadata:   metadata,
		Pages:      make([]PageText, 0, len(selected)),
	}

	for _, pageNum := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := doc.PageText(pageNum - 1)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, PageText{
			PageNumber: pageNum,
			Text:       strings.TrimSpace(text),
		})
	}

	e.logger.WithFields(logrus.Fields{
		"file":  abs,
		"pages": len(result.Pages),
	}).Debug("Text extraction completed")

	return result, nil
}

// Images renders each selected page at opts.DPI and collects the page's
// embedded images. Artifacts go to disk under opts.OutputDir unless
// opts.Inline is set.
func (e *Extractor) Images(ctx context.Context, path string, opts Options) (*ImagesResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.normalize()

	abs, err := resolveInput(path)
	if err != nil {
		return nil, err
	}

	doc, err := e.open(abs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	total := doc.NumPages()
	selected, err := ParsePageSelection(opts.Pages, total)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutputDir
	if !opts.Inline {
		if outDir == "" {
			outDir = filepath.Dir(abs)
		}
		if err := os.MkdirAll(outDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	base := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	result := &ImagesResult{
		File:       abs,
		TotalPages: total,
		Images:     make([]ImageArtifact, 0, len(selected)),
	}

	for _, pageNum := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.RenderPage(pageNum-1, float64(opts.DPI))
		if err != nil {
			return nil, err
		}
		artifact, err := e.emit(KindPageRender, pageNum, 0, img, opts, outDir,
			pageRenderFileName(base, pageNum, opts.Format))
		if err != nil {
			return nil, err
		}
		result.Images = append(result.Images, artifact)

		embedded, err := doc.PageImages(pageNum - 1)
		if err != nil {
			// Embedded enumeration is best effort; the page render stands.
			e.logger.WithError(err).WithField("page", pageNum).Debug("Skipping embedded images for page")
			continue
		}
		for i, emb := range embedded {
			index := i + 1
			artifact, err := e.emit(KindEmbedded, pageNum, index, emb.Image, opts, outDir,
				embeddedFileName(base, pageNum, index, opts.Format))
			if err != nil {
				// One bad embedded image must not abort the rest.
				e.logger.WithError(err).WithFields(logrus.Fields{
					"page":  pageNum,
					"index": index,
				}).Debug("Skipping embedded image")
				continue
			}
			if emb.BBox != nil {
				artifact.BoundingBox = &Rect{X: emb.BBox.X, Y: emb.BBox.Y, W: emb.BBox.W, H: emb.BBox.H}
			}
			result.Images = append(result.Images, artifact)
		}
	}

	result.TotalImages = len(result.Images)

	e.logger.WithFields(logrus.Fields{
		"file":   abs,
		"images": result.TotalImages,
		"inline": opts.Inline,
	}).Debug("Image extraction completed")

	return result, nil
}

// emit encodes an image and either writes it to disk or attaches it inline.
func (e *Extractor) emit(kind ArtifactKind, page, index int, img image.Image, opts Options, outDir, name string) (ImageArtifact, error) {
	data, err := encodeImage(img, opts.Format)
	if err != nil {
		return ImageArtifact{}, err
	}
	if opts.Inline {
		return newInlineArtifact(kind, page, index, img, opts.Format, data), nil
	}
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return ImageArtifact{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return newDiskArtifact(kind, page, index, img, opts.Format, path), nil
}

// All runs Text and Images concurrently over the same file and groups the
// image artifacts under their page. Page order follows the text result. If
// either side fails the whole call fails; no partial result is returned.
func (e *Extractor) All(ctx context.Context, path string, opts Options) (*CombinedResult, error) {
	var (
		textResult   *TextResult
		imagesResult *ImagesResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		textResult, err = e.Text(gctx, path, opts.Pages)
		return err
	})
	g.Go(func() error {
		var err error
		imagesResult, err = e.Images(gctx, path, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byPage := make(map[int][]ImageArtifact)
	for _, artifact := range imagesResult.Images {
		byPage[artifact.PageNumber] = append(byPage[artifact.PageNumber], artifact)
	}

	result := &CombinedResult{
		File:        textResult.File,
		TotalPages:  textResult.TotalPages,
		Metadata:    textResult.Metadata,
		TotalImages: imagesResult.TotalImages,
		Pages:       make([]CombinedPage, 0, len(textResult.Pages)),
	}
	for _, page := range textResult.Pages {
		result.Pages = append(result.Pages, CombinedPage{
			PageNumber: page.PageNumber,
			Text:       page.Text,
			Images:     byPage[page.PageNumber],
		})
	}

	return result, nil
}
