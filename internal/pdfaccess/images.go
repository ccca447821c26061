package pdfaccess

import (
	"fmt"
	"image"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	// Embedded image streams come back from pdfcpu in whatever format the PDF
	// carried them; register the decoders we expect to meet.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Rect is an axis-aligned box in page space (x, y, width, height).
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// EmbeddedImage is one decoded image object found on a page.
type EmbeddedImage struct {
	Image image.Image
	// BBox is the image placement on the page, when the backend exposes it.
	// pdfcpu enumerates image XObjects without their placement, so this is
	// nil with the current backend.
	BBox *Rect
}

// PageImages returns the embedded images of page n (0-based), in object
// order. Streams that fail to decode are dropped; a bad image never fails
// the page.
func (d *Document) PageImages(n int) ([]EmbeddedImage, error) {
	if err := d.loadEmbedded(); err != nil {
		return nil, err
	}
	return d.embedded[n+1], nil
}

// loadEmbedded enumerates the image XObjects of every page in one pdfcpu
// pass and decodes them.
func (d *Document) loadEmbedded() error {
	if d.embeddedLoaded {
		return nil
	}

	f, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("open pdf for image extraction: %w", err)
	}
	defer func() { _ = f.Close() }()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.ExtractImagesRaw(f, nil, conf)
	if err != nil {
		return fmt.Errorf("enumerate embedded images: %w", err)
	}

	d.embedded = make(map[int][]EmbeddedImage)
	for _, byObjNr := range pages {
		objNrs := make([]int, 0, len(byObjNr))
		for objNr := range byObjNr {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			raw := byObjNr[objNr]
			if raw.Thumb {
				continue
			}
			img, _, err := image.Decode(raw)
			if err != nil {
				// Undecodable stream, skip it and keep the rest.
				continue
			}
			d.embedded[raw.PageNr] = append(d.embedded[raw.PageNr], EmbeddedImage{Image: img})
		}
	}

	d.embeddedLoaded = true
	return nil
}
