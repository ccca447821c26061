package extract

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

// encodeImage encodes a pixel buffer to the requested format. JPEG quality
// is fixed at JPEGQuality.
func encodeImage(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// pageRenderFileName is `<base>_page_<n>.<ext>`, embeddedFileName adds
// `_img_<k>` with the page-local 1-based index.
func pageRenderFileName(base string, page int, format Format) string {
	return fmt.Sprintf("%s_page_%d.%s", base, page, format.Ext())
}

func embeddedFileName(base string, page, index int, format Format) string {
	return fmt.Sprintf("%s_page_%d_img_%d.%s", base, page, index, format.Ext())
}

// newDiskArtifact records an artifact already written to path.
func newDiskArtifact(kind ArtifactKind, page, index int, img image.Image, format Format, path string) ImageArtifact {
	bounds := img.Bounds()
	return ImageArtifact{
		PageNumber: page,
		Index:      index,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		Kind:       kind,
		Path:       path,
	}
}

// newInlineArtifact records an artifact as a base64 payload with its MIME
// type. No path is set.
func newInlineArtifact(kind ArtifactKind, page, index int, img image.Image, format Format, data []byte) ImageArtifact {
	bounds := img.Bounds()
	return ImageArtifact{
		PageNumber: page,
		Index:      index,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		Kind:       kind,
		Data:       base64.StdEncoding.EncodeToString(data),
		MIMEType:   format.MIMEType(),
	}
}
