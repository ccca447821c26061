package extract

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactFileNames(t *testing.T) {
	assert.Equal(t, "report_page_3.png", pageRenderFileName("report", 3, FormatPNG))
	assert.Equal(t, "report_page_3.jpg", pageRenderFileName("report", 3, FormatJPEG))
	assert.Equal(t, "report_page_3_img_2.png", embeddedFileName("report", 3, 2, FormatPNG))
	assert.Equal(t, "report_page_12_img_1.jpg", embeddedFileName("report", 12, 1, FormatJPEG))
}

func TestInlineArtifactHasNoPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 20))
	data, err := encodeImage(img, FormatJPEG)
	require.NoError(t, err)

	a := newInlineArtifact(KindEmbedded, 2, 1, img, FormatJPEG, data)
	assert.True(t, a.Inline())
	assert.Empty(t, a.Path)
	assert.Equal(t, "image/jpeg", a.MIMEType)
	assert.NotEmpty(t, a.Data)
	assert.Equal(t, 2, a.PageNumber)
	assert.Equal(t, 1, a.Index)
	assert.Equal(t, 10, a.Width)
	assert.Equal(t, 20, a.Height)
}

func TestDiskArtifactHasNoPayload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	a := newDiskArtifact(KindPageRender, 1, 0, img, FormatPNG, "/tmp/out/doc_page_1.png")
	assert.False(t, a.Inline())
	assert.Equal(t, "/tmp/out/doc_page_1.png", a.Path)
	assert.Empty(t, a.Data)
	assert.Empty(t, a.MIMEType)
}

// An inline artifact's base64 payload must decode back into an image of the
// claimed dimensions.
func TestInlineArtifactRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatPNG, FormatJPEG} {
		img := image.NewRGBA(image.Rect(0, 0, 32, 16))
		data, err := encodeImage(img, format)
		require.NoError(t, err)

		a := newInlineArtifact(KindPageRender, 1, 0, img, format, data)
		raw, err := base64.StdEncoding.DecodeString(a.Data)
		require.NoError(t, err)

		var decoded image.Image
		if format == FormatPNG {
			decoded, err = png.Decode(bytes.NewReader(raw))
		} else {
			decoded, err = jpeg.Decode(bytes.NewReader(raw))
		}
		require.NoError(t, err)
		assert.Equal(t, a.Width, decoded.Bounds().Dx())
		assert.Equal(t, a.Height, decoded.Bounds().Dy())
	}
}
