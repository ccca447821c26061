package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageSelection(t *testing.T) {
	tests := []struct {
		name     string
		pages    string
		maxPage  int
		expected []int
		hasError bool
	}{
		{name: "all pages", pages: "all", maxPage: 5, expected: []int{1, 2, 3, 4, 5}},
		{name: "empty string defaults to all", pages: "", maxPage: 3, expected: []int{1, 2, 3}},
		{name: "single page", pages: "3", maxPage: 5, expected: []int{3}},
		{name: "page range", pages: "2-4", maxPage: 5, expected: []int{2, 3, 4}},
		{name: "multiple pages", pages: "1,3,5", maxPage: 5, expected: []int{1, 3, 5}},
		{name: "mixed range and single", pages: "1,3-4,7", maxPage: 10, expected: []int{1, 3, 4, 7}},
		{name: "duplicates removed", pages: "2,2,1-3", maxPage: 5, expected: []int{1, 2, 3}},
		{name: "zero page document", pages: "all", maxPage: 0, expected: []int{}},
		{name: "page out of range", pages: "10", maxPage: 5, hasError: true},
		{name: "invalid range", pages: "5-3", maxPage: 5, hasError: true},
		{name: "invalid format", pages: "abc", maxPage: 5, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePageSelection(tt.pages, tt.maxPage)
			if tt.hasError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		hasError bool
	}{
		{in: "", expected: FormatPNG},
		{in: "png", expected: FormatPNG},
		{in: "PNG", expected: FormatPNG},
		{in: "jpeg", expected: FormatJPEG},
		{in: "jpg", expected: FormatJPEG},
		{in: " jpeg ", expected: FormatJPEG},
		{in: "webp", hasError: true},
		{in: "gif", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			format, err := ParseFormat(tt.in)
			if tt.hasError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{}.normalize()
	assert.Equal(t, FormatPNG, opts.Format)
	assert.Equal(t, DefaultDPI, opts.DPI)
	assert.Equal(t, "all", opts.Pages)

	opts = Options{Format: FormatJPEG, DPI: 300, Pages: "1-2"}.normalize()
	assert.Equal(t, FormatJPEG, opts.Format)
	assert.Equal(t, 300, opts.DPI)
	assert.Equal(t, "1-2", opts.Pages)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{}.validate())
	assert.NoError(t, Options{Format: FormatJPEG, DPI: 72}.validate())
	assert.Error(t, Options{DPI: -1}.validate())
	assert.Error(t, Options{Format: Format("bmp")}.validate())
}

func TestFormatMIMEAndExt(t *testing.T) {
	assert.Equal(t, "image/png", FormatPNG.MIMEType())
	assert.Equal(t, "image/jpeg", FormatJPEG.MIMEType())
	assert.Equal(t, "png", FormatPNG.Ext())
	assert.Equal(t, "jpg", FormatJPEG.Ext())
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, validateFileSize(1024))
	assert.Error(t, validateFileSize(DefaultMaxFileSize+1))

	t.Setenv(maxFileSizeEnvVar, "1000")
	assert.NoError(t, validateFileSize(1000))
	assert.Error(t, validateFileSize(1001))

	t.Setenv(maxFileSizeEnvVar, "not-a-number")
	assert.NoError(t, validateFileSize(DefaultMaxFileSize))
}
